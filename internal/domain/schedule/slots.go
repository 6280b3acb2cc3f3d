package schedule

import "time"

// WorkingHours es el horario fijo de la tienda, cargado una vez al arrancar.
type WorkingHours struct {
	OpenWeekdays map[time.Weekday]bool
	StartHour    int
	EndHour      int
	StepMinutes  int
}

func (wh WorkingHours) IsOpenOn(date time.Time) bool {
	return wh.OpenWeekdays[date.Weekday()]
}

// GenerateCandidates lista las horas de inicio posibles del día, en orden
// ascendente. Un servicio tiene que terminar dentro del horario, así que
// los candidatos cuyo fin pasaría del cierre se descartan.
// Día cerrado devuelve lista vacía (no es un error).
func GenerateCandidates(date time.Time, wh WorkingHours, serviceDuration time.Duration) []time.Time {
	if !wh.IsOpenOn(date) {
		return nil
	}

	loc := date.Location()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), wh.StartHour, 0, 0, 0, loc)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), wh.EndHour, 0, 0, 0, loc)
	step := time.Duration(wh.StepMinutes) * time.Minute

	var out []time.Time
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(step) {
		if cur.Add(serviceDuration).After(dayEnd) {
			break
		}
		out = append(out, cur)
	}
	return out
}

// FilterFree mantiene solo los candidatos cuyo intervalo no choca con
// ningún bloque ocupado del calendario.
func FilterFree(candidates []time.Time, busy []BusyInterval, serviceDuration time.Duration) []time.Time {
	var free []time.Time
	for _, start := range candidates {
		if !OverlapsAny(start, start.Add(serviceDuration), busy) {
			free = append(free, start)
		}
	}
	return free
}

// OnlyFuture descarta candidatos que no están estrictamente en el futuro.
// Se usa cuando la fecha consultada es hoy y HIDE_PAST_SLOTS_TODAY está activo.
func OnlyFuture(candidates []time.Time, now time.Time) []time.Time {
	var out []time.Time
	for _, start := range candidates {
		if start.After(now) {
			out = append(out, start)
		}
	}
	return out
}

package handlers

import "time"

// Todas las fechas y horas de la API se interpretan en la zona horaria
// fija del despliegue.

func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

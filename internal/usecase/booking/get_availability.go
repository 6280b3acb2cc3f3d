package booking

import (
	"context"
	"time"

	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/httperr"
)

type AvailabilityInput struct {
	Date      time.Time
	BarberID  string
	ServiceID string
}

type GetAvailability struct {
	catalog       *schedule.Catalog
	source        schedule.CalendarSource
	hours         schedule.WorkingHours
	hidePastToday bool
	now           func() time.Time
}

func NewGetAvailability(
	catalog *schedule.Catalog,
	source schedule.CalendarSource,
	hours schedule.WorkingHours,
	hidePastToday bool,
	now func() time.Time,
) *GetAvailability {
	if now == nil {
		now = time.Now
	}
	return &GetAvailability{
		catalog:       catalog,
		source:        source,
		hours:         hours,
		hidePastToday: hidePastToday,
		now:           now,
	}
}

// Execute devuelve las horas de inicio libres ("HH:MM") del barbero para
// la fecha pedida. Los ids desconocidos se rechazan antes de tocar el
// calendario; un día cerrado es una respuesta vacía, no un error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	barber, ok := uc.catalog.Barber(in.BarberID)
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, ok := uc.catalog.Service(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if !uc.hours.IsOpenOn(in.Date) {
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	busy, err := uc.source.ListBusy(ctx, barber.CalendarID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	candidates := schedule.GenerateCandidates(in.Date, uc.hours, service.Duration())
	free := schedule.FilterFree(candidates, busy, service.Duration())

	if uc.hidePastToday {
		now := uc.now().In(loc)
		if sameDay(now, in.Date) {
			free = schedule.OnlyFuture(free, now)
		}
	}

	slots := make([]string, 0, len(free))
	for _, t := range free {
		slots = append(slots, t.Format("15:04"))
	}

	return slots, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

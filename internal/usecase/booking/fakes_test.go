package booking

import (
	"context"
	"time"

	"github.com/labarberiamataro/booking-api/internal/audit"
	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/models"
)

// fakeCalendarSource cuenta las llamadas para poder comprobar que la
// validación corta antes de tocar el calendario.
type fakeCalendarSource struct {
	busy      []schedule.BusyInterval
	listErr   error
	insertErr error

	listCalls   int
	insertCalls int
	lastInsert  schedule.EventInput
}

func (f *fakeCalendarSource) ListBusy(_ context.Context, _ string, _, _ time.Time) ([]schedule.BusyInterval, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.busy, nil
}

func (f *fakeCalendarSource) InsertEvent(_ context.Context, _ string, ev schedule.EventInput) (string, error) {
	f.insertCalls++
	f.lastInsert = ev
	if f.insertErr != nil {
		return "", f.insertErr
	}
	return "evt-1", nil
}

type fakeBookingRepo struct {
	created []*models.Booking
	listErr error
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) ListBookingsForDay(_ context.Context, _, _ time.Time) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Booking, 0, len(f.created))
	for _, b := range f.created {
		out = append(out, *b)
	}
	return out, nil
}

type discardSink struct{}

func (discardSink) Write(audit.Event) error { return nil }

func busyAt(day time.Time, sh, sm, eh, em int) schedule.BusyInterval {
	return schedule.BusyInterval{
		Start: time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, day.Location()),
	}
}

func testCatalog() *schedule.Catalog {
	return schedule.NewCatalog(
		[]schedule.Service{
			{ID: "corte_caballero", DurationMin: 30},
			{ID: "corte_barba", DurationMin: 60},
		},
		[]schedule.Barber{
			{ID: "luis", CalendarID: "cal-luis"},
			{ID: "ana", CalendarID: "cal-ana"},
		},
	)
}

func testHours() schedule.WorkingHours {
	return schedule.WorkingHours{
		OpenWeekdays: map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true, time.Saturday: true,
		},
		StartHour:   8,
		EndHour:     20,
		StepMinutes: 15,
	}
}

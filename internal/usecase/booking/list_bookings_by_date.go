package booking

import (
	"context"
	"time"

	domain "github.com/labarberiamataro/booking-api/internal/domain/booking"
	"github.com/labarberiamataro/booking-api/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	loc := date.Location()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			Ref:          b.Ref,
			BarberID:     b.BarberID,
			ServiceID:    b.ServiceID,
			CustomerName: b.CustomerName,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
		})
	}

	return out, nil
}

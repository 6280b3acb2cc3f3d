package booking

import (
	"context"
	"time"

	"github.com/labarberiamataro/booking-api/internal/models"
)

// Repository guarda el rastro local de reservas aceptadas.
type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)
}

package schedule

import (
	"context"
	"time"
)

// EventInput es el evento que se crea al aceptar una reserva.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// CalendarSource es la fuente de verdad de la agenda de cada barbero.
//
// ListBusy devuelve todos los eventos confirmados que tocan el rango
// pedido, con los eventos de día completo ya normalizados a instantes
// concretos y con la paginación resuelta (el conjunto completo, no una
// página).
type CalendarSource interface {
	ListBusy(ctx context.Context, calendarID string, from, to time.Time) ([]BusyInterval, error)
	InsertEvent(ctx context.Context, calendarID string, ev EventInput) (string, error)
}

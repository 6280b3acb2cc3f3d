package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/labarberiamataro/booking-api/internal/audit"
	domain "github.com/labarberiamataro/booking-api/internal/domain/booking"
	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/httperr"
	"github.com/labarberiamataro/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date string
	Time string

	BarberID  string
	ServiceID string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	catalog *schedule.Catalog
	source  schedule.CalendarSource
	repo    domain.Repository
	audit   *audit.Dispatcher
	loc     *time.Location
}

func NewCreateBooking(
	catalog *schedule.Catalog,
	source schedule.CalendarSource,
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		catalog: catalog,
		source:  source,
		repo:    repo,
		audit:   auditDispatcher,
		loc:     loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida la petición, vuelve a consultar el calendario en vivo y,
// solo si el hueco sigue libre, crea exactamente un evento. Entre el GET
// de disponibilidad y el POST pasa tiempo y no hay paso de reserva
// provisional: dos peticiones simultáneas pueden ver "libre" a la vez y
// escribir ambas. Esa ventana queda asumida; el calendario es la única
// fuente de verdad y no hay bloqueo en proceso.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Catálogos (antes de cualquier llamada remota)
	// --------------------------------------------------
	if in.CustomerName == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}

	barber, ok := uc.catalog.Barber(in.BarberID)
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, ok := uc.catalog.Service(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 2. Fecha y hora en la zona de la tienda
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(service.Duration())

	// --------------------------------------------------
	// 3. Re-chequeo de conflicto contra el calendario vivo
	// --------------------------------------------------
	busy, err := uc.source.ListBusy(ctx, barber.CalendarID, start, end)
	if err != nil {
		return nil, err
	}

	if schedule.OverlapsAny(start, end, busy) {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 4. Inserción del evento (último paso remoto)
	// --------------------------------------------------
	eventID, err := uc.source.InsertEvent(ctx, barber.CalendarID, schedule.EventInput{
		Summary: fmt.Sprintf("Cita %s", in.CustomerName),
		Description: fmt.Sprintf(
			"Servicio: %s\nCliente: %s\nEmail: %s\nTeléfono: %s\nNotas: %s",
			in.ServiceID, in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.Notes,
		),
		Start: start,
		End:   end,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Registro local (best effort, el evento ya existe)
	// --------------------------------------------------
	b := &models.Booking{
		Ref:             uuid.NewString(),
		BarberID:        in.BarberID,
		ServiceID:       in.ServiceID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		Notes:           in.Notes,
		StartTime:       start,
		EndTime:         end,
		CalendarEventID: eventID,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		log.Println("booking record not saved:", err)
	}

	// --------------------------------------------------
	// 6. Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:    "booking_created",
		Entity:    "booking",
		EntityRef: b.Ref,
		Metadata: map[string]string{
			"barber_id":  in.BarberID,
			"service_id": in.ServiceID,
			"start":      start.Format(time.RFC3339),
		},
	})

	return b, nil
}

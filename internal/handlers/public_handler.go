package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/httperr"
	"github.com/labarberiamataro/booking-api/internal/httpresp"
	ucBooking "github.com/labarberiamataro/booking-api/internal/usecase/booking"
	"github.com/labarberiamataro/booking-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	catalog        *schedule.Catalog
	loc            *time.Location
}

func NewPublicHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	catalog *schedule.Catalog,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		catalog:        catalog,
		loc:            loc,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
	BarberID  string `json:"barberId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

////////////////////////////////////////////////////////
// CATALOGS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.catalog.Services())
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	httpresp.List(c, h.catalog.Barbers())
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

// GET /slots?date=YYYY-MM-DD&barberId=luis&serviceId=corte_caballero
func (h *PublicHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	barberID := c.Query("barberId")
	serviceID := c.Query("serviceId")

	if dateStr == "" || barberID == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Faltan parámetros (date, barberId, serviceId).")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			Date:      date,
			BarberID:  barberID,
			ServiceID: serviceID,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barbero desconocido.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Servicio desconocido.")
		default:
			httperr.Internal(c, "availability_failed", "Error obteniendo slots.")
		}
		return
	}

	httpresp.OK(c, gin.H{"ok": true, "slots": slots})
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

// POST /book  body: { date, time, barberId, serviceId, name, email?, phone?, notes? }
func (h *PublicHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Faltan campos obligatorios.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del email no parece válido.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Date:          req.Date,
			Time:          req.Time,
			BarberID:      req.BarberID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.Name,
			CustomerEmail: req.Email,
			CustomerPhone: req.Phone,
			Notes:         req.Notes,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{"ok": true, "booking": b})
}

func mapBookingErrors(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "slot_taken":
			httperr.Conflict(c, code, "Esa franja ya está ocupada.")
		case "barber_not_found":
			httperr.BadRequest(c, code, "Barbero desconocido.")
		case "service_not_found":
			httperr.BadRequest(c, code, "Servicio desconocido.")
		case "invalid_date_or_time":
			httperr.BadRequest(c, code, "Fecha u hora inválidas.")
		case "missing_name":
			httperr.BadRequest(c, code, "Falta el nombre del cliente.")
		default:
			httperr.BadRequest(c, code, "Petición inválida.")
		}
		return
	}

	httperr.Internal(c, "booking_failed", "No se pudo crear la reserva.")
}

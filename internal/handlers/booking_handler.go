package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labarberiamataro/booking-api/internal/httperr"
	"github.com/labarberiamataro/booking-api/internal/httpresp"
	ucBooking "github.com/labarberiamataro/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	listByDateUC *ucBooking.ListBookingsByDate
	loc          *time.Location
}

func NewBookingHandler(
	listByDateUC *ucBooking.ListBookingsByDate,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		listByDateUC: listByDateUC,
		loc:          loc,
	}
}

// GET /api/admin/bookings?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Falta el parámetro date.")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}

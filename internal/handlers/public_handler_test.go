package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labarberiamataro/booking-api/internal/audit"
	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/models"
	ucBooking "github.com/labarberiamataro/booking-api/internal/usecase/booking"
)

type fakeCalendarSource struct {
	busy        []schedule.BusyInterval
	listCalls   int
	insertCalls int
}

func (f *fakeCalendarSource) ListBusy(_ context.Context, _ string, _, _ time.Time) ([]schedule.BusyInterval, error) {
	f.listCalls++
	return f.busy, nil
}

func (f *fakeCalendarSource) InsertEvent(_ context.Context, _ string, _ schedule.EventInput) (string, error) {
	f.insertCalls++
	return "evt-1", nil
}

type fakeBookingRepo struct{}

func (fakeBookingRepo) CreateBooking(context.Context, *models.Booking) error { return nil }
func (fakeBookingRepo) ListBookingsForDay(context.Context, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}

type discardSink struct{}

func (discardSink) Write(audit.Event) error { return nil }

func newTestRouter(source *fakeCalendarSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := schedule.NewCatalog(
		[]schedule.Service{{ID: "corte_caballero", DurationMin: 30}},
		[]schedule.Barber{{ID: "luis", CalendarID: "cal-luis"}},
	)

	hours := schedule.WorkingHours{
		OpenWeekdays: map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true, time.Saturday: true,
		},
		StartHour:   8,
		EndHour:     20,
		StepMinutes: 15,
	}

	availabilityUC := ucBooking.NewGetAvailability(catalog, source, hours, false, nil)
	createUC := ucBooking.NewCreateBooking(
		catalog, source, fakeBookingRepo{}, audit.NewDispatcher(discardSink{}), time.UTC,
	)

	h := NewPublicHandler(availabilityUC, createUC, catalog, time.UTC)

	r := gin.New()
	r.GET("/slots", h.GetSlots)
	r.POST("/book", h.Book)
	r.GET("/services", h.ListServices)
	r.GET("/barbers", h.ListBarbers)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSlots_MissingParams(t *testing.T) {
	r := newTestRouter(&fakeCalendarSource{})

	w := doRequest(r, http.MethodGet, "/slots?date=2026-09-02", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing_params") {
		t.Fatalf("body %s", w.Body.String())
	}
}

func TestGetSlots_UnknownBarber(t *testing.T) {
	source := &fakeCalendarSource{}
	r := newTestRouter(source)

	w := doRequest(r, http.MethodGet, "/slots?date=2026-09-02&barberId=pepe&serviceId=corte_caballero", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if source.listCalls != 0 {
		t.Fatal("calendar must not be queried for an unknown barber")
	}
}

func TestGetSlots_OK(t *testing.T) {
	r := newTestRouter(&fakeCalendarSource{})

	w := doRequest(r, http.MethodGet, "/slots?date=2026-09-02&barberId=luis&serviceId=corte_caballero", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"ok":true`) || !strings.Contains(body, `"08:00"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestBook_ValidationBeforeCalendar(t *testing.T) {
	source := &fakeCalendarSource{}
	r := newTestRouter(source)

	// falta name
	w := doRequest(r, http.MethodPost, "/book",
		`{"date":"2026-09-02","time":"11:00","barberId":"luis","serviceId":"corte_caballero"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if source.listCalls != 0 || source.insertCalls != 0 {
		t.Fatal("validation failures must not reach the calendar")
	}
}

func TestBook_Conflict(t *testing.T) {
	source := &fakeCalendarSource{
		busy: []schedule.BusyInterval{{
			Start: time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC),
		}},
	}
	r := newTestRouter(source)

	w := doRequest(r, http.MethodPost, "/book",
		`{"date":"2026-09-02","time":"11:00","barberId":"luis","serviceId":"corte_caballero","name":"Jordi"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409 (body %s)", w.Code, w.Body.String())
	}
	if source.insertCalls != 0 {
		t.Fatal("conflict must not insert")
	}
}

func TestBook_Accepted(t *testing.T) {
	source := &fakeCalendarSource{}
	r := newTestRouter(source)

	w := doRequest(r, http.MethodPost, "/book",
		`{"date":"2026-09-02","time":"11:00","barberId":"luis","serviceId":"corte_caballero","name":"Jordi","phone":"600123123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if source.insertCalls != 1 {
		t.Fatalf("expected one insert, got %d", source.insertCalls)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("body %s", w.Body.String())
	}
}

func TestListCatalogs(t *testing.T) {
	r := newTestRouter(&fakeCalendarSource{})

	w := doRequest(r, http.MethodGet, "/services", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "corte_caballero") {
		t.Fatalf("services: status %d body %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/barbers", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "luis") {
		t.Fatalf("barbers: status %d body %s", w.Code, w.Body.String())
	}
}

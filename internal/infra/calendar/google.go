package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/labarberiamataro/booking-api/internal/config"
	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
)

// GoogleCalendarSource implementa schedule.CalendarSource sobre la API v3
// de Google Calendar, autenticada con el refresh token de la cuenta de la
// tienda.
type GoogleCalendarSource struct {
	svc     *gcal.Service
	loc     *time.Location
	tzName  string
	timeout time.Duration
}

func NewGoogleCalendarSource(ctx context.Context, cfg *config.Config, loc *time.Location) (*GoogleCalendarSource, error) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRefreshToken == "" {
		return nil, fmt.Errorf("faltan credenciales de Google en variables de entorno")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     google.Endpoint,
	}

	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.GoogleRefreshToken,
	})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("google calendar service: %w", err)
	}

	return &GoogleCalendarSource{
		svc:     svc,
		loc:     loc,
		tzName:  cfg.Timezone,
		timeout: cfg.CalendarTimeout,
	}, nil
}

// ListBusy devuelve todos los eventos confirmados que tocan [from, to),
// siguiendo los page tokens hasta agotar el listado.
func (g *GoogleCalendarSource) ListBusy(ctx context.Context, calendarID string, from, to time.Time) ([]schedule.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var busy []schedule.BusyInterval
	pageToken := ""

	for {
		call := g.svc.Events.List(calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(250)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list events %s: %w", calendarID, err)
		}

		for _, ev := range res.Items {
			if ev.Status == "cancelled" {
				continue
			}
			if iv, ok := g.busyFromEvent(ev); ok {
				busy = append(busy, iv)
			}
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	return busy, nil
}

// busyFromEvent normaliza un evento a un intervalo concreto. Los eventos de
// día completo ocupan los días indicados al completo: la API ya manda la
// fecha de fin en exclusivo (las 00:00 del día siguiente), y se respeta.
func (g *GoogleCalendarSource) busyFromEvent(ev *gcal.Event) (schedule.BusyInterval, bool) {
	if ev.Start == nil || ev.End == nil {
		return schedule.BusyInterval{}, false
	}

	start, okStart := g.instantFrom(ev.Start)
	end, okEnd := g.instantFrom(ev.End)
	if !okStart || !okEnd {
		return schedule.BusyInterval{}, false
	}

	return schedule.BusyInterval{Start: start, End: end}, true
}

func (g *GoogleCalendarSource) instantFrom(edt *gcal.EventDateTime) (time.Time, bool) {
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(g.loc), true
	}

	if edt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", edt.Date, g.loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	return time.Time{}, false
}

// InsertEvent crea exactamente un evento; cualquier fallo se devuelve al
// que llama, nunca se silencia.
func (g *GoogleCalendarSource) InsertEvent(ctx context.Context, calendarID string, ev schedule.EventInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	event := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05"),
			TimeZone: g.tzName,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05"),
			TimeZone: g.tzName,
		},
	}

	created, err := g.svc.Events.Insert(calendarID, event).
		SendUpdates("none").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("insert event %s: %w", calendarID, err)
	}

	return created.Id, nil
}

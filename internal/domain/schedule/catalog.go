package schedule

import (
	"sort"
	"time"
)

// Service es un servicio del catálogo (los ids coinciden con el frontend).
type Service struct {
	ID          string `json:"id"`
	DurationMin int    `json:"duration_min"`
}

func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMin) * time.Minute
}

// Barber asocia un barbero con su calendario externo.
type Barber struct {
	ID         string `json:"id"`
	CalendarID string `json:"-"`
}

// Catalog es inmutable después del startup; los ids desconocidos se
// rechazan antes de cualquier llamada al calendario.
type Catalog struct {
	services map[string]Service
	barbers  map[string]Barber
}

func NewCatalog(services []Service, barbers []Barber) *Catalog {
	c := &Catalog{
		services: make(map[string]Service, len(services)),
		barbers:  make(map[string]Barber, len(barbers)),
	}
	for _, s := range services {
		c.services[s.ID] = s
	}
	for _, b := range barbers {
		c.barbers[b.ID] = b
	}
	return c
}

func (c *Catalog) Service(id string) (Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

func (c *Catalog) Barber(id string) (Barber, bool) {
	b, ok := c.barbers[id]
	return b, ok
}

func (c *Catalog) Services() []Service {
	out := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Barbers() []Barber {
	out := make([]Barber, 0, len(c.barbers))
	for _, b := range c.barbers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

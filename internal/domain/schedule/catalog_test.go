package schedule

import "testing"

func TestCatalogLookups(t *testing.T) {
	catalog := NewCatalog(
		[]Service{{ID: "corte_caballero", DurationMin: 30}, {ID: "cejas", DurationMin: 10}},
		[]Barber{{ID: "luis", CalendarID: "cal-luis"}},
	)

	if _, ok := catalog.Service("corte_caballero"); !ok {
		t.Fatal("known service not found")
	}
	if _, ok := catalog.Service("nope"); ok {
		t.Fatal("unknown service must not resolve")
	}
	if b, ok := catalog.Barber("luis"); !ok || b.CalendarID != "cal-luis" {
		t.Fatalf("barber lookup broken: %+v ok=%v", b, ok)
	}

	services := catalog.Services()
	if len(services) != 2 || services[0].ID != "cejas" {
		t.Fatalf("services listing should be sorted by id, got %+v", services)
	}
}

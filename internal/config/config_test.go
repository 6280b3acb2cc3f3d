package config

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	days := parseWeekdays("1,2,3,4,5,6")

	if days[time.Sunday] {
		t.Fatal("sunday must be closed")
	}
	for d := time.Monday; d <= time.Saturday; d++ {
		if !days[d] {
			t.Fatalf("%s should be open", d)
		}
	}

	if got := parseWeekdays("7,-1,abc, 0 "); len(got) != 1 || !got[time.Sunday] {
		t.Fatalf("bad entries must be ignored, got %v", got)
	}
}

func TestParseBarberCalendars(t *testing.T) {
	t.Setenv("CAL_MARCO", "cal-marco@group.calendar.google.com")

	got := parseBarberCalendars("Ana=cal-ana,luis=cal-luis, =x,broken")

	if got["ana"] != "cal-ana" {
		t.Fatalf("barber ids are lowercased: %v", got)
	}
	if got["luis"] != "cal-luis" {
		t.Fatalf("missing luis: %v", got)
	}
	if got["marco"] != "cal-marco@group.calendar.google.com" {
		t.Fatalf("legacy CAL_ vars must be picked up: %v", got)
	}
	if len(got) != 3 {
		t.Fatalf("malformed entries must be dropped, got %v", got)
	}
}

func TestLoadCopiesTheServiceCatalog(t *testing.T) {
	a := Load()
	a.ServiceDurations["corte_caballero"] = 5

	if b := Load(); b.ServiceDurations["corte_caballero"] != 30 {
		t.Fatal("mutating one Config must not leak into the next")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STEP_MINUTES", "20")
	t.Setenv("HIDE_PAST_SLOTS_TODAY", "false")
	t.Setenv("TIMEZONE", "Europe/Madrid")
	t.Setenv("ALLOWED_ORIGINS", "https://labarberiamataro.com, https://www.labarberiamataro.com")

	cfg := Load()

	if cfg.StepMinutes != 20 {
		t.Fatalf("StepMinutes = %d", cfg.StepMinutes)
	}
	if cfg.HidePastSlotsToday {
		t.Fatal("HIDE_PAST_SLOTS_TODAY=false not honored")
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Fatalf("Timezone = %s", cfg.Timezone)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://www.labarberiamataro.com" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.ServiceDurations["corte_caballero"] != 30 {
		t.Fatal("default service catalog missing")
	}
}

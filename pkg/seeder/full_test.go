package seeder

import (
	"strings"
	"testing"

	"backend_chiccit/pkg/models"
)

func TestSeedChiccitFull(t *testing.T) {
	s, mem := newTestSeeder()
	result, err := seedChiccitFull(s, seededParams(testOrg))
	if err != nil {
		t.Fatalf("seedChiccitFull: %v", err)
	}
	if _, ok := result["errors"]; ok {
		t.Fatalf("unexpected errors: %v", result["errors"])
	}

	actions, ok := result["actions"].(map[string]any)
	if !ok {
		t.Fatalf("actions missing from result: %v", result)
	}
	for _, action := range fullPlan {
		if _, ok := actions[action]; !ok {
			t.Errorf("no result recorded for %s", action)
		}
	}

	// Spot checks that the pieces actually landed.
	if n := mem.Count(&models.EmployeeProfile{}); n != 22 {
		t.Errorf("employee_profiles = %d, want 22", n)
	}
	if n := mem.Count(&models.Order{}); n == 0 {
		t.Error("no orders seeded")
	}
	if n := mem.Count(&models.ClockEvent{}); n == 0 {
		t.Error("no clock events seeded")
	}
}

func TestSeedChiccitFullContinuesPastFailures(t *testing.T) {
	s, mem := newTestSeeder()
	mem.FailOn = "pnl_snapshots"

	result, err := seedChiccitFull(s, seededParams(testOrg))
	if err != nil {
		t.Fatalf("composite should not abort on one failed step: %v", err)
	}

	errs, ok := result["errors"].([]string)
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v, want one entry", result["errors"])
	}
	if !strings.HasPrefix(errs[0], "seed_chiccit_pnl:") {
		t.Errorf("error entry = %q", errs[0])
	}

	actions := result["actions"].(map[string]any)
	if _, ok := actions["seed_chiccit_pnl"]; ok {
		t.Error("failed action should not record a result")
	}
	// Steps after the failure still ran.
	if n := mem.Count(&models.Reservation{}); n == 0 {
		t.Error("reservations step did not run after the pnl failure")
	}
}

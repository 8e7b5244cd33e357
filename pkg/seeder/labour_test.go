package seeder

import (
	"testing"
	"time"

	"backend_chiccit/pkg/models"
)

func TestSeedChiccitLabourRequiresRoster(t *testing.T) {
	s, _ := newTestSeeder()
	if _, err := seedChiccitLabour(s, seededParams(testOrg)); err == nil {
		t.Fatal("expected an error with no employee profiles seeded")
	}
}

func TestSeedChiccitLabourViolations(t *testing.T) {
	s, mem := newTestSeeder()
	if _, err := seedChiccitStaff(s, Params{OrgID: testOrg}); err != nil {
		t.Fatalf("seedChiccitStaff: %v", err)
	}
	result, err := seedChiccitLabour(s, seededParams(testOrg))
	if err != nil {
		t.Fatalf("seedChiccitLabour: %v", err)
	}

	if result["break_violations"] != 3 {
		t.Errorf("break_violations = %v, want 3", result["break_violations"])
	}

	breaks := 0
	rests := 0
	for _, row := range mem.Rows(&models.ClockEvent{}) {
		ev := row.(models.ClockEvent)
		switch ev.ComplianceStatus {
		case models.ComplianceBreakViolation:
			breaks++
			if ev.BreakMinutes != 0 {
				t.Errorf("break violation on %s recorded %d break minutes", ev.ShiftDate, ev.BreakMinutes)
			}
			if ev.ClockOut.Sub(ev.ClockIn) < 6*time.Hour {
				t.Errorf("break violation on %s is too short a shift to be one", ev.ShiftDate)
			}
		case models.ComplianceRestViolation:
			rests++
		}
		if !ev.ClockOut.After(ev.ClockIn) {
			t.Errorf("clock event %d closes before it opens", ev.ID)
		}
	}
	if breaks != 3 {
		t.Errorf("stored break violations = %d, want exactly 3", breaks)
	}
	if rests == 0 {
		t.Error("seeded run produced no rest violations")
	}
}

func TestSeedChiccitLabourScopedToOrg(t *testing.T) {
	s, mem := newTestSeeder()
	if _, err := seedChiccitStaff(s, Params{OrgID: testOrg}); err != nil {
		t.Fatal(err)
	}
	if _, err := seedChiccitLabour(s, seededParams(testOrg)); err != nil {
		t.Fatal(err)
	}
	for _, row := range mem.Rows(&models.ClockEvent{}) {
		if ev := row.(models.ClockEvent); ev.OrgID != testOrg {
			t.Fatalf("clock event %d belongs to org %q", ev.ID, ev.OrgID)
		}
	}
}

package seeder

import (
	"encoding/json"
	"errors"
	"io"
	"sort"
	"testing"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/store"

	"github.com/sirupsen/logrus"
)

func newTestSeeder() (*Seeder, *store.Memory) {
	mem := store.NewMemory()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(mem, log), mem
}

func seededParams(org string) Params {
	seed := int64(42)
	return Params{OrgID: org, Seed: &seed}
}

const testOrg = "7b7f3a2e-1111-4d4d-8888-0123456789ab"

func TestRegistryActionCatalog(t *testing.T) {
	want := []string{
		"seed_ingredients",
		"seed_recipes",
		"seed_demand_insights",
		"seed_pos_menu",
		"seed_chiccit_staff",
		"seed_chiccit_revenue",
		"seed_chiccit_labour",
		"seed_chiccit_overheads",
		"seed_chiccit_pnl",
		"seed_chiccit_bev",
		"seed_chiccit_reservations",
		"seed_chiccit_marketing",
		"seed_chiccit_audit_scores",
		"seed_chiccit_full",
		"seed_todo_items",
		"seed_todo_recurring_rules",
		"seed_delegated_tasks",
		"seed_gcc_compliance",
		"seed_home_cook",
		"seed_feature_releases",
		"seed_email_templates",
		"seed_vendor",
		"seed_admin",
		"seed_200_test_plan",
		"nuke_all",
		"clear_table",
	}
	sort.Strings(want)

	got := make([]string, 0, len(Registry))
	for name := range Registry {
		got = append(got, name)
	}
	sort.Strings(got)

	if len(got) != len(want) {
		t.Fatalf("registry has %d actions, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("registry action %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	s, _ := newTestSeeder()
	_, err := s.Dispatch("seed_unicorns", nil)
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestDispatchInvalidPayload(t *testing.T) {
	s, _ := newTestSeeder()
	_, err := s.Dispatch("seed_ingredients", json.RawMessage(`{"org_id": 5}`))
	if err == nil {
		t.Fatal("expected decode error for non-string org_id")
	}
}

func TestDispatchDecodesParams(t *testing.T) {
	s, mem := newTestSeeder()
	raw := json.RawMessage(`{"org_id":"` + testOrg + `"}`)
	if _, err := s.Dispatch("seed_chiccit_staff", raw); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if n := mem.Count(&models.EmployeeProfile{}); n != 22 {
		t.Fatalf("employee_profiles = %d rows, want 22", n)
	}
}

func TestTenantActionsRequireOrg(t *testing.T) {
	s, _ := newTestSeeder()
	for _, action := range []string{
		"seed_pos_menu",
		"seed_chiccit_staff",
		"seed_chiccit_revenue",
		"seed_chiccit_labour",
		"seed_chiccit_overheads",
		"seed_chiccit_pnl",
		"seed_chiccit_bev",
		"seed_chiccit_reservations",
		"seed_chiccit_marketing",
		"seed_chiccit_audit_scores",
		"seed_chiccit_full",
		"seed_todo_items",
		"seed_vendor",
	} {
		if _, err := Registry[action](s, Params{}); err == nil {
			t.Errorf("%s: expected an error without org_id", action)
		}
	}
}

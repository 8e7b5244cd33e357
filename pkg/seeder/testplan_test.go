package seeder

import (
	"testing"

	"backend_chiccit/pkg/models"
)

func TestSeed200TestPlanDefaults(t *testing.T) {
	s, mem := newTestSeeder()
	result, err := seed200TestPlan(s, Params{})
	if err != nil {
		t.Fatalf("seed200TestPlan: %v", err)
	}
	if result["organizations"] != 10 {
		t.Errorf("organizations = %v, want default 10", result["organizations"])
	}
	if result["users"] != 10 {
		t.Errorf("users = %v, want 10", result["users"])
	}
	if _, ok := result["errors"]; ok {
		t.Errorf("unexpected errors: %v", result["errors"])
	}

	roles := mem.Rows(&models.UserRole{})
	if len(roles) != 10 {
		t.Fatalf("user_roles = %d, want 10", len(roles))
	}
	for _, row := range roles {
		if role := row.(models.UserRole); role.Role != models.RoleAdmin {
			t.Errorf("role = %q, want admin", role.Role)
		}
	}

	for _, row := range mem.Rows(&models.Organization{}) {
		org := row.(models.Organization)
		if !org.IsDemo {
			t.Errorf("org %q not flagged as demo", org.Slug)
		}
		if org.ID == "" {
			t.Errorf("org %q has no ID", org.Slug)
		}
	}
}

func TestSeed200TestPlanRerunIsIdempotent(t *testing.T) {
	s, mem := newTestSeeder()
	if _, err := seed200TestPlan(s, Params{Count: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := seed200TestPlan(s, Params{Count: 5}); err != nil {
		t.Fatal(err)
	}
	if n := mem.Count(&models.Organization{}); n != 5 {
		t.Errorf("organizations = %d after rerun, want 5", n)
	}
	if n := mem.Count(&models.User{}); n != 5 {
		t.Errorf("users = %d after rerun, want 5", n)
	}
}

func TestSeed200TestPlanWithSeeds(t *testing.T) {
	s, mem := newTestSeeder()
	seed := int64(7)
	result, err := seed200TestPlan(s, Params{Count: 2, WithSeeds: true, Seed: &seed})
	if err != nil {
		t.Fatalf("seed200TestPlan: %v", err)
	}
	if _, ok := result["errors"]; ok {
		t.Fatalf("unexpected errors: %v", result["errors"])
	}
	// Two orgs, each with the fixed 22-person roster and a revenue history.
	if n := mem.Count(&models.EmployeeProfile{}); n != 44 {
		t.Errorf("employee_profiles = %d, want 44", n)
	}
	if n := mem.Count(&models.Order{}); n == 0 {
		t.Error("with_seeds produced no orders")
	}
}

func TestContentSeedersUpsertBySlug(t *testing.T) {
	s, mem := newTestSeeder()
	for run := 0; run < 2; run++ {
		if _, err := seedFeatureReleases(s, Params{}); err != nil {
			t.Fatal(err)
		}
		if _, err := seedEmailTemplates(s, Params{}); err != nil {
			t.Fatal(err)
		}
		if _, err := seedAdmin(s, Params{}); err != nil {
			t.Fatal(err)
		}
	}
	if n := mem.Count(&models.FeatureRelease{}); n != 4 {
		t.Errorf("feature_releases = %d after rerun, want 4", n)
	}
	if n := mem.Count(&models.EmailTemplate{}); n != 5 {
		t.Errorf("email_templates = %d after rerun, want 5", n)
	}
	if n := mem.Count(&models.LandingSection{}); n != 5 {
		t.Errorf("landing_sections = %d after rerun, want 5", n)
	}
}

func TestFixtureContentCounts(t *testing.T) {
	s, _ := newTestSeeder()
	cases := []struct {
		action string
		key    string
		want   int
	}{
		{"seed_todo_items", "todo_items", 8},
		{"seed_todo_recurring_rules", "todo_recurring_rules", 4},
		{"seed_delegated_tasks", "delegated_tasks", 5},
		{"seed_gcc_compliance", "compliance_checks", 6},
		{"seed_home_cook", "home_cook_meals", 6},
		{"seed_vendor", "vendor_products", 10},
	}
	for _, tc := range cases {
		result, err := Registry[tc.action](s, Params{OrgID: testOrg})
		if err != nil {
			t.Errorf("%s: %v", tc.action, err)
			continue
		}
		if result[tc.key] != tc.want {
			t.Errorf("%s: %s = %v, want %d", tc.action, tc.key, result[tc.key], tc.want)
		}
	}
}

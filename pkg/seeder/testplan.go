package seeder

import (
	"fmt"
	"time"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"

	"github.com/google/uuid"
)

func seedTodoItems(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	due := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	items := []models.TodoItem{
		{OrgID: p.OrgID, Title: "Deep clean coolroom", Status: models.TaskStatusOpen, Priority: models.PriorityHigh, DueOn: due(2026, time.March, 2)},
		{OrgID: p.OrgID, Title: "Book hood filter service", Status: models.TaskStatusOpen, Priority: models.PriorityMedium, DueOn: due(2026, time.March, 9)},
		{OrgID: p.OrgID, Title: "Update allergen matrix", Status: models.TaskStatusInProgress, Priority: models.PriorityHigh, DueOn: due(2026, time.March, 4)},
		{OrgID: p.OrgID, Title: "Renew liquor licence", Status: models.TaskStatusOpen, Priority: models.PriorityHigh, DueOn: due(2026, time.April, 30)},
		{OrgID: p.OrgID, Title: "Quote new glass washer", Status: models.TaskStatusOpen, Priority: models.PriorityLow, DueOn: nil},
		{OrgID: p.OrgID, Title: "Staff meeting agenda", Status: models.TaskStatusDone, Priority: models.PriorityMedium, DueOn: due(2026, time.February, 24)},
		{OrgID: p.OrgID, Title: "Rotate cellar stock", Status: models.TaskStatusDone, Priority: models.PriorityLow, DueOn: due(2026, time.February, 20)},
		{OrgID: p.OrgID, Title: "Chase produce credit note", Status: models.TaskStatusOpen, Priority: models.PriorityMedium, DueOn: nil},
	}
	if err := s.Store.Create(&items); err != nil {
		return nil, err
	}
	return Result{"todo_items": len(items)}, nil
}

func seedTodoRecurringRules(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	rules := []models.TodoRecurringRule{
		{OrgID: p.OrgID, Title: "Fridge temperature log", Rule: "0 8 * * *", IsEnabled: true},
		{OrgID: p.OrgID, Title: "Weekly pest check", Rule: "0 9 * * 2", IsEnabled: true},
		{OrgID: p.OrgID, Title: "Monthly stocktake", Rule: "0 7 1 * *", IsEnabled: true},
		{OrgID: p.OrgID, Title: "Quarterly fire equipment check", Rule: "0 10 1 */3 *", IsEnabled: false},
	}
	if err := s.Store.Create(&rules); err != nil {
		return nil, err
	}
	return Result{"todo_recurring_rules": len(rules)}, nil
}

func seedDelegatedTasks(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	due := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tasks := []models.DelegatedTask{
		{OrgID: p.OrgID, Title: "Count spirits shelf", AssignedTo: "Ben Okafor", AssignedBy: "Ryan Calloway", Status: models.TaskStatusOpen, DueOn: due(2026, time.March, 1)},
		{OrgID: p.OrgID, Title: "Train new casuals on POS", AssignedTo: "Emma Whitfield", AssignedBy: "Ryan Calloway", Status: models.TaskStatusInProgress, DueOn: due(2026, time.March, 6)},
		{OrgID: p.OrgID, Title: "Write March specials", AssignedTo: "Daniel Marsh", AssignedBy: "Ryan Calloway", Status: models.TaskStatusOpen, DueOn: due(2026, time.March, 3)},
		{OrgID: p.OrgID, Title: "Check first aid kit", AssignedTo: "Emma Whitfield", AssignedBy: "Ben Okafor", Status: models.TaskStatusDone, DueOn: due(2026, time.February, 21)},
		{OrgID: p.OrgID, Title: "Reconcile till float", AssignedTo: "Ben Okafor", AssignedBy: "Ryan Calloway", Status: models.TaskStatusOpen, DueOn: nil},
	}
	if err := s.Store.Create(&tasks); err != nil {
		return nil, err
	}
	return Result{"delegated_tasks": len(tasks)}, nil
}

func seedGccCompliance(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	checkedAt := time.Date(2026, time.February, 25, 9, 30, 0, 0, time.UTC)
	checks := []models.ComplianceCheck{
		{OrgID: p.OrgID, CheckName: "Coolroom under 5°C", Category: "temperature", Passed: true, CheckedAt: checkedAt, CheckedBy: "Daniel Marsh"},
		{OrgID: p.OrgID, CheckName: "Freezer under -18°C", Category: "temperature", Passed: true, CheckedAt: checkedAt, CheckedBy: "Daniel Marsh"},
		{OrgID: p.OrgID, CheckName: "Sanitiser at correct dilution", Category: "cleaning", Passed: true, CheckedAt: checkedAt, CheckedBy: "Grace Donnelly"},
		{OrgID: p.OrgID, CheckName: "Raw meat stored below ready-to-eat", Category: "storage", Passed: false, CheckedAt: checkedAt, CheckedBy: "Grace Donnelly", Observation: "Chicken tray found on middle shelf; moved and retrained."},
		{OrgID: p.OrgID, CheckName: "Allergen labels on prepped containers", Category: "labelling", Passed: true, CheckedAt: checkedAt, CheckedBy: "Daniel Marsh"},
		{OrgID: p.OrgID, CheckName: "Handwash stations stocked", Category: "hygiene", Passed: true, CheckedAt: checkedAt, CheckedBy: "Grace Donnelly"},
	}
	if err := s.Store.Create(&checks); err != nil {
		return nil, err
	}
	return Result{"compliance_checks": len(checks)}, nil
}

func seedHomeCook(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	meals := []models.HomeCookMeal{
		{OrgID: p.OrgID, Name: "Lasagne al Forno", CookName: "Nonna Rosa", Price: 18.50, ServingSize: 2, IsAvailable: true},
		{OrgID: p.OrgID, Name: "Butter Chicken & Rice", CookName: "Priya's Kitchen", Price: 16.00, ServingSize: 1, IsAvailable: true},
		{OrgID: p.OrgID, Name: "Pho Bo", CookName: "Kim's Table", Price: 15.50, ServingSize: 1, IsAvailable: true},
		{OrgID: p.OrgID, Name: "Moussaka", CookName: "Yiayia Eleni", Price: 17.00, ServingSize: 2, IsAvailable: false},
		{OrgID: p.OrgID, Name: "Beef Rendang", CookName: "Sari's Home", Price: 19.00, ServingSize: 2, IsAvailable: true},
		{OrgID: p.OrgID, Name: "Shepherd's Pie", CookName: "Maggie's Oven", Price: 14.50, ServingSize: 1, IsAvailable: true},
	}
	if err := s.Store.Create(&meals); err != nil {
		return nil, err
	}
	return Result{"home_cook_meals": len(meals)}, nil
}

// seedFeatureReleases upserts the changelog by slug so re-runs refresh copy
// instead of duplicating entries.
func seedFeatureReleases(s *Seeder, p Params) (Result, error) {
	releases := []models.FeatureRelease{
		{Slug: "labour-compliance-alerts", Title: "Labour compliance alerts", Body: "Break and rest violations now surface on the dashboard within an hour of clock-out.", ReleasedOn: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)},
		{Slug: "cellar-variance-report", Title: "Cellar variance report", Body: "Stocktakes now roll up to a costed variance report per category.", ReleasedOn: time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC)},
		{Slug: "reservation-sources", Title: "Reservation source tracking", Body: "See which channel each booking arrived from and its no-show rate.", ReleasedOn: time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC)},
		{Slug: "demand-forecasts", Title: "Demand forecasts", Body: "Weekday demand predictions for headline menu items, refreshed nightly.", ReleasedOn: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
	}
	if err := s.Store.Upsert(&releases, "slug"); err != nil {
		return nil, err
	}
	return Result{"feature_releases": len(releases)}, nil
}

// seedEmailTemplates upserts the transactional email bodies by slug
func seedEmailTemplates(s *Seeder, p Params) (Result, error) {
	templates := []models.EmailTemplate{
		{Slug: "welcome", Subject: "Welcome to chiccit", HTML: "<h1>Welcome aboard</h1><p>Your venue is ready to set up.</p>"},
		{Slug: "invite-staff", Subject: "You've been invited", HTML: "<p>{{.InviterName}} invited you to join {{.OrgName}} on chiccit.</p>"},
		{Slug: "password-reset", Subject: "Reset your password", HTML: "<p>Click <a href=\"{{.ResetURL}}\">here</a> to choose a new password.</p>"},
		{Slug: "document-expiry", Subject: "Certification expiring soon", HTML: "<p>{{.EmployeeName}}'s {{.DocType}} expires on {{.ExpiresAt}}.</p>"},
		{Slug: "weekly-digest", Subject: "Your week at {{.OrgName}}", HTML: "<p>Revenue, labour and compliance in one view.</p>"},
	}
	if err := s.Store.Upsert(&templates, "slug"); err != nil {
		return nil, err
	}
	return Result{"email_templates": len(templates)}, nil
}

func seedVendor(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	products := []models.VendorProduct{
		{OrgID: p.OrgID, VendorName: "Bidfood", SKU: "BF-10021", Name: "Plain Flour 12.5kg", UnitPrice: 19.80, LeadDays: 2},
		{OrgID: p.OrgID, VendorName: "Bidfood", SKU: "BF-10455", Name: "Olive Oil 4L", UnitPrice: 36.50, LeadDays: 2},
		{OrgID: p.OrgID, VendorName: "PFD", SKU: "PFD-2210", Name: "Mozzarella Shred 2kg", UnitPrice: 24.90, LeadDays: 3},
		{OrgID: p.OrgID, VendorName: "PFD", SKU: "PFD-2384", Name: "Chicken Breast 5kg", UnitPrice: 58.00, LeadDays: 1},
		{OrgID: p.OrgID, VendorName: "Two Providores", SKU: "TP-0031", Name: "Roma Tomatoes 10kg", UnitPrice: 48.00, LeadDays: 1},
		{OrgID: p.OrgID, VendorName: "Two Providores", SKU: "TP-0104", Name: "Basil Bunch x12", UnitPrice: 33.60, LeadDays: 1},
		{OrgID: p.OrgID, VendorName: "Ocean Fresh", SKU: "OF-5502", Name: "Atlantic Salmon Side", UnitPrice: 62.00, LeadDays: 1},
		{OrgID: p.OrgID, VendorName: "Dairy Co", SKU: "DC-1180", Name: "Butter Unsalted 5kg", UnitPrice: 54.50, LeadDays: 2},
		{OrgID: p.OrgID, VendorName: "Dairy Co", SKU: "DC-1204", Name: "Thickened Cream 10L", UnitPrice: 49.00, LeadDays: 2},
		{OrgID: p.OrgID, VendorName: "Cellar Direct", SKU: "CD-7741", Name: "House Red Shiraz x12", UnitPrice: 96.00, LeadDays: 4},
	}
	if err := s.Store.Create(&products); err != nil {
		return nil, err
	}
	return Result{"vendor_products": len(products)}, nil
}

// seedAdmin upserts the marketing-site landing sections by slug
func seedAdmin(s *Seeder, p Params) (Result, error) {
	sections := []models.LandingSection{
		{Slug: "hero", Heading: "Run your venue on numbers, not vibes", Body: "Revenue, labour, compliance and the cellar in one place.", SortOrder: 1},
		{Slug: "labour", Heading: "Labour compliance built in", Body: "Award rates, break rules and rest periods checked on every shift.", SortOrder: 2},
		{Slug: "cellar", Heading: "Know your pour cost", Body: "Stocktakes that cost themselves and flag variance as it happens.", SortOrder: 3},
		{Slug: "insights", Heading: "Forecast the week ahead", Body: "Demand predictions per item, per weekday.", SortOrder: 4},
		{Slug: "cta", Heading: "Start your free trial", Body: "No card required. Set up takes fifteen minutes.", SortOrder: 5},
	}
	if err := s.Store.Upsert(&sections, "slug"); err != nil {
		return nil, err
	}
	return Result{"landing_sections": len(sections)}, nil
}

// seed200TestPlan provisions a block of demo organizations with an admin user
// each, for exercising the product at tenant scale. data.count overrides the
// default of 10; data.with_seeds additionally runs the staff and revenue
// generators per organization, continuing past per-org failures.
func seed200TestPlan(s *Seeder, p Params) (Result, error) {
	count := p.Count
	if count <= 0 {
		count = 10
	}

	// One hash shared across the fixture users; hashing per-user would
	// dominate the runtime at scale.
	hash, err := utils.HashPassword("chiccit-test-2026")
	if err != nil {
		return nil, err
	}

	var errs []string
	orgs := 0
	users := 0
	for i := 1; i <= count; i++ {
		org := models.Organization{
			ID:       uuid.NewString(),
			Name:     fmt.Sprintf("Test Venue %03d", i),
			Slug:     fmt.Sprintf("test-venue-%03d", i),
			Timezone: "Australia/Sydney",
			IsDemo:   true,
		}
		if err := s.Store.Upsert(&org, "slug"); err != nil {
			errs = append(errs, fmt.Sprintf("org %03d: %v", i, err))
			continue
		}
		orgs++

		user := models.User{
			ID:       uuid.NewString(),
			Email:    fmt.Sprintf("owner%03d@test.chiccit.app", i),
			Name:     fmt.Sprintf("Test Owner %03d", i),
			Password: &hash,
			OrgID:    &org.ID,
		}
		if err := s.Store.Upsert(&user, "email"); err != nil {
			errs = append(errs, fmt.Sprintf("user %03d: %v", i, err))
			continue
		}
		users++
		if err := s.Store.Upsert(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}, "user_id", "role"); err != nil {
			errs = append(errs, fmt.Sprintf("role %03d: %v", i, err))
			continue
		}

		if p.WithSeeds {
			sub := Params{OrgID: org.ID, Seed: p.Seed}
			for _, action := range []string{"seed_chiccit_staff", "seed_chiccit_revenue"} {
				if _, err := Registry[action](s, sub); err != nil {
					errs = append(errs, fmt.Sprintf("%s %03d: %v", action, i, err))
				}
			}
		}
	}

	result := Result{"organizations": orgs, "users": users}
	if len(errs) > 0 {
		result["errors"] = errs
	}
	return result, nil
}

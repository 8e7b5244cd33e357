package seeder

import (
	"errors"
	"fmt"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/store"
)

// nukeOrder lists every seedable table, children before parents, so foreign
// keys never dangle mid-delete. Organizations, users and roles are identity
// data and are never touched. Order matters: update this list when a model
// gains a dependent table.
var nukeOrder = []any{
	&models.StocktakeItem{},
	&models.Stocktake{},
	&models.CellarStock{},
	&models.BeverageProduct{},
	&models.Payment{},
	&models.Order{},
	&models.ClockEvent{},
	&models.EmployeeDocument{},
	&models.EmployeeProfile{},
	&models.OverheadEntry{},
	&models.OverheadRecurring{},
	&models.PnlSnapshot{},
	&models.Reservation{},
	&models.AuditScore{},
	&models.MarketingCampaign{},
	&models.DemandInsight{},
	&models.RecipeIngredient{},
	&models.Recipe{},
	&models.Ingredient{},
	&models.PosModifier{},
	&models.PosModifierGroup{},
	&models.PosMenuItem{},
	&models.PosCategory{},
	&models.VendorProduct{},
	&models.TodoItem{},
	&models.TodoRecurringRule{},
	&models.DelegatedTask{},
	&models.ComplianceCheck{},
	&models.HomeCookMeal{},
	&models.FeatureRelease{},
	&models.EmailTemplate{},
	&models.LandingSection{},
}

// clearableTables is the allow-list for clear_table. Identity tables are
// deliberately absent.
var clearableTables = map[string]any{
	"ingredients":          &models.Ingredient{},
	"recipes":              &models.Recipe{},
	"recipe_ingredients":   &models.RecipeIngredient{},
	"demand_insights":      &models.DemandInsight{},
	"pos_categories":       &models.PosCategory{},
	"pos_menu_items":       &models.PosMenuItem{},
	"pos_modifier_groups":  &models.PosModifierGroup{},
	"pos_modifiers":        &models.PosModifier{},
	"vendor_products":      &models.VendorProduct{},
	"employee_profiles":    &models.EmployeeProfile{},
	"employee_documents":   &models.EmployeeDocument{},
	"clock_events":         &models.ClockEvent{},
	"orders":               &models.Order{},
	"payments":             &models.Payment{},
	"overhead_recurring":   &models.OverheadRecurring{},
	"overhead_entries":     &models.OverheadEntry{},
	"pnl_snapshots":        &models.PnlSnapshot{},
	"beverage_products":    &models.BeverageProduct{},
	"cellar_stocks":        &models.CellarStock{},
	"stocktakes":           &models.Stocktake{},
	"stocktake_items":      &models.StocktakeItem{},
	"reservations":         &models.Reservation{},
	"audit_scores":         &models.AuditScore{},
	"marketing_campaigns":  &models.MarketingCampaign{},
	"todo_items":           &models.TodoItem{},
	"todo_recurring_rules": &models.TodoRecurringRule{},
	"delegated_tasks":      &models.DelegatedTask{},
	"compliance_checks":    &models.ComplianceCheck{},
	"home_cook_meals":      &models.HomeCookMeal{},
	"feature_releases":     &models.FeatureRelease{},
	"email_templates":      &models.EmailTemplate{},
	"landing_sections":     &models.LandingSection{},
}

type tabler interface {
	TableName() string
}

// nukeAll deletes every seedable table in dependency order. With an org_id it
// scopes each delete to that tenant, falling back to a global delete for
// shared tables; without one it wipes everything. Failures are collected per
// table and reported, never aborting the sweep.
func nukeAll(s *Seeder, p Params) (Result, error) {
	var failed []string
	cleared := 0

	for _, model := range nukeOrder {
		var err error
		if p.OrgID != "" {
			err = s.Store.DeleteByOrg(model, p.OrgID)
			if errors.Is(err, store.ErrNoOrgColumn) {
				err = s.Store.DeleteAll(model)
			}
		} else {
			err = s.Store.DeleteAll(model)
		}

		table := model.(tabler).TableName()
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", table, err))
			s.Log.WithField("table", table).WithError(err).Warn("nuke failed for table")
			continue
		}
		cleared++
	}

	result := Result{"tables_cleared": cleared}
	if len(failed) > 0 {
		result["errors"] = failed
	}
	return result, nil
}

// clearTable deletes one table by name, restricted to the allow-list so the
// identity tables cannot be cleared over the wire.
func clearTable(s *Seeder, p Params) (Result, error) {
	model, ok := clearableTables[p.Table]
	if !ok {
		return nil, fmt.Errorf("Table %s not allowed", p.Table)
	}

	var err error
	if p.OrgID != "" {
		err = s.Store.DeleteByOrg(model, p.OrgID)
		if errors.Is(err, store.ErrNoOrgColumn) {
			err = s.Store.DeleteAll(model)
		}
	} else {
		err = s.Store.DeleteAll(model)
	}
	if err != nil {
		return nil, err
	}

	return Result{"table": p.Table, "cleared": true}, nil
}

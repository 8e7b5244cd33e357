package seeder

import (
	"testing"

	"backend_chiccit/pkg/models"
)

func TestSeedIngredients(t *testing.T) {
	s, mem := newTestSeeder()
	result, err := seedIngredients(s, Params{OrgID: testOrg})
	if err != nil {
		t.Fatalf("seedIngredients: %v", err)
	}
	if result["ingredients"] != 15 {
		t.Errorf("result ingredients = %v, want 15", result["ingredients"])
	}
	if n := mem.Count(&models.Ingredient{}); n != 15 {
		t.Errorf("stored ingredients = %d, want 15", n)
	}
	for _, row := range mem.Rows(&models.Ingredient{}) {
		ing := row.(models.Ingredient)
		if ing.ID == 0 {
			t.Errorf("ingredient %q got no ID", ing.Name)
		}
		if ing.OrgID == nil || *ing.OrgID != testOrg {
			t.Errorf("ingredient %q not scoped to org", ing.Name)
		}
	}
}

func TestSeedIngredientsWithoutOrg(t *testing.T) {
	s, mem := newTestSeeder()
	if _, err := seedIngredients(s, Params{}); err != nil {
		t.Fatalf("seedIngredients without org: %v", err)
	}
	for _, row := range mem.Rows(&models.Ingredient{}) {
		if row.(models.Ingredient).OrgID != nil {
			t.Fatal("global catalog rows should carry a nil org")
		}
	}
}

func TestSeedRecipesSkipsUnresolvableLinks(t *testing.T) {
	s, mem := newTestSeeder()
	result, err := seedRecipes(s, Params{OrgID: testOrg})
	if err != nil {
		t.Fatalf("seedRecipes: %v", err)
	}
	if result["recipes"] != 6 {
		t.Errorf("recipes = %v, want 6", result["recipes"])
	}
	if result["skipped_links"] != 1 {
		t.Errorf("skipped_links = %v, want 1", result["skipped_links"])
	}

	ingredientIDs := make(map[int]bool)
	for _, row := range mem.Rows(&models.Ingredient{}) {
		ingredientIDs[row.(models.Ingredient).ID] = true
	}
	for _, row := range mem.Rows(&models.RecipeIngredient{}) {
		link := row.(models.RecipeIngredient)
		if !ingredientIDs[link.IngredientID] {
			t.Errorf("link %d references unknown ingredient %d", link.ID, link.IngredientID)
		}
		if link.RecipeID == 0 {
			t.Errorf("link %d has no recipe", link.ID)
		}
	}
}

func TestSeedDemandInsights(t *testing.T) {
	s, mem := newTestSeeder()
	if _, err := seedDemandInsights(s, Params{OrgID: testOrg}); err != nil {
		t.Fatalf("seedDemandInsights: %v", err)
	}
	// 4 items across 6 trading weekdays
	if n := mem.Count(&models.DemandInsight{}); n != 24 {
		t.Fatalf("demand_insights = %d, want 24", n)
	}
	for _, row := range mem.Rows(&models.DemandInsight{}) {
		ins := row.(models.DemandInsight)
		if ins.Weekday == 1 {
			t.Errorf("%s has a Monday prediction; venue is closed Mondays", ins.ItemName)
		}
	}
}

func TestSeedPosMenu(t *testing.T) {
	s, mem := newTestSeeder()
	result, err := seedPosMenu(s, Params{OrgID: testOrg})
	if err != nil {
		t.Fatalf("seedPosMenu: %v", err)
	}

	checks := map[string]int{
		"categories":      9,
		"menu_items":      34,
		"modifier_groups": 4,
		"modifiers":       15,
	}
	for key, want := range checks {
		if result[key] != want {
			t.Errorf("result %s = %v, want %d", key, result[key], want)
		}
	}

	categoryIDs := make(map[int]bool)
	for _, row := range mem.Rows(&models.PosCategory{}) {
		categoryIDs[row.(models.PosCategory).ID] = true
	}
	for _, row := range mem.Rows(&models.PosMenuItem{}) {
		item := row.(models.PosMenuItem)
		if !categoryIDs[item.CategoryID] {
			t.Errorf("item %q references unknown category %d", item.Name, item.CategoryID)
		}
	}

	groupIDs := make(map[int]bool)
	for _, row := range mem.Rows(&models.PosModifierGroup{}) {
		groupIDs[row.(models.PosModifierGroup).ID] = true
	}
	for _, row := range mem.Rows(&models.PosModifier{}) {
		mod := row.(models.PosModifier)
		if !groupIDs[mod.GroupID] {
			t.Errorf("modifier %q references unknown group %d", mod.Name, mod.GroupID)
		}
	}
}

package seeder

import (
	"backend_chiccit/pkg/models"
)

// ingredientCatalog returns fresh copies of the 15 reference ingredients
func ingredientCatalog(orgID string) []models.Ingredient {
	var org *string
	if orgID != "" {
		org = &orgID
	}
	rows := []models.Ingredient{
		{Name: "Plain Flour", Unit: "kg", CostUnit: 1.80},
		{Name: "Free Range Eggs", Unit: "dozen", CostUnit: 7.20},
		{Name: "Butter", Unit: "kg", CostUnit: 11.50},
		{Name: "Olive Oil", Unit: "L", CostUnit: 9.90},
		{Name: "Garlic", Unit: "kg", CostUnit: 14.00},
		{Name: "Brown Onion", Unit: "kg", CostUnit: 2.40},
		{Name: "Roma Tomato", Unit: "kg", CostUnit: 5.60},
		{Name: "Fresh Basil", Unit: "bunch", CostUnit: 3.50},
		{Name: "Mozzarella", Unit: "kg", CostUnit: 13.80},
		{Name: "Parmesan", Unit: "kg", CostUnit: 28.00},
		{Name: "Chicken Breast", Unit: "kg", CostUnit: 12.90},
		{Name: "Beef Mince", Unit: "kg", CostUnit: 15.40},
		{Name: "Atlantic Salmon", Unit: "kg", CostUnit: 34.00},
		{Name: "Thickened Cream", Unit: "L", CostUnit: 6.10},
		{Name: "Lemon", Unit: "kg", CostUnit: 4.80},
	}
	for i := range rows {
		rows[i].OrgID = org
	}
	return rows
}

// seedIngredients inserts the fixed ingredient catalog
func seedIngredients(s *Seeder, p Params) (Result, error) {
	ingredients := ingredientCatalog(p.OrgID)
	if err := s.Store.Create(&ingredients); err != nil {
		return nil, err
	}
	return Result{"ingredients": len(ingredients)}, nil
}

type recipeSpec struct {
	name         string
	yield        int
	instructions string
	ingredients  map[string]float64 // ingredient name -> quantity
}

// seedRecipes inserts the ingredient catalog, the recipes, and the links
// between them. Link rows are resolved through a name-keyed map built from
// the insert result; names with no match are skipped rather than inserted
// dangling — these are illustrative fixtures, not production records.
func seedRecipes(s *Seeder, p Params) (Result, error) {
	ingredients := ingredientCatalog(p.OrgID)
	if err := s.Store.Create(&ingredients); err != nil {
		return nil, err
	}

	ingredientIDs := make(map[string]int, len(ingredients))
	for _, ing := range ingredients {
		ingredientIDs[ing.Name] = ing.ID
	}

	specs := []recipeSpec{
		{"Spaghetti Bolognese", 4, "Brown the mince, simmer the sugo low for 2 hours.", map[string]float64{
			"Beef Mince": 0.6, "Roma Tomato": 0.8, "Brown Onion": 0.2, "Garlic": 0.03, "Parmesan": 0.08,
		}},
		{"Margherita Pizza", 2, "Stretch, sauce, cheese, basil after the oven.", map[string]float64{
			"Plain Flour": 0.35, "Roma Tomato": 0.25, "Mozzarella": 0.18, "Fresh Basil": 0.5, "Olive Oil": 0.02,
		}},
		{"Pan Seared Salmon", 2, "Crisp the skin, finish with lemon butter.", map[string]float64{
			"Atlantic Salmon": 0.4, "Butter": 0.05, "Lemon": 0.1,
			// Truffle Oil is not part of the ingredient catalog; the link is
			// expected to be skipped at resolve time.
			"Truffle Oil": 0.01,
		}},
		{"Chicken Alfredo", 4, "Reduce the cream with parmesan, toss through.", map[string]float64{
			"Chicken Breast": 0.5, "Thickened Cream": 0.4, "Parmesan": 0.1, "Garlic": 0.02,
		}},
		{"Garlic Bread", 6, "Compound butter, bake until golden.", map[string]float64{
			"Plain Flour": 0.4, "Butter": 0.15, "Garlic": 0.04,
		}},
		{"Lemon Tart", 8, "Blind bake, set the curd low and slow.", map[string]float64{
			"Plain Flour": 0.25, "Butter": 0.2, "Free Range Eggs": 0.5, "Lemon": 0.3, "Thickened Cream": 0.2,
		}},
	}

	var org *string
	if p.OrgID != "" {
		org = &p.OrgID
	}

	recipes := make([]models.Recipe, 0, len(specs))
	for _, spec := range specs {
		recipes = append(recipes, models.Recipe{
			OrgID:        org,
			Name:         spec.name,
			Yield:        spec.yield,
			Instructions: spec.instructions,
		})
	}
	if err := s.Store.Create(&recipes); err != nil {
		return nil, err
	}

	var links []models.RecipeIngredient
	skipped := 0
	for i, spec := range specs {
		for name, qty := range spec.ingredients {
			ingredientID, ok := ingredientIDs[name]
			if !ok {
				skipped++
				continue
			}
			links = append(links, models.RecipeIngredient{
				RecipeID:     recipes[i].ID,
				IngredientID: ingredientID,
				Quantity:     qty,
			})
		}
	}
	if err := s.Store.Create(&links); err != nil {
		return nil, err
	}

	return Result{
		"ingredients":        len(ingredients),
		"recipes":            len(recipes),
		"recipe_ingredients": len(links),
		"skipped_links":      skipped,
	}, nil
}

// seedDemandInsights inserts weekday demand predictions for the headline items
func seedDemandInsights(s *Seeder, p Params) (Result, error) {
	var org *string
	if p.OrgID != "" {
		org = &p.OrgID
	}

	items := []string{"Margherita Pizza", "Spaghetti Bolognese", "Pan Seared Salmon", "Chicken Alfredo"}
	// Tuesday through Sunday; the venue does not trade Mondays.
	weekdays := []int{2, 3, 4, 5, 6, 0}
	base := map[string]int{
		"Margherita Pizza":    24,
		"Spaghetti Bolognese": 18,
		"Pan Seared Salmon":   11,
		"Chicken Alfredo":     14,
	}

	var rows []models.DemandInsight
	for _, item := range items {
		for _, wd := range weekdays {
			boost := 1.0
			if wd == 5 || wd == 6 {
				boost = 1.6 // weekend service
			}
			rows = append(rows, models.DemandInsight{
				OrgID:           org,
				ItemName:        item,
				Weekday:         wd,
				PredictedOrders: int(float64(base[item]) * boost),
				Confidence:      0.82,
			})
		}
	}
	if err := s.Store.Create(&rows); err != nil {
		return nil, err
	}
	return Result{"demand_insights": len(rows)}, nil
}

// seedPosMenu inserts the full point-of-sale menu: categories first, then
// items resolved against the inserted category IDs, then modifier groups and
// their modifiers.
func seedPosMenu(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	categoryNames := []string{
		"Entrees", "Mains", "Pizza", "Pasta", "Desserts",
		"Sides", "Kids", "Cocktails", "Wine & Beer",
	}
	categories := make([]models.PosCategory, 0, len(categoryNames))
	for i, name := range categoryNames {
		categories = append(categories, models.PosCategory{OrgID: p.OrgID, Name: name, SortOrder: i + 1})
	}
	if err := s.Store.Create(&categories); err != nil {
		return nil, err
	}

	categoryIDs := make(map[string]int, len(categories))
	for _, cat := range categories {
		categoryIDs[cat.Name] = cat.ID
	}

	type menuItem struct {
		category string
		name     string
		price    float64
	}
	menu := []menuItem{
		{"Entrees", "Garlic Bread", 9.50},
		{"Entrees", "Arancini", 14.00},
		{"Entrees", "Salt & Pepper Calamari", 16.50},
		{"Entrees", "Bruschetta", 12.00},
		{"Mains", "Pan Seared Salmon", 38.00},
		{"Mains", "Chicken Alfredo", 29.50},
		{"Mains", "Scotch Fillet 300g", 46.00},
		{"Mains", "Lamb Shoulder", 42.00},
		{"Mains", "Pork Belly", 36.50},
		{"Mains", "Market Fish", 39.00},
		{"Pizza", "Margherita", 22.00},
		{"Pizza", "Pepperoni", 25.50},
		{"Pizza", "Prosciutto & Rocket", 27.00},
		{"Pizza", "Capricciosa", 26.00},
		{"Pizza", "Quattro Formaggi", 26.50},
		{"Pasta", "Spaghetti Bolognese", 26.00},
		{"Pasta", "Penne Arrabbiata", 24.00},
		{"Pasta", "Gnocchi Gorgonzola", 27.50},
		{"Pasta", "Linguine Marinara", 32.00},
		{"Desserts", "Lemon Tart", 15.00},
		{"Desserts", "Tiramisu", 16.00},
		{"Desserts", "Affogato", 12.50},
		{"Desserts", "Chocolate Fondant", 17.00},
		{"Sides", "Shoestring Fries", 9.00},
		{"Sides", "Rocket & Parmesan Salad", 11.00},
		{"Sides", "Seasonal Greens", 12.00},
		{"Sides", "Mash", 9.50},
		{"Kids", "Kids Spaghetti", 14.00},
		{"Kids", "Kids Pizza", 14.00},
		{"Cocktails", "Aperol Spritz", 18.00},
		{"Cocktails", "Espresso Martini", 21.00},
		{"Cocktails", "Negroni", 22.00},
		{"Wine & Beer", "House Red", 12.00},
		{"Wine & Beer", "Pale Ale", 11.00},
	}
	items := make([]models.PosMenuItem, 0, len(menu))
	for _, m := range menu {
		items = append(items, models.PosMenuItem{
			OrgID:      p.OrgID,
			CategoryID: categoryIDs[m.category],
			Name:       m.name,
			Price:      m.price,
			IsActive:   true,
		})
	}
	if err := s.Store.Create(&items); err != nil {
		return nil, err
	}

	groups := []models.PosModifierGroup{
		{OrgID: p.OrgID, Name: "Steak Doneness", MinSelect: 1, MaxSelect: 1},
		{OrgID: p.OrgID, Name: "Pizza Base", MinSelect: 1, MaxSelect: 1},
		{OrgID: p.OrgID, Name: "Milk Options", MinSelect: 0, MaxSelect: 1},
		{OrgID: p.OrgID, Name: "Extras", MinSelect: 0, MaxSelect: 3},
	}
	if err := s.Store.Create(&groups); err != nil {
		return nil, err
	}

	groupIDs := make(map[string]int, len(groups))
	for _, g := range groups {
		groupIDs[g.Name] = g.ID
	}

	type modifier struct {
		group string
		name  string
		delta float64
	}
	modifierSpecs := []modifier{
		{"Steak Doneness", "Blue", 0},
		{"Steak Doneness", "Rare", 0},
		{"Steak Doneness", "Medium Rare", 0},
		{"Steak Doneness", "Medium", 0},
		{"Steak Doneness", "Well Done", 0},
		{"Pizza Base", "Classic", 0},
		{"Pizza Base", "Thin & Crispy", 0},
		{"Pizza Base", "Gluten Free", 4.00},
		{"Milk Options", "Full Cream", 0},
		{"Milk Options", "Skim", 0},
		{"Milk Options", "Oat", 0.80},
		{"Milk Options", "Almond", 0.80},
		{"Extras", "Extra Cheese", 3.00},
		{"Extras", "Bacon", 4.00},
		{"Extras", "Avocado", 3.50},
	}
	modifiers := make([]models.PosModifier, 0, len(modifierSpecs))
	for _, m := range modifierSpecs {
		modifiers = append(modifiers, models.PosModifier{
			OrgID:      p.OrgID,
			GroupID:    groupIDs[m.group],
			Name:       m.name,
			PriceDelta: m.delta,
		})
	}
	if err := s.Store.Create(&modifiers); err != nil {
		return nil, err
	}

	return Result{
		"categories":      len(categories),
		"menu_items":      len(items),
		"modifier_groups": len(groups),
		"modifiers":       len(modifiers),
	}, nil
}

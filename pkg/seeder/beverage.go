package seeder

import (
	"time"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"
)

// seedChiccitBev inserts the cellar catalog, an on-hand stock line per
// product, and one completed stocktake whose counted quantities drift a few
// units from expectation so the variance report is never empty.
func seedChiccitBev(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	products := []models.BeverageProduct{
		{OrgID: p.OrgID, Name: "House Red Shiraz", Category: "wine", PurchasePrice: 8.50, SellPrice: 12.00},
		{OrgID: p.OrgID, Name: "House White Chardonnay", Category: "wine", PurchasePrice: 8.00, SellPrice: 12.00},
		{OrgID: p.OrgID, Name: "Prosecco DOC", Category: "wine", PurchasePrice: 11.00, SellPrice: 16.00},
		{OrgID: p.OrgID, Name: "Pinot Grigio", Category: "wine", PurchasePrice: 10.50, SellPrice: 14.00},
		{OrgID: p.OrgID, Name: "Pale Ale 330ml", Category: "beer", PurchasePrice: 2.80, SellPrice: 11.00},
		{OrgID: p.OrgID, Name: "Lager 330ml", Category: "beer", PurchasePrice: 2.40, SellPrice: 10.00},
		{OrgID: p.OrgID, Name: "Ginger Beer 330ml", Category: "beer", PurchasePrice: 2.60, SellPrice: 9.50},
		{OrgID: p.OrgID, Name: "Gin 700ml", Category: "spirits", PurchasePrice: 38.00, SellPrice: 12.00},
		{OrgID: p.OrgID, Name: "Vodka 700ml", Category: "spirits", PurchasePrice: 34.00, SellPrice: 12.00},
		{OrgID: p.OrgID, Name: "Campari 700ml", Category: "spirits", PurchasePrice: 31.00, SellPrice: 13.00},
		{OrgID: p.OrgID, Name: "Espresso Beans 1kg", Category: "coffee", PurchasePrice: 28.00, SellPrice: 4.50},
		{OrgID: p.OrgID, Name: "Sparkling Water 750ml", Category: "non_alcoholic", PurchasePrice: 1.90, SellPrice: 8.00},
	}
	if err := s.Store.Create(&products); err != nil {
		return nil, err
	}

	countedAt := time.Date(2026, time.February, 23, 8, 0, 0, 0, time.UTC)

	stocks := make([]models.CellarStock, 0, len(products))
	for _, prod := range products {
		par := intBetween(r, 12, 48)
		stocks = append(stocks, models.CellarStock{
			OrgID:     p.OrgID,
			ProductID: prod.ID,
			OnHand:    intBetween(r, par/2, par+10),
			ParLevel:  par,
			CountedAt: countedAt,
		})
	}
	if err := s.Store.Create(&stocks); err != nil {
		return nil, err
	}

	stocktake := models.Stocktake{
		OrgID:       p.OrgID,
		TakenAt:     countedAt,
		PerformedBy: "Ben Okafor",
	}
	if err := s.Store.Create(&stocktake); err != nil {
		return nil, err
	}

	items := make([]models.StocktakeItem, 0, len(products))
	for i, prod := range products {
		expected := stocks[i].OnHand
		counted := expected + intBetween(r, -3, 1)
		variance := counted - expected
		items = append(items, models.StocktakeItem{
			OrgID:        p.OrgID,
			StocktakeID:  stocktake.ID,
			ProductID:    prod.ID,
			ExpectedQty:  expected,
			CountedQty:   counted,
			Variance:     variance,
			VarianceCost: utils.Round2(float64(variance) * prod.PurchasePrice),
		})
	}
	if err := s.Store.Create(&items); err != nil {
		return nil, err
	}

	return Result{
		"beverage_products": len(products),
		"cellar_stocks":     len(stocks),
		"stocktakes":        1,
		"stocktake_items":   len(items),
	}, nil
}

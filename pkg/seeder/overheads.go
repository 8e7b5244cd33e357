package seeder

import (
	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"
)

// seedChiccitOverheads inserts the recurring cost templates and one realized
// entry per template per month in the trading window. Rent lands exactly on
// its base amount; the variable costs drift within their jitter band.
func seedChiccitOverheads(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	templates := []models.OverheadRecurring{
		{OrgID: p.OrgID, Name: "Rent", Category: "occupancy", BaseAmount: 14500, Cadence: models.CadenceMonthly, JitterPercent: 0},
		{OrgID: p.OrgID, Name: "Electricity", Category: "utilities", BaseAmount: 2800, Cadence: models.CadenceMonthly, JitterPercent: 0.15},
		{OrgID: p.OrgID, Name: "Gas", Category: "utilities", BaseAmount: 1100, Cadence: models.CadenceMonthly, JitterPercent: 0.12},
		{OrgID: p.OrgID, Name: "Insurance", Category: "insurance", BaseAmount: 1650, Cadence: models.CadenceMonthly, JitterPercent: 0},
		{OrgID: p.OrgID, Name: "Waste Collection", Category: "services", BaseAmount: 480, Cadence: models.CadenceMonthly, JitterPercent: 0.08},
		{OrgID: p.OrgID, Name: "POS & Software", Category: "technology", BaseAmount: 390, Cadence: models.CadenceMonthly, JitterPercent: 0},
	}
	if err := s.Store.Create(&templates); err != nil {
		return nil, err
	}

	var entries []models.OverheadEntry
	for _, month := range monthsIn(seedStart, seedEnd) {
		for _, t := range templates {
			amount := t.BaseAmount
			if t.JitterPercent > 0 {
				amount = utils.Round2(t.BaseAmount * jitter(r, t.JitterPercent))
			}
			entries = append(entries, models.OverheadEntry{
				OrgID:       p.OrgID,
				RecurringID: t.ID,
				PeriodMonth: month,
				Amount:      amount,
			})
		}
	}
	if err := s.Store.Create(&entries); err != nil {
		return nil, err
	}

	return Result{
		"overhead_recurring": len(templates),
		"overhead_entries":   len(entries),
	}, nil
}

package seeder

import (
	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"
)

// seedChiccitPnl writes one daily profit-and-loss snapshot per open trading
// day. Snapshots are generated from the same weekday targets as the revenue
// seeder but with independent noise, so they will not reconcile exactly with
// the orders table. Percentage columns are stored as fractions in [0,1].
func seedChiccitPnl(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	var snapshots []models.PnlSnapshot
	for _, day := range openDays(seedStart, seedEnd) {
		revenue := weekdayRevenue[day.Weekday()] * monthMultiplier(day.Month()) * jitter(r, 0.10)

		cogs := round4(between(r, 0.28, 0.34))
		labour := round4(between(r, 0.27, 0.33))
		overheads := round4(between(r, 0.18, 0.22))
		net := round4(1 - cogs - labour - overheads)

		snapshots = append(snapshots, models.PnlSnapshot{
			OrgID:        p.OrgID,
			SnapshotDate: day,
			RevenueTotal: utils.Round2(revenue),
			CogsPct:      cogs,
			LabourPct:    labour,
			OverheadsPct: overheads,
			NetMarginPct: net,
		})
	}

	if err := s.Store.CreateInBatches(&snapshots, insertBatchSize); err != nil {
		return nil, err
	}

	return Result{"pnl_snapshots": len(snapshots)}, nil
}

package seeder

import (
	"time"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"
)

// seedChiccitMarketing inserts four campaigns spanning the trading window,
// with spend jittered around each campaign's planned budget.
func seedChiccitMarketing(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	type campaignSpec struct {
		name    string
		channel string
		budget  float64
		starts  time.Time
		ends    time.Time
		active  bool
	}
	specs := []campaignSpec{
		{"Festive Set Menu", "instagram", 1800,
			time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC), false},
		{"New Year Locals Offer", "google_ads", 1200,
			time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), false},
		{"Valentines Dinner", "email", 600,
			time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC), false},
		{"Autumn Wine Dinners", "instagram", 950,
			time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), true},
	}

	campaigns := make([]models.MarketingCampaign, 0, len(specs))
	for _, spec := range specs {
		campaigns = append(campaigns, models.MarketingCampaign{
			OrgID:    p.OrgID,
			Name:     spec.name,
			Channel:  spec.channel,
			Spend:    utils.Round2(spec.budget * jitter(r, 0.10)),
			StartsOn: spec.starts,
			EndsOn:   spec.ends,
			IsActive: spec.active,
		})
	}
	if err := s.Store.Create(&campaigns); err != nil {
		return nil, err
	}

	return Result{"marketing_campaigns": len(campaigns)}, nil
}

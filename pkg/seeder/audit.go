package seeder

import (
	"time"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"
)

// anomalyDate carries a compliance score far above the venue's normal band.
// It is deliberate bait for anomaly-detection work downstream.
var anomalyDate = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

// seedChiccitAuditScores writes one daily audit score per open day, on a
// 0–100 scale, with the injected outlier on the anomaly date.
func seedChiccitAuditScores(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	var scores []models.AuditScore
	for _, day := range openDays(seedStart, seedEnd) {
		compliance := between(r, 68, 88)
		operational := between(r, 70, 90)
		if day.Equal(anomalyDate) {
			compliance = 99.2
		}
		scores = append(scores, models.AuditScore{
			OrgID:            p.OrgID,
			ScoreDate:        day,
			ComplianceScore:  utils.Round2(compliance),
			OperationalScore: utils.Round2(operational),
			OverallScore:     utils.Round2((compliance + operational) / 2),
		})
	}

	if err := s.Store.CreateInBatches(&scores, insertBatchSize); err != nil {
		return nil, err
	}

	return Result{"audit_scores": len(scores)}, nil
}

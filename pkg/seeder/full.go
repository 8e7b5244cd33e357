package seeder

import (
	"fmt"
)

// fullPlan is the composite run order. Staff must precede labour, since the
// labour generator reads the roster back; everything else is independent.
var fullPlan = []string{
	"seed_chiccit_staff",
	"seed_chiccit_labour",
	"seed_chiccit_revenue",
	"seed_chiccit_overheads",
	"seed_chiccit_pnl",
	"seed_chiccit_bev",
	"seed_chiccit_reservations",
	"seed_chiccit_marketing",
	"seed_chiccit_audit_scores",
}

// seedChiccitFull runs the whole generator suite for one organization
// in-process, collecting per-action results. A failed action is recorded and
// the run continues, so one broken generator never blanks the rest of the
// demo tenant.
func seedChiccitFull(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	results := make(map[string]any, len(fullPlan))
	var errs []string
	for _, action := range fullPlan {
		sub, err := Registry[action](s, p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", action, err))
			s.Log.WithField("action", action).WithError(err).Warn("composite step failed")
			continue
		}
		results[action] = sub
	}

	out := Result{"actions": results}
	if len(errs) > 0 {
		out["errors"] = errs
	}
	return out, nil
}

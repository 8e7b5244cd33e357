package seeder

import (
	"encoding/json"
	"errors"
	"fmt"

	"backend_chiccit/pkg/store"

	"github.com/sirupsen/logrus"
)

// ErrUnknownAction is returned for action names outside the registry. The
// transport layer reports it in the body with HTTP 200, not an error status.
var ErrUnknownAction = errors.New("Unknown action")

// Request is the wire shape of a seed call
type Request struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

// Params is the decoded `data` object. One shared shape covers every handler;
// each handler reads only the fields it needs.
type Params struct {
	OrgID     string `json:"org_id"`
	Seed      *int64 `json:"seed"`
	Table     string `json:"table"`
	Count     int    `json:"count"`
	WithSeeds bool   `json:"with_seeds"`
}

// Result is the handler-specific portion of a response body
type Result map[string]any

// HandlerFunc implements one named seed action
type HandlerFunc func(s *Seeder, p Params) (Result, error)

// Seeder carries the dependencies every handler needs
type Seeder struct {
	Store store.Gateway
	Log   *logrus.Logger
}

// New builds a Seeder over the given gateway
func New(g store.Gateway, log *logrus.Logger) *Seeder {
	return &Seeder{Store: g, Log: log}
}

// Registry maps action names to handlers. This is the wire contract: the
// catalog test walks it to keep the set of names stable. It is populated in
// init to break the initialization cycle with seedChiccitFull, which reads
// the registry at run time.
var Registry map[string]HandlerFunc

func init() {
	Registry = map[string]HandlerFunc{
		// Fixed-catalog seeders
		"seed_ingredients":     seedIngredients,
		"seed_recipes":         seedRecipes,
		"seed_demand_insights": seedDemandInsights,
		"seed_pos_menu":        seedPosMenu,

		// Tenant-scoped synthetic generators
		"seed_chiccit_staff":        seedChiccitStaff,
		"seed_chiccit_revenue":      seedChiccitRevenue,
		"seed_chiccit_labour":       seedChiccitLabour,
		"seed_chiccit_overheads":    seedChiccitOverheads,
		"seed_chiccit_pnl":          seedChiccitPnl,
		"seed_chiccit_bev":          seedChiccitBev,
		"seed_chiccit_reservations": seedChiccitReservations,
		"seed_chiccit_marketing":    seedChiccitMarketing,
		"seed_chiccit_audit_scores": seedChiccitAuditScores,
		"seed_chiccit_full":         seedChiccitFull,

		// Test-plan utilities
		"seed_todo_items":           seedTodoItems,
		"seed_todo_recurring_rules": seedTodoRecurringRules,
		"seed_delegated_tasks":      seedDelegatedTasks,
		"seed_gcc_compliance":       seedGccCompliance,
		"seed_home_cook":            seedHomeCook,
		"seed_feature_releases":     seedFeatureReleases,
		"seed_email_templates":      seedEmailTemplates,
		"seed_vendor":               seedVendor,
		"seed_admin":                seedAdmin,
		"seed_200_test_plan":        seed200TestPlan,

		// Destructive operations
		"nuke_all":    nukeAll,
		"clear_table": clearTable,
	}
}

// Dispatch routes a request to its handler
func (s *Seeder) Dispatch(action string, raw json.RawMessage) (Result, error) {
	handler, ok := Registry[action]
	if !ok {
		return nil, ErrUnknownAction
	}

	var p Params
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("invalid data payload: %w", err)
		}
	}

	s.Log.WithFields(logrus.Fields{
		"action": action,
		"org_id": p.OrgID,
	}).Info("dispatching seed action")

	return handler(s, p)
}

func requireOrg(p Params) error {
	if p.OrgID == "" {
		return errors.New("org_id is required")
	}
	return nil
}

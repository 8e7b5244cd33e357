package store

import (
	"errors"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoOrgColumn is returned by DeleteByOrg when the target model has no
// org_id column. The nuke handler falls back to a global delete on it.
var ErrNoOrgColumn = errors.New("model has no org_id column")

// Gateway abstracts the relational store so seed handlers can run against an
// in-memory fake in tests. The production implementation wraps GORM.
type Gateway interface {
	// Create inserts the given row or slice of rows, backfilling generated IDs.
	Create(value any) error
	// CreateInBatches inserts a slice in fixed-size batches to stay under
	// payload limits. Batches are sequential; a failed batch does not roll
	// back earlier ones.
	CreateInBatches(value any, batchSize int) error
	// Upsert inserts rows, replacing existing rows that collide on the given
	// natural-key columns.
	Upsert(value any, conflictColumns ...string) error
	// ListByOrg loads all rows for one organization into dest, a pointer to
	// a slice of models.
	ListByOrg(dest any, orgID string) error
	// DeleteByOrg removes all rows for one organization. Returns
	// ErrNoOrgColumn if the model is not tenant-scoped.
	DeleteByOrg(model any, orgID string) error
	// DeleteAll removes every row of the model's table.
	DeleteAll(model any) error
}

// Gorm is the production Gateway backed by a *gorm.DB
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps a gorm connection in the Gateway interface
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Create inserts rows via gorm, backfilling autoincrement IDs
func (g *Gorm) Create(value any) error {
	return g.db.Create(value).Error
}

// CreateInBatches inserts rows in fixed-size batches
func (g *Gorm) CreateInBatches(value any, batchSize int) error {
	return g.db.CreateInBatches(value, batchSize).Error
}

// Upsert inserts rows, updating all columns on natural-key conflict
func (g *Gorm) Upsert(value any, conflictColumns ...string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}
	return g.db.Clauses(clause.OnConflict{Columns: cols, UpdateAll: true}).Create(value).Error
}

// ListByOrg loads all rows scoped to one organization
func (g *Gorm) ListByOrg(dest any, orgID string) error {
	if !hasOrgColumn(dest) {
		return ErrNoOrgColumn
	}
	return g.db.Where("org_id = ?", orgID).Find(dest).Error
}

// DeleteByOrg removes all rows scoped to one organization
func (g *Gorm) DeleteByOrg(model any, orgID string) error {
	if !hasOrgColumn(model) {
		return ErrNoOrgColumn
	}
	return g.db.Where("org_id = ?", orgID).Delete(model).Error
}

// DeleteAll removes every row of the model's table
func (g *Gorm) DeleteAll(model any) error {
	return g.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
}

// hasOrgColumn reports whether the model struct declares an OrgID field.
// Checking the struct instead of catching a driver error keeps the fallback
// behavior identical between the gorm and in-memory gateways.
func hasOrgColumn(model any) bool {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := t.FieldByName("OrgID")
	return ok
}

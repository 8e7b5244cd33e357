package store

import (
	"fmt"
	"reflect"
	"strings"
)

type tabler interface {
	TableName() string
}

// Memory is an in-memory Gateway for tests. Rows are stored per table as
// struct copies; integer IDs are assigned from a per-table counter so
// handlers that resolve generated IDs behave the same as against Postgres.
type Memory struct {
	rows   map[string][]reflect.Value
	nextID map[string]int

	// FailOn, when set, makes every operation against the named table fail.
	// Used to exercise partial-failure paths.
	FailOn string
}

// NewMemory returns an empty in-memory gateway
func NewMemory() *Memory {
	return &Memory{
		rows:   make(map[string][]reflect.Value),
		nextID: make(map[string]int),
	}
}

// Create appends the given row or slice of rows, assigning IDs
func (m *Memory) Create(value any) error {
	return m.insert(value, nil)
}

// CreateInBatches behaves like Create; batching is a transport concern that
// the fake does not need to simulate
func (m *Memory) CreateInBatches(value any, _ int) error {
	return m.insert(value, nil)
}

// Upsert inserts rows, replacing stored rows that match on the given columns
func (m *Memory) Upsert(value any, conflictColumns ...string) error {
	return m.insert(value, conflictColumns)
}

// ListByOrg copies all rows whose OrgID matches into dest
func (m *Memory) ListByOrg(dest any, orgID string) error {
	if !hasOrgColumn(dest) {
		return ErrNoOrgColumn
	}
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("ListByOrg expects a pointer to a slice, got %T", dest)
	}
	slice := rv.Elem()
	for _, stored := range m.rows[tableOf(dest)] {
		if orgIDOf(stored) == orgID {
			slice = reflect.Append(slice, stored)
		}
	}
	rv.Elem().Set(slice)
	return nil
}

// DeleteByOrg removes all rows whose OrgID matches
func (m *Memory) DeleteByOrg(model any, orgID string) error {
	if !hasOrgColumn(model) {
		return ErrNoOrgColumn
	}
	table := tableOf(model)
	if table == m.FailOn {
		return fmt.Errorf("delete %s: forced failure", table)
	}
	kept := m.rows[table][:0]
	for _, rv := range m.rows[table] {
		if orgIDOf(rv) != orgID {
			kept = append(kept, rv)
		}
	}
	m.rows[table] = kept
	return nil
}

// DeleteAll removes every row of the model's table
func (m *Memory) DeleteAll(model any) error {
	table := tableOf(model)
	if table == m.FailOn {
		return fmt.Errorf("delete %s: forced failure", table)
	}
	m.rows[table] = nil
	return nil
}

// Count returns the number of stored rows for the model's table
func (m *Memory) Count(model any) int {
	return len(m.rows[tableOf(model)])
}

// Rows returns copies of the stored rows for the model's table
func (m *Memory) Rows(model any) []any {
	stored := m.rows[tableOf(model)]
	out := make([]any, 0, len(stored))
	for _, rv := range stored {
		out = append(out, rv.Interface())
	}
	return out
}

func (m *Memory) insert(value any, conflictColumns []string) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr {
		return fmt.Errorf("insert expects a pointer, got %T", value)
	}
	rv = rv.Elem()
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if err := m.insertOne(rv.Index(i), conflictColumns); err != nil {
				return err
			}
		}
		return nil
	}
	return m.insertOne(rv, conflictColumns)
}

func (m *Memory) insertOne(row reflect.Value, conflictColumns []string) error {
	table := tableOf(row.Interface())
	if table == m.FailOn {
		return fmt.Errorf("insert %s: forced failure", table)
	}

	// Assign an auto-increment ID when the struct carries a zero int ID.
	if f := row.FieldByName("ID"); f.IsValid() && f.Kind() == reflect.Int && f.Int() == 0 {
		m.nextID[table]++
		f.SetInt(int64(m.nextID[table]))
	}

	if len(conflictColumns) > 0 {
		for i, stored := range m.rows[table] {
			if matchesColumns(stored, row, conflictColumns) {
				replacement := reflect.New(row.Type()).Elem()
				replacement.Set(row)
				// Keep the original row's ID on conflict.
				if id := stored.FieldByName("ID"); id.IsValid() && id.Kind() == reflect.Int {
					replacement.FieldByName("ID").SetInt(id.Int())
					row.FieldByName("ID").SetInt(id.Int())
				}
				m.rows[table][i] = replacement
				return nil
			}
		}
	}

	stored := reflect.New(row.Type()).Elem()
	stored.Set(row)
	m.rows[table] = append(m.rows[table], stored)
	return nil
}

func matchesColumns(a, b reflect.Value, columns []string) bool {
	for _, col := range columns {
		fa := fieldByColumn(a, col)
		fb := fieldByColumn(b, col)
		if !fa.IsValid() || !fb.IsValid() {
			return false
		}
		if !reflect.DeepEqual(fa.Interface(), fb.Interface()) {
			return false
		}
	}
	return true
}

// fieldByColumn resolves a snake_case column name ("org_id") against struct
// field names ("OrgID") case-insensitively
func fieldByColumn(v reflect.Value, column string) reflect.Value {
	want := strings.ReplaceAll(strings.ToLower(column), "_", "")
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.ToLower(t.Field(i).Name) == want {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func orgIDOf(row reflect.Value) string {
	f := row.FieldByName("OrgID")
	if !f.IsValid() {
		return ""
	}
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return ""
		}
		f = f.Elem()
	}
	return f.String()
}

func tableOf(model any) string {
	if t, ok := model.(tabler); ok {
		return t.TableName()
	}
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice {
		elem := reflect.New(rv.Type().Elem()).Elem()
		if t, ok := elem.Interface().(tabler); ok {
			return t.TableName()
		}
	}
	return fmt.Sprintf("%T", model)
}

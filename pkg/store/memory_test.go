package store

import (
	"errors"
	"testing"

	"backend_chiccit/pkg/models"
)

const (
	orgA = "11111111-aaaa-4bbb-8ccc-000000000001"
	orgB = "22222222-aaaa-4bbb-8ccc-000000000002"
)

func TestMemoryCreateAssignsIDs(t *testing.T) {
	mem := NewMemory()
	rows := []models.Ingredient{
		{Name: "Flour", Unit: "kg", CostUnit: 1.80},
		{Name: "Butter", Unit: "kg", CostUnit: 11.50},
	}
	if err := mem.Create(&rows); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rows[0].ID != 1 || rows[1].ID != 2 {
		t.Fatalf("IDs = %d, %d; want 1, 2", rows[0].ID, rows[1].ID)
	}
	if n := mem.Count(&models.Ingredient{}); n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
}

func TestMemoryCreateDoesNotAliasCallerRows(t *testing.T) {
	mem := NewMemory()
	rows := []models.Ingredient{{Name: "Flour", Unit: "kg", CostUnit: 1.80}}
	if err := mem.Create(&rows); err != nil {
		t.Fatal(err)
	}
	rows[0].Name = "mutated"
	stored := mem.Rows(&models.Ingredient{})[0].(models.Ingredient)
	if stored.Name != "Flour" {
		t.Fatalf("stored row mutated through caller slice: %q", stored.Name)
	}
}

func TestMemoryUpsertKeepsOriginalID(t *testing.T) {
	mem := NewMemory()
	first := []models.FeatureRelease{{Slug: "alerts", Title: "Alerts", Body: "v1"}}
	if err := mem.Upsert(&first, "slug"); err != nil {
		t.Fatal(err)
	}
	second := []models.FeatureRelease{{Slug: "alerts", Title: "Alerts", Body: "v2"}}
	if err := mem.Upsert(&second, "slug"); err != nil {
		t.Fatal(err)
	}

	if n := mem.Count(&models.FeatureRelease{}); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
	stored := mem.Rows(&models.FeatureRelease{})[0].(models.FeatureRelease)
	if stored.Body != "v2" {
		t.Errorf("Body = %q, want updated v2", stored.Body)
	}
	if stored.ID != first[0].ID {
		t.Errorf("ID changed on upsert: %d -> %d", first[0].ID, stored.ID)
	}
}

func TestMemoryListByOrg(t *testing.T) {
	mem := NewMemory()
	rows := []models.EmployeeProfile{
		{OrgID: orgA, FullName: "A One"},
		{OrgID: orgB, FullName: "B One"},
		{OrgID: orgA, FullName: "A Two"},
	}
	if err := mem.Create(&rows); err != nil {
		t.Fatal(err)
	}

	var got []models.EmployeeProfile
	if err := mem.ListByOrg(&got, orgA); err != nil {
		t.Fatalf("ListByOrg: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, emp := range got {
		if emp.OrgID != orgA {
			t.Errorf("row %q from wrong org", emp.FullName)
		}
	}
}

func TestMemoryDeleteByOrg(t *testing.T) {
	mem := NewMemory()
	rows := []models.EmployeeProfile{
		{OrgID: orgA, FullName: "A One"},
		{OrgID: orgB, FullName: "B One"},
	}
	if err := mem.Create(&rows); err != nil {
		t.Fatal(err)
	}
	if err := mem.DeleteByOrg(&models.EmployeeProfile{}, orgA); err != nil {
		t.Fatalf("DeleteByOrg: %v", err)
	}
	if n := mem.Count(&models.EmployeeProfile{}); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}

func TestMemoryDeleteByOrgWithoutOrgColumn(t *testing.T) {
	mem := NewMemory()
	err := mem.DeleteByOrg(&models.FeatureRelease{}, orgA)
	if !errors.Is(err, ErrNoOrgColumn) {
		t.Fatalf("err = %v, want ErrNoOrgColumn", err)
	}
}

func TestMemoryFailOn(t *testing.T) {
	mem := NewMemory()
	mem.FailOn = "ingredients"
	rows := []models.Ingredient{{Name: "Flour"}}
	if err := mem.Create(&rows); err == nil {
		t.Fatal("expected a forced failure on ingredients")
	}
	other := []models.Recipe{{Name: "Tart", Yield: 8}}
	if err := mem.Create(&other); err != nil {
		t.Fatalf("unrelated table should not fail: %v", err)
	}
}

func TestHasOrgColumn(t *testing.T) {
	cases := []struct {
		model any
		want  bool
	}{
		{&models.EmployeeProfile{}, true},
		{&models.Ingredient{}, true}, // pointer org column still counts
		{&models.FeatureRelease{}, false},
		{&[]models.Order{}, true},
	}
	for _, tc := range cases {
		if got := hasOrgColumn(tc.model); got != tc.want {
			t.Errorf("hasOrgColumn(%T) = %v, want %v", tc.model, got, tc.want)
		}
	}
}

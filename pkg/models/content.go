package models

import (
	"time"
)

// TodoItem is a generic task row used by the 200-step test plan
type TodoItem struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID     string     `gorm:"type:uuid;not null;index" json:"orgId"`
	Title     string     `gorm:"not null" json:"title"`
	Status    TaskStatus `gorm:"type:text;default:'open'" json:"status"`
	Priority  Priority   `gorm:"type:text;default:'medium'" json:"priority"`
	DueOn     *time.Time `gorm:"type:date" json:"dueOn"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for TodoItem model
func (TodoItem) TableName() string {
	return "todo_items"
}

// TodoRecurringRule spawns todo items on a cron-like cadence
type TodoRecurringRule struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID     string `gorm:"type:uuid;not null;index" json:"orgId"`
	Title     string `gorm:"not null" json:"title"`
	Rule      string `gorm:"not null" json:"rule"`
	IsEnabled bool   `gorm:"default:true" json:"isEnabled"`
}

// TableName specifies the table name for TodoRecurringRule model
func (TodoRecurringRule) TableName() string {
	return "todo_recurring_rules"
}

// DelegatedTask is a task assigned from one staff member to another
type DelegatedTask struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string     `gorm:"type:uuid;not null;index" json:"orgId"`
	Title      string     `gorm:"not null" json:"title"`
	AssignedTo string     `gorm:"not null" json:"assignedTo"`
	AssignedBy string     `gorm:"not null" json:"assignedBy"`
	Status     TaskStatus `gorm:"type:text;default:'open'" json:"status"`
	DueOn      *time.Time `gorm:"type:date" json:"dueOn"`
}

// TableName specifies the table name for DelegatedTask model
func (DelegatedTask) TableName() string {
	return "delegated_tasks"
}

// ComplianceCheck is a GCC food-safety checklist row
type ComplianceCheck struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID       string    `gorm:"type:uuid;not null;index" json:"orgId"`
	CheckName   string    `gorm:"not null" json:"checkName"`
	Category    string    `gorm:"not null" json:"category"`
	Passed      bool      `gorm:"not null" json:"passed"`
	CheckedAt   time.Time `gorm:"not null" json:"checkedAt"`
	CheckedBy   string    `gorm:"not null" json:"checkedBy"`
	Observation string    `json:"observation"`
}

// TableName specifies the table name for ComplianceCheck model
func (ComplianceCheck) TableName() string {
	return "compliance_checks"
}

// HomeCookMeal is a prepared-meal listing for the home-cook marketplace
type HomeCookMeal struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID       string  `gorm:"type:uuid;not null;index" json:"orgId"`
	Name        string  `gorm:"not null" json:"name"`
	CookName    string  `gorm:"not null" json:"cookName"`
	Price       float64 `gorm:"not null" json:"price"`
	ServingSize int     `gorm:"default:1" json:"servingSize"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}

// TableName specifies the table name for HomeCookMeal model
func (HomeCookMeal) TableName() string {
	return "home_cook_meals"
}

// FeatureRelease is a changelog entry shown in-app. Upserted by slug so the
// seeder can be re-run without duplicating rows.
type FeatureRelease struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug       string    `gorm:"unique;not null" json:"slug"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `gorm:"not null" json:"body"`
	ReleasedOn time.Time `gorm:"type:date;not null" json:"releasedOn"`
}

// TableName specifies the table name for FeatureRelease model
func (FeatureRelease) TableName() string {
	return "feature_releases"
}

// EmailTemplate is a transactional email body, upserted by slug
type EmailTemplate struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug    string `gorm:"unique;not null" json:"slug"`
	Subject string `gorm:"not null" json:"subject"`
	HTML    string `gorm:"not null;column:html" json:"html"`
}

// TableName specifies the table name for EmailTemplate model
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// LandingSection is a marketing-site content block, upserted by slug
type LandingSection struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug      string `gorm:"unique;not null" json:"slug"`
	Heading   string `gorm:"not null" json:"heading"`
	Body      string `gorm:"not null" json:"body"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

// TableName specifies the table name for LandingSection model
func (LandingSection) TableName() string {
	return "landing_sections"
}

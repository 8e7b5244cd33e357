package models

import (
	"time"
)

// Organization is the tenancy root. Every operational row carries an OrgID
// foreign key back to it; deleting one is only done via the nuke path.
type Organization struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	Timezone  string    `gorm:"default:'Australia/Sydney'" json:"timezone"`
	IsDemo    bool      `gorm:"default:false" json:"isDemo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Organization model
func (Organization) TableName() string {
	return "organizations"
}

// User is an auth user resolved from a bearer token
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  *string   `json:"-"` // Don't expose password in JSON
	OrgID     *string   `gorm:"type:uuid" json:"orgId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Roles []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserRole is an application role record. The seeder guard requires an
// 'admin' row for the calling user.
type UserRole struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"type:uuid;not null" json:"userId"`
	Role   Role   `gorm:"type:text;not null" json:"role"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

// TableName specifies the table name for UserRole model
func (UserRole) TableName() string {
	return "user_roles"
}

// EmployeeProfile is a staff member within an organization. The staff seeder
// deliberately inserts one rate below the award minimum so downstream
// compliance detection has something to find.
type EmployeeProfile struct {
	ID                  int            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID               string         `gorm:"type:uuid;not null;index" json:"orgId"`
	FullName            string         `gorm:"not null" json:"fullName"`
	EmploymentType      EmploymentType `gorm:"type:text;not null" json:"employmentType"`
	ClassificationLevel int            `gorm:"not null" json:"classificationLevel"`
	HourlyRate          float64        `gorm:"not null" json:"hourlyRate"`
	StartDate           time.Time      `gorm:"type:date;not null" json:"startDate"`
	IsActive            bool           `gorm:"default:true" json:"isActive"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`

	Documents   []EmployeeDocument `gorm:"foreignKey:EmployeeID" json:"documents,omitempty"`
	ClockEvents []ClockEvent       `gorm:"foreignKey:EmployeeID" json:"clockEvents,omitempty"`
}

// TableName specifies the table name for EmployeeProfile model
func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// EmployeeDocument is a certification or visa document with an expiry
type EmployeeDocument struct {
	ID         int            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string         `gorm:"type:uuid;not null;index" json:"orgId"`
	EmployeeID int            `gorm:"not null" json:"employeeId"`
	DocType    string         `gorm:"not null" json:"docType"`
	Status     DocumentStatus `gorm:"type:text;not null" json:"status"`
	ExpiresAt  time.Time      `gorm:"type:date;not null" json:"expiresAt"`

	Employee EmployeeProfile `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
}

// TableName specifies the table name for EmployeeDocument model
func (EmployeeDocument) TableName() string {
	return "employee_documents"
}

// ClockEvent is a clock-in/clock-out pair per employee per shift date.
// Paired events should keep 10 hours rest between shifts; the labour seeder
// intentionally writes violations of that invariant.
type ClockEvent struct {
	ID               int              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID            string           `gorm:"type:uuid;not null;index" json:"orgId"`
	EmployeeID       int              `gorm:"not null" json:"employeeId"`
	ShiftDate        time.Time        `gorm:"type:date;not null" json:"shiftDate"`
	ClockIn          time.Time        `gorm:"not null" json:"clockIn"`
	ClockOut         time.Time        `gorm:"not null" json:"clockOut"`
	BreakMinutes     int              `gorm:"default:0" json:"breakMinutes"`
	ComplianceStatus ComplianceStatus `gorm:"type:text;default:'ok'" json:"complianceStatus"`

	Employee EmployeeProfile `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
}

// TableName specifies the table name for ClockEvent model
func (ClockEvent) TableName() string {
	return "clock_events"
}

// Order is a point-of-sale transaction. Voided orders emit no payment.
type Order struct {
	ID            int           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID         string        `gorm:"type:uuid;not null;index" json:"orgId"`
	OrderNumber   string        `gorm:"unique;not null" json:"orderNumber"`
	BusinessDate  time.Time     `gorm:"type:date;not null" json:"businessDate"`
	ServicePeriod ServicePeriod `gorm:"type:text;not null" json:"servicePeriod"`
	Covers        int           `gorm:"not null" json:"covers"`
	Total         float64       `gorm:"not null" json:"total"`
	Status        OrderStatus   `gorm:"type:text;not null" json:"status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`

	Payment *Payment `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}

// Payment settles one order. Amount may fall short of the order total by a
// bounded cash variance to simulate till discrepancies.
type Payment struct {
	ID           int           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID        string        `gorm:"type:uuid;not null;index" json:"orgId"`
	OrderID      int           `gorm:"unique;not null" json:"orderId"`
	Method       PaymentMethod `gorm:"type:text;not null" json:"method"`
	Amount       float64       `gorm:"not null" json:"amount"`
	CashVariance float64       `gorm:"default:0" json:"cashVariance"`
	SettledAt    time.Time     `gorm:"not null" json:"settledAt"`

	Order Order `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}

package models

// Role enum for auth user role records
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// EmploymentType enum
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentCasual   EmploymentType = "casual"
)

// DocumentStatus enum
type DocumentStatus string

const (
	DocumentStatusCurrent DocumentStatus = "current"
	DocumentStatusExpired DocumentStatus = "expired"
)

// ComplianceStatus enum for clock events
type ComplianceStatus string

const (
	ComplianceOK             ComplianceStatus = "ok"
	ComplianceBreakViolation ComplianceStatus = "break_violation"
	ComplianceRestViolation  ComplianceStatus = "rest_violation"
)

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusVoided    OrderStatus = "voided"
)

// PaymentMethod enum
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// ServicePeriod enum
type ServicePeriod string

const (
	ServicePeriodLunch  ServicePeriod = "lunch"
	ServicePeriodDinner ServicePeriod = "dinner"
)

// ReservationStatus enum
type ReservationStatus string

const (
	ReservationCompleted ReservationStatus = "completed"
	ReservationNoShow    ReservationStatus = "no_show"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationSource enum
type ReservationSource string

const (
	ReservationSourceDirect    ReservationSource = "direct"
	ReservationSourceGoogle    ReservationSource = "google"
	ReservationSourceOpenTable ReservationSource = "opentable"
	ReservationSourcePhone     ReservationSource = "phone"
	ReservationSourceWalkIn    ReservationSource = "walk_in"
)

// TaskStatus enum for todo and delegated task rows
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Priority enum
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// OverheadCadence enum
type OverheadCadence string

const (
	CadenceMonthly   OverheadCadence = "monthly"
	CadenceQuarterly OverheadCadence = "quarterly"
)

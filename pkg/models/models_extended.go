package models

import (
	"time"
)

// OverheadRecurring is a template for a periodic cost (rent, utilities)
type OverheadRecurring struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID         string          `gorm:"type:uuid;not null;index" json:"orgId"`
	Name          string          `gorm:"not null" json:"name"`
	Category      string          `gorm:"not null" json:"category"`
	BaseAmount    float64         `gorm:"not null" json:"baseAmount"`
	Cadence       OverheadCadence `gorm:"type:text;default:'monthly'" json:"cadence"`
	JitterPercent float64         `gorm:"default:0" json:"jitterPercent"`

	Entries []OverheadEntry `gorm:"foreignKey:RecurringID" json:"entries,omitempty"`
}

// TableName specifies the table name for OverheadRecurring model
func (OverheadRecurring) TableName() string {
	return "overhead_recurring"
}

// OverheadEntry is a realized monthly instance of a recurring template
type OverheadEntry struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID       string    `gorm:"type:uuid;not null;index" json:"orgId"`
	RecurringID int       `gorm:"not null" json:"recurringId"`
	PeriodMonth time.Time `gorm:"type:date;not null" json:"periodMonth"`
	Amount      float64   `gorm:"not null" json:"amount"`

	Recurring OverheadRecurring `gorm:"foreignKey:RecurringID;references:ID" json:"recurring,omitempty"`
}

// TableName specifies the table name for OverheadEntry model
func (OverheadEntry) TableName() string {
	return "overhead_entries"
}

// PnlSnapshot is a daily derived aggregate. It is generated independently of
// the orders and payments tables; the mismatch is an intentional test fixture.
// All *_pct columns store fractions in [0,1].
type PnlSnapshot struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID        string    `gorm:"type:uuid;not null;index" json:"orgId"`
	SnapshotDate time.Time `gorm:"type:date;not null" json:"snapshotDate"`
	RevenueTotal float64   `gorm:"not null" json:"revenueTotal"`
	CogsPct      float64   `gorm:"not null" json:"cogsPct"`
	LabourPct    float64   `gorm:"not null" json:"labourPct"`
	OverheadsPct float64   `gorm:"not null" json:"overheadsPct"`
	NetMarginPct float64   `gorm:"not null" json:"netMarginPct"`
}

// TableName specifies the table name for PnlSnapshot model
func (PnlSnapshot) TableName() string {
	return "pnl_snapshots"
}

// BeverageProduct is an inventory item with purchase and sell prices
type BeverageProduct struct {
	ID            int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID         string  `gorm:"type:uuid;not null;index" json:"orgId"`
	Name          string  `gorm:"not null" json:"name"`
	Category      string  `gorm:"not null" json:"category"`
	PurchasePrice float64 `gorm:"not null" json:"purchasePrice"`
	SellPrice     float64 `gorm:"not null" json:"sellPrice"`

	Stock *CellarStock `gorm:"foreignKey:ProductID" json:"stock,omitempty"`
}

// TableName specifies the table name for BeverageProduct model
func (BeverageProduct) TableName() string {
	return "beverage_products"
}

// CellarStock is the on-hand quantity for one beverage product
type CellarStock struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID      string    `gorm:"type:uuid;not null;index" json:"orgId"`
	ProductID  int       `gorm:"unique;not null" json:"productId"`
	OnHand     int       `gorm:"not null" json:"onHand"`
	ParLevel   int       `gorm:"not null" json:"parLevel"`
	CountedAt  time.Time `gorm:"not null" json:"countedAt"`

	Product BeverageProduct `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

// TableName specifies the table name for CellarStock model
func (CellarStock) TableName() string {
	return "cellar_stocks"
}

// Stocktake is one counting session
type Stocktake struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID       string    `gorm:"type:uuid;not null;index" json:"orgId"`
	TakenAt     time.Time `gorm:"not null" json:"takenAt"`
	PerformedBy string    `gorm:"not null" json:"performedBy"`

	Items []StocktakeItem `gorm:"foreignKey:StocktakeID" json:"items,omitempty"`
}

// TableName specifies the table name for Stocktake model
func (Stocktake) TableName() string {
	return "stocktakes"
}

// StocktakeItem carries expected vs counted quantity with derived variance
type StocktakeItem struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID        string  `gorm:"type:uuid;not null;index" json:"orgId"`
	StocktakeID  int     `gorm:"not null" json:"stocktakeId"`
	ProductID    int     `gorm:"not null" json:"productId"`
	ExpectedQty  int     `gorm:"not null" json:"expectedQty"`
	CountedQty   int     `gorm:"not null" json:"countedQty"`
	Variance     int     `gorm:"not null" json:"variance"`
	VarianceCost float64 `gorm:"not null" json:"varianceCost"`

	Stocktake Stocktake       `gorm:"foreignKey:StocktakeID;references:ID" json:"stocktake,omitempty"`
	Product   BeverageProduct `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

// TableName specifies the table name for StocktakeItem model
func (StocktakeItem) TableName() string {
	return "stocktake_items"
}

// Reservation is a booking with party size, source channel and outcome
type Reservation struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID       string            `gorm:"type:uuid;not null;index" json:"orgId"`
	BookingDate time.Time         `gorm:"type:date;not null" json:"bookingDate"`
	GuestName   string            `gorm:"not null" json:"guestName"`
	PartySize   int               `gorm:"not null" json:"partySize"`
	Source      ReservationSource `gorm:"type:text;not null" json:"source"`
	Status      ReservationStatus `gorm:"type:text;not null" json:"status"`
}

// TableName specifies the table name for Reservation model
func (Reservation) TableName() string {
	return "reservations"
}

// AuditScore is a daily composite compliance/operational score. Scores are
// 0–100. One seeded day carries an implausibly high compliance score on
// purpose, as bait for anomaly detection.
type AuditScore struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID            string    `gorm:"type:uuid;not null;index" json:"orgId"`
	ScoreDate        time.Time `gorm:"type:date;not null" json:"scoreDate"`
	ComplianceScore  float64   `gorm:"not null" json:"complianceScore"`
	OperationalScore float64   `gorm:"not null" json:"operationalScore"`
	OverallScore     float64   `gorm:"not null" json:"overallScore"`
}

// TableName specifies the table name for AuditScore model
func (AuditScore) TableName() string {
	return "audit_scores"
}

// MarketingCampaign is a promotional spend record
type MarketingCampaign struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID     string    `gorm:"type:uuid;not null;index" json:"orgId"`
	Name      string    `gorm:"not null" json:"name"`
	Channel   string    `gorm:"not null" json:"channel"`
	Spend     float64   `gorm:"not null" json:"spend"`
	StartsOn  time.Time `gorm:"type:date;not null" json:"startsOn"`
	EndsOn    time.Time `gorm:"type:date;not null" json:"endsOn"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for MarketingCampaign model
func (MarketingCampaign) TableName() string {
	return "marketing_campaigns"
}

// DemandInsight is a predicted demand figure per menu item per weekday
type DemandInsight struct {
	ID              int     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrgID           *string `gorm:"type:uuid;index" json:"orgId"`
	ItemName        string  `gorm:"not null" json:"itemName"`
	Weekday         int     `gorm:"not null" json:"weekday"`
	PredictedOrders int     `gorm:"not null" json:"predictedOrders"`
	Confidence      float64 `gorm:"not null" json:"confidence"`
}

// TableName specifies the table name for DemandInsight model
func (DemandInsight) TableName() string {
	return "demand_insights"
}

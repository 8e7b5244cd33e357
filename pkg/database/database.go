package database

import (
	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/models"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase initializes the database connection
func InitDatabase() error {
	var err error

	gormConfig := &gorm.Config{
		PrepareStmt: false,
	}

	// Development mode - verbose logging
	if config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		// Production mode - only errors
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	}

	// Connect to PostgreSQL with implicit prepared statements disabled
	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.AppConfig.DatabaseURL,
		PreferSimpleProtocol: true, // Avoids "prepared statement already exists" on pooled connections
	}), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Println("✅ Database connection established")

	return nil
}

// AutoMigrate runs auto-migration for all models
func AutoMigrate() error {
	log.Println("🔄 Running database migrations...")

	err := DB.AutoMigrate(
		// Tenancy and auth
		&models.Organization{},
		&models.User{},
		&models.UserRole{},

		// Staff & labour
		&models.EmployeeProfile{},
		&models.EmployeeDocument{},
		&models.ClockEvent{},

		// Revenue
		&models.Order{},
		&models.Payment{},

		// Costs & P&L
		&models.OverheadRecurring{},
		&models.OverheadEntry{},
		&models.PnlSnapshot{},

		// Beverage inventory
		&models.BeverageProduct{},
		&models.CellarStock{},
		&models.Stocktake{},
		&models.StocktakeItem{},

		// Front of house
		&models.Reservation{},
		&models.AuditScore{},
		&models.MarketingCampaign{},
		&models.DemandInsight{},

		// Fixed catalogs
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.PosCategory{},
		&models.PosMenuItem{},
		&models.PosModifierGroup{},
		&models.PosModifier{},
		&models.VendorProduct{},

		// Test-plan content
		&models.TodoItem{},
		&models.TodoRecurringRule{},
		&models.DelegatedTask{},
		&models.ComplianceCheck{},
		&models.HomeCookMeal{},
		&models.FeatureRelease{},
		&models.EmailTemplate{},
		&models.LandingSection{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed")

	createIndexes()

	return nil
}

// createIndexes creates additional indexes the hosted schema declares
func createIndexes() {
	log.Println("🔄 Creating additional indexes...")

	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_orders_org_date ON orders(org_id, business_date)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_org_settled ON payments(org_id, settled_at)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_clock_events_org_shift ON clock_events(org_id, shift_date)`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS idx_reservations_org_date ON reservations(org_id, booking_date)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pnl_org_date ON pnl_snapshots(org_id, snapshot_date)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_audit_org_date ON audit_scores(org_id, score_date)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_overhead_entries_period ON overhead_entries(recurring_id, period_month)`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_roles_user_role ON user_roles(user_id, role)`)

	log.Println("✅ Additional indexes created")
}

// CloseDatabase closes the database connection
func CloseDatabase() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("✅ Database connection closed")
	}
}

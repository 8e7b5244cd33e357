package main

import (
	"errors"
	"log"
	"net/http"

	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/database"
	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/routes"
	"backend_chiccit/pkg/seeder"
	"backend_chiccit/pkg/store"
	"backend_chiccit/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Run migrations in development; hosted environments migrate out of band
	if config.IsDevelopment() {
		if err := database.AutoMigrate(); err != nil {
			log.Fatalf("❌ Failed to run migrations: %v", err)
		}
	}

	// Set Gin mode
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.InternalServerErrorResponse(c, "Internal server error")
	}))

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	s := seeder.New(store.NewGorm(database.DB), config.GetLogger())

	// Setup routes
	routes.SetupRoutes(router, s, lookupAdminRole)

	port := config.AppConfig.Port
	log.Printf("🚀 Seeder service starting on port %s", port)
	if err := router.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// lookupAdminRole checks for an admin role record for the given user
func lookupAdminRole(userID string) (bool, error) {
	var role models.UserRole
	err := database.DB.Where("user_id = ? AND role = ?", userID, models.RoleAdmin).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

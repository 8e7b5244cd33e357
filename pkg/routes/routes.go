package routes

import (
	"net/http"

	"backend_chiccit/pkg/middleware"
	"backend_chiccit/pkg/seeder"
	"backend_chiccit/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, s *seeder.Seeder, isAdmin middleware.AdminLookup) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "chiccit-seeder",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/seed", middleware.RequireAdmin(isAdmin), handleSeed(s))
	}
}

// handleSeed binds the request envelope and dispatches to the action
// registry. Handler failures — including unknown actions — come back with
// HTTP 200 and success:false; only a panic surfaces as a 5xx, via the
// recovery middleware.
func handleSeed(s *seeder.Seeder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req seeder.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, utils.StandardResponse{
				Success: false,
				Error:   "action is required",
			})
			return
		}

		result, err := s.Dispatch(req.Action, req.Data)
		if err != nil {
			c.JSON(http.StatusOK, utils.StandardResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		body := gin.H{"success": true, "action": req.Action}
		for k, v := range result {
			body[k] = v
		}
		c.JSON(http.StatusOK, body)
	}
}

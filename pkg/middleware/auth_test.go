package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/utils"

	"github.com/gin-gonic/gin"
)

func setupTestConfig(environment string) {
	config.AppConfig = &config.Config{
		Environment:    environment,
		JWTSecret:      "test-secret",
		JWTExpiresIn:   "1d",
		ServiceRoleKey: "service-role-key",
	}
}

func guardedRouter(isAdmin AdminLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/seed", RequireAdmin(isAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func doSeedRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdminBlockedInProduction(t *testing.T) {
	setupTestConfig("production")
	router := guardedRouter(func(string) (bool, error) { return true, nil })

	w := doSeedRequest(router, "Bearer service-role-key")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body utils.StandardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Seeder disabled in production" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestRequireAdminMissingToken(t *testing.T) {
	setupTestConfig("development")
	router := guardedRouter(func(string) (bool, error) { return true, nil })

	for _, header := range []string{"", "Bearer", "Basic abc123"} {
		w := doSeedRequest(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestRequireAdminServiceRoleKeyBypassesRoleCheck(t *testing.T) {
	setupTestConfig("development")
	// Lookup would fail; the service key must never reach it.
	router := guardedRouter(func(string) (bool, error) { return false, errors.New("db down") })

	w := doSeedRequest(router, "Bearer service-role-key")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAdminInvalidJWT(t *testing.T) {
	setupTestConfig("development")
	router := guardedRouter(func(string) (bool, error) { return true, nil })

	w := doSeedRequest(router, "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminRoleCheck(t *testing.T) {
	setupTestConfig("development")
	token, err := utils.GenerateToken("user-123", "admin@test.chiccit.app")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("admin passes", func(t *testing.T) {
		var lookedUp string
		router := guardedRouter(func(userID string) (bool, error) {
			lookedUp = userID
			return true, nil
		})
		w := doSeedRequest(router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if lookedUp != "user-123" {
			t.Errorf("lookup received %q, want user-123", lookedUp)
		}
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		router := guardedRouter(func(string) (bool, error) { return false, nil })
		w := doSeedRequest(router, "Bearer "+token)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("lookup error rejected", func(t *testing.T) {
		router := guardedRouter(func(string) (bool, error) { return false, errors.New("db down") })
		w := doSeedRequest(router, "Bearer "+token)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})
}

package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/seeder"
	"backend_chiccit/pkg/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func setupRouter() (*gin.Engine, *store.Memory) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		Environment:    "development",
		JWTSecret:      "test-secret",
		ServiceRoleKey: "service-role-key",
	}

	mem := store.NewMemory()
	log := logrus.New()
	log.SetOutput(io.Discard)

	router := gin.New()
	SetupRoutes(router, seeder.New(mem, log), func(string) (bool, error) { return false, nil })
	return router, mem
}

func postSeed(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/seed", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer service-role-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSeedEndpointRunsAction(t *testing.T) {
	router, mem := setupRouter()
	w := postSeed(router, `{"action":"seed_ingredients"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["action"] != "seed_ingredients" {
		t.Errorf("action = %v", body["action"])
	}
	if body["ingredients"] != float64(15) {
		t.Errorf("ingredients = %v, want 15", body["ingredients"])
	}
	if mem.Count(&models.Ingredient{}) != 15 {
		t.Error("ingredient rows not stored")
	}
}

// Unknown actions are a soft failure: HTTP 200 with success:false, matching
// the contract dashboards already depend on.
func TestSeedEndpointUnknownAction(t *testing.T) {
	router, _ := setupRouter()
	w := postSeed(router, `{"action":"seed_unicorns"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "Unknown action" {
		t.Errorf("error = %v, want Unknown action", body["error"])
	}
}

func TestSeedEndpointHandlerErrorIsSoft(t *testing.T) {
	router, _ := setupRouter()
	// Labour needs a roster; with none seeded the handler errors.
	w := postSeed(router, `{"action":"seed_chiccit_labour","data":{"org_id":"3f3f3f3f-0000-4000-8000-000000000000"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestSeedEndpointMissingAction(t *testing.T) {
	router, _ := setupRouter()
	w := postSeed(router, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSeedEndpointRequiresAuth(t *testing.T) {
	router, _ := setupRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/seed", strings.NewReader(`{"action":"seed_ingredients"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

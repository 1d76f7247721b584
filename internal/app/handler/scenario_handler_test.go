package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"tourquote/internal/app/ds"
	"tourquote/internal/app/dto"
	"tourquote/internal/app/repository"
	"tourquote/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeAuth подставляет пользователя в контекст вместо JWT middleware
func fakeAuth(userID uint, userRole role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

func newTestRouter(t *testing.T, userID uint) (*gin.Engine, *APIHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&ds.User{},
		&ds.Service{},
		&ds.Scenario{},
		&ds.ScenarioItem{},
		&ds.Settings{},
	))

	h := NewAPIHandler(repository.NewWithDB(db), nil, nil)

	router := gin.New()
	api := router.Group("/api", fakeAuth(userID, role.User))
	{
		api.GET("/scenarios/:id/quote", h.GetScenarioQuote)
		api.POST("/scenarios", h.CreateScenario)
		api.DELETE("/scenarios/:id", h.DeleteScenario)
		api.GET("/settings", h.GetSettings)
	}
	return router, h
}

func postScenario(t *testing.T, router *gin.Engine, body string) uint {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func TestScenarioQuoteEndpoint(t *testing.T) {
	router, h := newTestRouter(t, 7)

	_, err := h.Repository.SetAgentMarkupPercent(10)
	require.NoError(t, err)

	id := postScenario(t, router, `{
		"name": "Алтай",
		"days": 2,
		"participants": 4,
		"singles": 0,
		"items": [
			{"service_id": 1, "day": 1, "kind": "PER_PERSON", "price": 50, "repeats": 1},
			{"service_id": 2, "day": 1, "kind": "PER_GROUP", "price": 200, "repeats": 1},
			{"service_id": 3, "day": null, "kind": "PER_TOUR", "price": 400, "repeats": 1}
		]
	}`)

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/"+itoa(id)+"/quote", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var quote dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))

	assert.Equal(t, 200.0, quote.PerPersonTotal)
	assert.Equal(t, 800.0, quote.GroupTotal)
	assert.Equal(t, 10.0, quote.AgentMarkupPercent)
	assert.Equal(t, 220.0, quote.PerPersonWithAgent)
	assert.Equal(t, 880.0, quote.GroupWithAgent)
	assert.Equal(t, 80.0, quote.AgentReward)
}

func TestScenarioQuoteNotFoundAfterDelete(t *testing.T) {
	router, _ := newTestRouter(t, 7)

	id := postScenario(t, router, `{"name": "x", "days": 1, "participants": 2, "items": []}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/scenarios/"+itoa(id), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/scenarios/"+itoa(id)+"/quote", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScenarioQuoteEmptyItemsZeroTotals(t *testing.T) {
	router, _ := newTestRouter(t, 7)

	id := postScenario(t, router, `{"name": "пусто", "days": 3, "participants": 5, "items": []}`)

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/"+itoa(id)+"/quote", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var quote dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Zero(t, quote.PerPersonTotal)
	assert.Zero(t, quote.GroupTotal)
}

func TestCreateScenarioRejectsBadItems(t *testing.T) {
	router, _ := newTestRouter(t, 7)

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios", strings.NewReader(`{
		"name": "плохой",
		"days": 2,
		"participants": 4,
		"items": [{"service_id": 1, "day": 9, "kind": "PER_PERSON", "price": 50, "repeats": 1}]
	}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSettingsDefault(t *testing.T) {
	router, _ := newTestRouter(t, 7)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.AgentMarkupPercent)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

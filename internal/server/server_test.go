package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository/memory"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/server"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		DBDriver:              config.DriverMemory,
		JWTSecret:             "test-secret",
		JWTAccessExpiry:       time.Hour,
		BcryptCost:            4,
		LowStockThresholdDays: 3,
		BuyLinkSearchURL:      "https://shop.example/s?k=",
		CORSOrigins:           "http://localhost:5173",
		RateLimitPerMin:       1000,
		AuthRateLimitPerMin:   1000,
	}
}

func newApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	return server.New(cfg, memory.NewStore(), server.Options{})
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	return decode[dto.AuthResponse](t, body).Token
}

func TestHealth(t *testing.T) {
	app := newApp(t, testConfig())

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	health := decode[dto.HealthResponse](t, body)
	assert.Equal(t, "ok", health.DB)
	assert.Equal(t, "memory", health.Driver)
}

func TestAuthFlow(t *testing.T) {
	app := newApp(t, testConfig())
	token := register(t, app, "owner@example.com")

	t.Run("duplicate register is a conflict", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
			"email":    "owner@example.com",
			"password": "another-password",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, dto.KindConflict, decode[dto.ErrorResponse](t, body).Kind)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
			"email":    "new@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, dto.KindValidation, decode[dto.ErrorResponse](t, body).Kind)
	})

	t.Run("multibyte password over 72 bytes is rejected", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
			"email":    "accents@example.com",
			"password": strings.Repeat("é", 40),
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, dto.KindValidation, decode[dto.ErrorResponse](t, body).Kind)
	})

	t.Run("login", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "owner@example.com",
			"password": "correct-horse",
		})
		require.Equal(t, http.StatusOK, status, string(body))
		assert.NotEmpty(t, decode[dto.AuthResponse](t, body).Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "owner@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, dto.KindInvalidCredentials, decode[dto.ErrorResponse](t, body).Kind)
	})

	t.Run("me", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, "owner@example.com", decode[dto.MeResponse](t, body).User.Email)
	})

	t.Run("me without token", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, dto.KindUnauthorized, decode[dto.ErrorResponse](t, body).Kind)
	})

	t.Run("me with garbage token", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newApp(t, testConfig())

	for _, path := range []string{"/api/foods", "/api/pets", "/api/notifications/low-stock"} {
		status, _ := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}

func TestFoodLifecycleAndLowStock(t *testing.T) {
	app := newApp(t, testConfig())
	token := register(t, app, "owner@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/foods", token, map[string]any{
		"name":   "Salmon Kibble",
		"brand":  "Acme",
		"weight": 500,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	food := decode[dto.FoodResponse](t, body)
	assert.False(t, food.IsOpen)
	assert.Nil(t, food.OpenedAt)
	assert.Equal(t, []string{"https://shop.example/s?k=Salmon+Kibble"}, food.BuyLinks)

	status, body = doJSON(t, app, http.MethodPost, "/api/pets", token, map[string]any{
		"name":         "Milo",
		"age":          3,
		"gramsPerMeal": 100,
		"mealsPerDay":  2,
		"foodId":       food.ID.String(),
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	pet := decode[dto.PetResponse](t, body)

	// Closed packages never alert.
	status, body = doJSON(t, app, http.MethodGet, "/api/notifications/low-stock", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Empty(t, decode[dto.LowStockResponse](t, body).Alerts)

	status, body = doJSON(t, app, http.MethodPatch, "/api/foods/"+food.ID.String()+"/toggle-open", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	opened := decode[dto.FoodResponse](t, body)
	assert.True(t, opened.IsOpen)
	assert.NotNil(t, opened.OpenedAt)

	status, body = doJSON(t, app, http.MethodGet, "/api/notifications/low-stock", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	stock := decode[dto.LowStockResponse](t, body)
	assert.Equal(t, 3, stock.ThresholdDays)
	require.Len(t, stock.Alerts, 1)
	assert.Equal(t, pet.ID, stock.Alerts[0].PetID)
	assert.Equal(t, 2, stock.Alerts[0].DaysRemaining)
	assert.Equal(t, "Milo has only 2 days of food left.", stock.Alerts[0].Message)

	t.Run("threshold override", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/notifications/low-stock?threshold=1", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		stock := decode[dto.LowStockResponse](t, body)
		assert.Equal(t, 1, stock.ThresholdDays)
		assert.Empty(t, stock.Alerts)
	})

	t.Run("bad threshold", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/notifications/low-stock?threshold=soon", token, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, dto.KindValidation, decode[dto.ErrorResponse](t, body).Kind)

		status, _ = doJSON(t, app, http.MethodGet, "/api/notifications/low-stock?threshold=-1", token, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("pet resolves its food", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/pets/"+pet.ID.String(), token, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		got := decode[dto.PetResponse](t, body)
		require.NotNil(t, got.Food)
		assert.Equal(t, "Salmon Kibble", got.Food.Name)

		status, body = doJSON(t, app, http.MethodGet, "/api/pets/"+pet.ID.String()+"?resolve=false", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Nil(t, decode[dto.PetResponse](t, body).Food)
	})

	status, body = doJSON(t, app, http.MethodPatch, "/api/foods/"+food.ID.String()+"/toggle-open", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	closed := decode[dto.FoodResponse](t, body)
	assert.False(t, closed.IsOpen)
	assert.Nil(t, closed.OpenedAt)

	status, body = doJSON(t, app, http.MethodGet, "/api/notifications/low-stock", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Empty(t, decode[dto.LowStockResponse](t, body).Alerts)
}

func TestFoodErrors(t *testing.T) {
	app := newApp(t, testConfig())
	token := register(t, app, "owner@example.com")

	status, body := doJSON(t, app, http.MethodGet, "/api/foods/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.KindValidation, decode[dto.ErrorResponse](t, body).Kind)

	status, body = doJSON(t, app, http.MethodGet, "/api/foods/7b0c6f5e-3f5e-4a39-9c1a-0d7b2b4f9a11", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.KindNotFound, decode[dto.ErrorResponse](t, body).Kind)

	status, body = doJSON(t, app, http.MethodPost, "/api/foods", token, map[string]any{
		"name":  "No Weight",
		"brand": "Acme",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.KindValidation, decode[dto.ErrorResponse](t, body).Kind)
}

func TestUnknownRoute(t *testing.T) {
	app := newApp(t, testConfig())

	status, body := doJSON(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.KindNotFound, decode[dto.ErrorResponse](t, body).Kind)
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitPerMin = 2
	app := newApp(t, cfg)

	creds := map[string]any{"email": "nobody@example.com", "password": "whatever-it-is"}
	for i := 0; i < 2; i++ {
		status, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
	}
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, dto.KindRateLimited, decode[dto.ErrorResponse](t, body).Kind)
}

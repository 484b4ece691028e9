package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/dietlog/internal/app"
	"github.com/vladimiradmaev/dietlog/internal/auth"
	"github.com/vladimiradmaev/dietlog/internal/config"
	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/repository"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

var now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type client struct {
	t      *testing.T
	router *Router
	token  string
}

func newClient(t *testing.T) *client {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "diet.db"))
	require.NoError(t, err)
	stores := repository.NewStores(db)
	t.Cleanup(func() { _ = stores.Close(context.Background()) })

	tokens := auth.NewTokenIssuer("test-secret", time.Hour, func() time.Time { return now })
	svc := app.NewServices(stores, tokens, nil, services.Options{Clock: datekey.FixedClock{T: now}})
	return &client{t: t, router: NewRouter(svc, config.HTTPConfig{CORSOrigins: []string{"*"}})}
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	code, raw := c.doRaw(method, path, body)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(c.t, json.Unmarshal(raw, &out))
	}
	return code, out
}

func (c *client) doList(method, path string) (int, []map[string]any) {
	c.t.Helper()
	code, raw := c.doRaw(method, path, nil)
	var out []map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &out), string(raw))
	return code, out
}

func (c *client) doRaw(method, path string, body any) (int, []byte) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.router.Handler().ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func (c *client) signUp(email string) {
	c.t.Helper()
	code, body := c.do(http.MethodPost, "/api/auth/register", map[string]any{
		"name": "Ann", "email": email, "password": "secret",
	})
	require.Equal(c.t, http.StatusOK, code, body)
	c.token = body["token"].(string)
}

func TestHealth(t *testing.T) {
	c := newClient(t)
	code, body := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	c := newClient(t)
	c.signUp("Ann@Example.com")

	code, body := c.do(http.MethodPost, "/api/auth/register", map[string]any{
		"name": "Ann", "email": "ann@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email already registered", body["detail"])

	code, body = c.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ann@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", body["detail"])

	code, body = c.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ann@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, code)
	user := body["user"].(map[string]any)
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")
	assert.NotEmpty(t, body["token"])
}

func TestAuthRequired(t *testing.T) {
	c := newClient(t)

	code, body := c.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Not authenticated", body["detail"])

	c.token = "garbage"
	code, body = c.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token", body["detail"])
}

func TestProfileUpdateRecomputesTargets(t *testing.T) {
	c := newClient(t)
	c.signUp("ann@example.com")

	code, body := c.do(http.MethodPut, "/api/profile", map[string]any{
		"age": 30, "gender": "male", "height_cm": 180, "current_weight": 80,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.EqualValues(t, 2259, body["calorie_target"])
	assert.EqualValues(t, 1780, body["bmr"])

	code, body = c.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2259, body["calorie_target"])
}

func TestProfileTelegramIDAlreadyLinked(t *testing.T) {
	ann := newClient(t)
	ann.signUp("ann@example.com")
	bob := &client{t: t, router: ann.router}
	bob.signUp("bob@example.com")

	code, body := ann.do(http.MethodPut, "/api/profile", map[string]any{"telegram_id": 42})
	require.Equal(t, http.StatusOK, code, body)

	code, body = bob.do(http.MethodPut, "/api/profile", map[string]any{"telegram_id": 42})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Telegram account already linked", body["detail"])

	code, body = bob.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["telegram_id"])
}

func TestFoodLogEndpoints(t *testing.T) {
	c := newClient(t)
	c.signUp("ann@example.com")

	code, body := c.do(http.MethodPost, "/api/food-logs", map[string]any{
		"food_name": "Oatmeal", "calories": 150, "quantity": 2, "meal_type": "breakfast",
		"logged_at": "2024-06-10T08:00:00Z",
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.EqualValues(t, 300, body["calories"])
	id := body["id"].(string)

	code, logs := c.doList(http.MethodGet, "/api/food-logs?date=2024-06-10")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, logs, 1)

	code, recent := c.doList(http.MethodGet, "/api/food-logs/recent-foods")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, recent, 1)
	assert.Equal(t, "Oatmeal", recent[0]["food_name"])

	code, body = c.do(http.MethodGet, "/api/food-logs?date=10-06-2024", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["detail"], "YYYY-MM-DD")

	code, body = c.do(http.MethodDelete, "/api/food-logs/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "deleted", body["status"])

	code, body = c.do(http.MethodDelete, "/api/food-logs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Food log not found", body["detail"])
}

func TestWaterEndpoints(t *testing.T) {
	c := newClient(t)
	c.signUp("ann@example.com")

	for _, amount := range []int{500, 300} {
		code, body := c.do(http.MethodPost, "/api/water-logs", map[string]any{"amount_ml": amount})
		require.Equal(t, http.StatusOK, code, body)
	}

	code, body := c.do(http.MethodGet, "/api/water-logs", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 800, body["total_ml"])
	assert.Equal(t, "2024-06-10", body["date"])

	code, body = c.do(http.MethodDelete, "/api/water-logs/last", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 500, body["total_ml"])
	assert.EqualValues(t, 300, body["removed_entry"].(map[string]any)["amount_ml"])

	code, body = c.do(http.MethodPost, "/api/water-logs", map[string]any{"amount_ml": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "amount_ml must be a positive integer", body["detail"])

	code, _ = c.do(http.MethodDelete, "/api/water-logs/last?date=2024-06-01", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestWeightAndSummaries(t *testing.T) {
	c := newClient(t)
	c.signUp("ann@example.com")

	code, body := c.do(http.MethodPost, "/api/weight-logs", map[string]any{"weight": 80.5, "logged_at": "2024-06-09T07:00:00Z"})
	require.Equal(t, http.StatusOK, code, body)

	code, logs := c.doList(http.MethodGet, "/api/weight-logs?limit=5")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, logs, 1)

	code, body = c.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 80.5, body["current_weight"])

	_, _ = c.do(http.MethodPost, "/api/food-logs", map[string]any{"food_name": "Rice", "calories": 400, "meal_type": "lunch"})

	code, body = c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 400, body["calories"].(map[string]any)["consumed"])
	assert.EqualValues(t, 1, body["streak"])
	lunch := body["meals"].(map[string]any)["lunch"].([]any)
	assert.Len(t, lunch, 1)

	code, body = c.do(http.MethodGet, "/api/stats/weekly", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["daily_stats"], 7)
	assert.EqualValues(t, 400, body["total_calories"])

	code, _ = c.do(http.MethodGet, "/api/weight-logs?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMalformedBody(t *testing.T) {
	c := newClient(t)
	code, body := c.do(http.MethodPost, "/api/auth/register", "{not json")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Invalid request body", body["detail"])
}

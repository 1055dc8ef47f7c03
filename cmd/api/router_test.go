package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdto "dietdiary-backend/internal/auth/dto"
	authRepo "dietdiary-backend/internal/auth/repository"
	"dietdiary-backend/internal/auth/token"
	authUsecase "dietdiary-backend/internal/auth/usecase"
	mealdto "dietdiary-backend/internal/meal/dto"
	mealRepo "dietdiary-backend/internal/meal/repository"
	mealUsecase "dietdiary-backend/internal/meal/usecase"
	"dietdiary-backend/pkg/config"
	"dietdiary-backend/pkg/httpx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, origins ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:            "test",
		JWTSecret:      "router-secret",
		JWTExpiry:      time.Hour,
		CookieExpiry:   time.Hour,
		StoreDriver:    config.StoreDriverMemory,
		AllowedOrigins: origins,
	}
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authUc := authUsecase.NewAuthUsecase(authRepo.NewMemoryUserRepository(), tokens)
	mealUc := mealUsecase.NewMealUsecase(mealRepo.NewMemoryMealRepository())

	return NewHandler(authUc, mealUc, cfg).Engine()
}

type client struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func (c *client) call(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestEndToEndMealLifecycle(t *testing.T) {
	c := &client{t: t, engine: newTestEngine(t)}

	w := c.call(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Uma", "email": "uma@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.call(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "uma@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decodeBody[authdto.LoginResponse](t, w)
	assert.Equal(t, "Uma", login.Username)
	c.token = login.Token

	w = c.call(http.MethodPost, "/api/meals", map[string]string{"name": "Toast", "tag": "breakfast"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody[mealdto.MealResponse](t, w).Data.ID

	w = c.call(http.MethodGet, "/api/meals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[mealdto.MealListResponse](t, w)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Toast", list.Data[0].Name)

	w = c.call(http.MethodPut, "/api/meals/"+id, map[string]string{"name": "Bagel"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.call(http.MethodGet, "/api/meals/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bagel", decodeBody[mealdto.MealResponse](t, w).Data.Name)

	w = c.call(http.MethodDelete, "/api/meals/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.call(http.MethodGet, "/api/meals/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decodeBody[httpx.ErrorResponse](t, w).Success)
}

func TestHealth(t *testing.T) {
	c := &client{t: t, engine: newTestEngine(t)}

	w := c.call(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	engine := newTestEngine(t, "https://app.example.com")

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/meals", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://app.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = preflight("https://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ReflectsAnyOriginWhenUnrestricted(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:19006", w.Header().Get("Access-Control-Allow-Origin"))
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/common/middleware"
	"raffle-manager-backend/internal/features/raffle/draw"
	"raffle-manager-backend/internal/features/raffle/repository/memory"
	raffleservice "raffle-manager-backend/internal/features/raffle/service"
)

func newTestRouter(t *testing.T, checks map[string]healthCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := &backend{storage: memory.NewStorage(), checks: checks}
	hub := raffleservice.NewHub(4)
	store, err := raffleservice.NewRaffleStore(context.Background(), storage.storage, draw.NewEngine(nil), hub)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	setupRoutes(router, store, hub, nil, nil, storage)
	return router
}

func TestReady(t *testing.T) {
	router := newTestRouter(t, map[string]healthCheck{
		"redis": func(context.Context) error { return nil },
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
}

func TestReady_StorageDown(t *testing.T) {
	router := newTestRouter(t, map[string]healthCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeStorageError, resp.Error.Code)
	assert.Equal(t, "redis health check", resp.Error.Details["operation"])
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/lotteries", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeNotFound, resp.Error.Code)
}

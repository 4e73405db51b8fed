package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restomenu-be/internal/menu"
	"restomenu-be/internal/order"
	httptransport "restomenu-be/internal/transport/http"

	"github.com/stretchr/testify/assert"
)

func TestWiring(t *testing.T) {
	handler := httptransport.NewHandler(
		menu.NewService(menu.NewRepository()),
		order.NewService(order.NewRepository()),
	)
	router := handler.Routes()

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Menu route is wired", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/menu", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRun(t *testing.T) {
	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()

	var gotAddr string
	startServerFunc = func(addr string, handler http.Handler) error {
		gotAddr = addr
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")

	assert.NoError(t, run())
	assert.Equal(t, ":8080", gotAddr)
}

package mwlogger

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(New(log))
	router.Get("/api/offers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/offers", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"logger middleware enabled"`)
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"path":"/api/offers"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"bytes":2`)
}

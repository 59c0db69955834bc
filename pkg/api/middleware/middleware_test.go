package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthRejectsWrongKey(t *testing.T) {
	e := newEngine()
	e.Use(Auth("secret"))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(apiKeyHeader, "wrong")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid api key") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	e := newEngine()
	e.Use(Auth(""))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	e := newEngine()
	e.Use(Logger(log))
	e.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
	if out := buf.String(); !strings.Contains(out, "level=INFO") || !strings.Contains(out, "status=200") {
		t.Fatalf("unexpected log line: %s", out)
	}

	buf.Reset()
	req, _ = http.NewRequest(http.MethodGet, "/boom", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "status=500") {
		t.Fatalf("server error should log at warn: %s", out)
	}
}

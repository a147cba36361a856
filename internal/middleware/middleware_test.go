package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "verde/internal/errors"
	"verde/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func TestRequestLogging(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogging())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	t.Run("generates_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get("X-Request-ID")
		if id == "" || id != w.Body.String() {
			t.Errorf("expected the header and context id to match, got %q and %q", id, w.Body.String())
		}
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		const incoming = "0190f0b4-7c5e-7a3b-9c1d-2e3f4a5b6c7d"
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", incoming)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != incoming {
			t.Errorf("expected %s, got %s", incoming, got)
		}
	})

	t.Run("replaces_garbage_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "<script>")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got == "<script>" {
			t.Error("expected a malformed id to be replaced")
		}
	})
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrBudgetNotFound)
	})
	router.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full")))
	})
	router.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/app", http.StatusNotFound, "BUDGET_NOT_FOUND"},
		{"/wrapped", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"/plain", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range tests {
		t.Run(strings.TrimPrefix(tc.path, "/"), func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if w.Code != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), `"code":"`+tc.code+`"`) {
				t.Errorf("expected code %s in %s", tc.code, w.Body.String())
			}
			if strings.Contains(w.Body.String(), "disk full") {
				t.Error("internal details must not leak")
			}
		})
	}
}

func TestErrorHandler_LogsAttachedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(RequestLogging(), errorHandler(zap.New(core).Sugar()))
	router.GET("/written", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full")))
		c.JSON(http.StatusTeapot, gin.H{"handled": true})
	})
	router.GET("/rejected", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrInvalidInput)
	})

	t.Run("keeps_the_handler_response", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))

		if w.Code != http.StatusTeapot || strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
			t.Errorf("expected the handler response to stand, got %d %s", w.Code, w.Body.String())
		}
		entries := logs.FilterMessage("app error").TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected one app error entry, got %d", len(entries))
		}
		fields := entries[0].ContextMap()
		if fields["internal"] != "disk full" {
			t.Errorf("expected the internal cause to be logged, got %v", fields["internal"])
		}
		if fields["request_id"] != w.Header().Get("X-Request-ID") {
			t.Errorf("expected request id %s, got %v", w.Header().Get("X-Request-ID"), fields["request_id"])
		}
	})

	t.Run("client_errors_log_at_debug", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rejected", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		entries := logs.FilterMessage("request rejected").TakeAll()
		if len(entries) != 1 || entries[0].Level != zapcore.DebugLevel {
			t.Errorf("expected one debug entry, got %v", entries)
		}
	})
}

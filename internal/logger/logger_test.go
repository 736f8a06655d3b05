package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info().Str("key", "value").Msg("info-test")

	output := buf.String()
	assert.Contains(t, output, "info-test")
	assert.Contains(t, output, `"key":"value"`)
	assert.Contains(t, output, `"level":"info"`)
	assert.Contains(t, output, `"time":`)
}

func TestLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug().Msg("debug-test")

	assert.Contains(t, buf.String(), "debug-test")
}

func TestLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug().Msg("debug-hidden")

	assert.Empty(t, buf.String())
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}

	r := gin.New()
	r.Use(GinMiddleware(NewWithWriter("development", buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":204`)
	assert.Contains(t, buf.String(), `"level":"info"`)

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestGinMiddleware_TraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}

	r := gin.New()
	r.Use(GinMiddleware(NewWithWriter("development", buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
		SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))

	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), `"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`)
}

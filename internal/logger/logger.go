package logger

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// New returns a JSON logger writing to stdout.
func New(env string) zerolog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter logs at info level in production and at debug level
// everywhere else.
func NewWithWriter(env string, w io.Writer) zerolog.Logger {
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// GinMiddleware logs one line per request once the handler chain returns.
// The trace id is attached when the request carries a span context.
func GinMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= 500 {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start))
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			event = event.Str("trace_id", sc.TraceID().String())
		}
		event.Msg("http_request")
	}
}

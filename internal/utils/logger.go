package utils

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is the logging interface handed to handlers and middleware.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps a *slog.Logger in the Logger interface.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: s.logger.With(args...)}
}

const contextLoggerKey = "logger"

// ContextLogger attaches a request-scoped logger (carrying the request id
// when one is set) to the gin context.
func ContextLogger(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scoped := logger
		if requestID := c.GetString("request_id"); requestID != "" {
			scoped = logger.With("request_id", requestID)
		}
		c.Set(contextLoggerKey, scoped)
		c.Next()
	}
}

// FromContext returns the request-scoped logger, falling back to the
// given logger when middleware did not run.
func FromContext(c *gin.Context, fallback Logger) Logger {
	if val, ok := c.Get(contextLoggerKey); ok {
		if scoped, ok := val.(Logger); ok {
			return scoped
		}
	}
	return fallback
}

// LoggerMiddleware logs one line per completed request.
func LoggerMiddleware(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString("request_id"),
		)
	}
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the request id middleware stores the id of the current request
const RequestIDKey = "request_id"

var (
	level           = new(slog.LevelVar)
	out   io.Writer = os.Stderr
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built from now on, as well as the ones already built
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps debug, info, warn and error to their slog level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
	if requestID := ctx.GetString(RequestIDKey); requestID != "" {
		logger = &Logger{Logger: logger.With(RequestIDKey, requestID)}
	}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Init configures the process-wide logger.  The level is one of DEBUG, INFO,
// WARN or ERROR (case-insensitive); unknown values fall back to INFO.
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})))
}

// ParseLevel maps a textual level to its slog equivalent.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a formatted debug message for the given subsystem.
func Debug(subsystem, format string, args ...interface{}) {
	logger.Load().Debug(fmt.Sprintf(format, args...), "subsystem", subsystem)
}

// Info logs a formatted informational message for the given subsystem.
func Info(subsystem, format string, args ...interface{}) {
	logger.Load().Info(fmt.Sprintf(format, args...), "subsystem", subsystem)
}

// Warn logs a formatted warning for the given subsystem.
func Warn(subsystem, format string, args ...interface{}) {
	logger.Load().Warn(fmt.Sprintf(format, args...), "subsystem", subsystem)
}

// Error logs a formatted error message for the given subsystem.  A nil err is
// allowed and simply omitted from the record.
func Error(subsystem string, err error, format string, args ...interface{}) {
	if err != nil {
		logger.Load().Error(fmt.Sprintf(format, args...), "subsystem", subsystem, "error", err)
		return
	}
	logger.Load().Error(fmt.Sprintf(format, args...), "subsystem", subsystem)
}

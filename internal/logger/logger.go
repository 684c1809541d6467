package logger

import (
	"io"
	"log/slog"
	"os"
)

// serviceName is stamped on every record the backend emits.
const serviceName = "tezcart"

// New creates the shared slog.Logger writing JSON to stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter builds the service logger against an arbitrary
// destination.
func NewWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", serviceName))
}

package cli

import (
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
)

// createLogger configures the application logger. In debug mode it writes to
// Stderr, keeping Stdout clean for the session itself.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

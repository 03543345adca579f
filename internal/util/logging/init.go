// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Initialize sets the default slog logger. On a terminal it uses a tinted
// handler; otherwise plain text, so piped output stays machine-readable.
func Initialize(logLevelName string) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(logLevelName)); err != nil {
		return fmt.Errorf("could not parse log level %q: %w", logLevelName, err)
	}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

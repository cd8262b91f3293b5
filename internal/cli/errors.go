package cli

// Error handling utilities for the scaffold CLI:
//   - Sentinel catalog entries for validation failures
//   - Structured error logging with chain context
//   - Debug mode management for error output

import (
	"errors"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recount-go/recount/pkg/clierr"
	"github.com/recount-go/recount/pkg/recount"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// Sentinel errors for scaffold operations. Each sentinel is a catalog entry,
// so it carries the kind that fixes its exit code: wrapping a cause with one
// both narrates the failure and categorizes it in a single step.
var (
	// Usage errors.
	ErrNameRequired = clierr.Newf(clierr.Usage, "project name is required")
	ErrInvalidName  = clierr.Newf(clierr.Usage, "project name must be a single path segment without control characters")

	// Config errors.
	ErrNameMissingInConfig = clierr.Newf(clierr.Config, "project name missing in config")
	ErrEmptyLayout         = clierr.Newf(clierr.Config, "config declares no directories and no files")
	ErrUnsafePath          = clierr.Newf(clierr.Config, "config path escapes the project directory")

	// Layout errors.
	ErrTargetExists = clierr.Newf(clierr.CantCreate, "target directory already exists")
)

// exactArgs is cobra.ExactArgs with the failure categorized as a usage
// error, so a wrong argument count exits with the usage code instead of
// the generic software code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return recount.WrapErr(err, clierr.ErrUsage)
		}
		return nil
	}
}

// logStructuredError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag).
// The zap logger is configured with console encoding, so structured fields
// are displayed in a human-readable format in the terminal.
//
// Catalog errors are broken out into fields:
// - error.kind: "cannot create file"
// - error.exit_code: 73
// - error.chain: every message from the outermost wrap down to the root
// - error.help: attached help, deepest first
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var entry clierr.Error
	if errors.As(err, &entry) {
		fields := []zap.Field{
			zap.String("error.kind", entry.Kind().String()),
			zap.Int("error.exit_code", entry.ExitCode()),
			zap.Error(err),
		}

		// Add the full chain when the error wraps a cause (use a distinct
		// field name to avoid a duplicate "error" field).
		if chain := recount.Chain(err); len(chain) > 1 {
			links := make([]string, len(chain))
			for i, link := range chain {
				links[i] = link.Error()
			}
			fields = append(fields,
				zap.Strings("error.chain", links),
				zap.NamedError("error.cause", recount.RootCause(err)))
		}

		if help := recount.AllHelp(err); len(help) > 0 {
			fields = append(fields, zap.Strings("error.help", help))
		}

		logger.Error(msg, fields...)
	} else {
		// Fallback for errors outside the catalog
		logger.Error(msg, zap.Error(err))
	}
}

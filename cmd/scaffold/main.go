package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/recount-go/recount/internal/cli"
	"github.com/recount-go/recount/pkg/clierr"
	"github.com/recount-go/recount/pkg/recount"
	"github.com/recount-go/recount/pkg/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
)

func main() {
	logger, err := newConsoleLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		// --debug prints the full chain; the default view stays short.
		if debug {
			report.ErrFull(err)
		} else {
			report.Err(err)
		}
		os.Exit(clierr.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Project scaffolding with narrated progress",
	Long: `scaffold creates project directories from a small YAML config and
narrates each step the way build tools report their progress. Failures
print the full error chain and exit with conventional sysexits codes.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally so logStructuredError can check it
		cli.SetDebugMode(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode with structured error logging")
	// Flag parse failures are usage errors, not software errors.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return recount.WrapErr(err, clierr.ErrUsage)
	})
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewNewCmd(logger))
	rootCmd.AddCommand(cli.NewCheckCmd(logger))
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// If debug is true, sets log level to Debug to enable all debug logs.
// Otherwise, sets to ErrorLevel so structured error logs (when debug flag is enabled) will show.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel // Error level allows Error logs to show
	if debug {
		level = zap.DebugLevel // Debug level shows all logs
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

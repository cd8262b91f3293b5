package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recount-go/recount/pkg/report"
)

// NewCheckCmd returns the check subcommand.
func NewCheckCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a scaffold config file",
		Long: `Validate a scaffold config file without creating anything. Reports the
layout the config would produce.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				logStructuredError(logger, err, "check failed")
				return err
			}
			report.Status("Checked", fmt.Sprintf("config `%s` for project `%s` (%d dirs, %d files)",
				args[0], cfg.Project.Name, len(cfg.Dirs), len(cfg.Files)), report.Green)
			return nil
		},
	}
	return cmd
}

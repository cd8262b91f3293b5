package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recount-go/recount/pkg/clierr"
	"github.com/recount-go/recount/pkg/recount"
	"github.com/recount-go/recount/pkg/report"
)

// Scaffolder runs scaffold operations with injected dependencies.
type Scaffolder struct {
	logger *zap.Logger
	exec   Executor
}

// DefaultScaffolder returns a Scaffolder backed by the OS executor.
func DefaultScaffolder(logger *zap.Logger) *Scaffolder {
	return &Scaffolder{logger: logger, exec: execExecutor}
}

// NewNewCmd returns the new subcommand.
func NewNewCmd(logger *zap.Logger) *cobra.Command {
	s := DefaultScaffolder(logger)

	var (
		configPath string
		targetDir  string
		withGit    bool
	)

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a new project directory",
		Long: `Create a new project directory from a scaffold config, narrating each
step. Without --config a minimal default layout is used.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := s.CreateProject(args[0], configPath, targetDir, withGit)
			if err != nil {
				logStructuredError(s.logger, err, "new failed")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a scaffold config file (YAML)")
	cmd.Flags().StringVar(&targetDir, "dir", "", "Target directory (defaults to NAME)")
	cmd.Flags().BoolVar(&withGit, "git", false, "Initialize a git repository in the new project")

	return cmd
}

// CreateProject builds the project layout for name under targetDir,
// narrating each step on stdout. The first failing step aborts the run
// with an error chain that carries the failed path.
func (s *Scaffolder) CreateProject(name, configPath, targetDir string, withGit bool) error {
	if err := validateProjectName(name); err != nil {
		return err
	}

	cfg := defaultConfig(name)
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		// The NAME argument wins over the name recorded in the config.
		loaded.Project.Name = name
		cfg = loaded
	}

	target := targetDir
	if target == "" {
		target = name
	}

	if _, err := os.Stat(target); err == nil {
		err := recount.Wrapf(ErrTargetExists, "cannot create project at %q", target)
		return recount.AddHelp(err, "pick a different name or remove the existing directory")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return wrapCreate(err, target)
	}

	if err := os.MkdirAll(target, 0o750); err != nil {
		return wrapCreate(err, target)
	}

	for _, dir := range cfg.Dirs {
		path := filepath.Join(target, dir)
		if err := os.MkdirAll(path, 0o750); err != nil {
			return wrapCreate(err, path)
		}
		report.Status("Adding", "directory `"+dir+"`", report.Cyan)
	}

	for _, file := range cfg.Files {
		path := filepath.Join(target, file.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return wrapCreate(err, filepath.Dir(path))
		}
		if err := os.WriteFile(path, []byte(cfg.render(file.Content)), 0o600); err != nil {
			return recount.WrapErr(err, clierr.WriteFile(path))
		}
		report.Status("Adding", "file `"+file.Path+"`", report.Cyan)
	}

	if withGit {
		if err := s.initRepository(target); err != nil {
			return err
		}
		report.Status("Initialized", "git repository", report.Magenta)
	}

	report.Status("Created", fmt.Sprintf("project `%s` at %s", name, target), report.Green)
	return nil
}

// wrapCreate categorizes a failed directory or file creation: permission
// problems exit with the permission code, everything else with the
// cannot-create code.
func wrapCreate(err error, path string) error {
	if errors.Is(err, fs.ErrPermission) {
		return recount.WrapErr(err, clierr.OperationPermission("create "+path))
	}
	return recount.WrapErr(err, clierr.CreateFile(path))
}

// initRepository runs git init in dir. Git's own output is discarded;
// the scaffold narrates the step itself.
func (s *Scaffolder) initRepository(dir string) error {
	cmd, err := s.exec.Command("git", []string{"init", dir},
		AllowlistBins("git"), NoShellMeta(), NoControlChars())
	if err != nil {
		return recount.Wrap(err, "refusing to run git")
	}
	cmd.SetStdout(io.Discard)
	cmd.SetStderr(io.Discard)
	if err := cmd.Run(); err != nil {
		err = recount.Wrap(err, "cannot initialize git repository")
		return recount.AddHelp(err, "install git or rerun without --git")
	}
	return nil
}

// validateProjectName rejects names that cannot form a single directory
// component.
func validateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return recount.AddHelp(ErrNameRequired, "usage: scaffold new NAME")
	}
	if strings.ContainsAny(name, "/\\\r\n\t") || name == "." || name == ".." {
		err := recount.Wrapf(ErrInvalidName, "rejecting name %q", name)
		return recount.AddHelp(err, "use a plain directory name such as `url-probe`")
	}
	return nil
}

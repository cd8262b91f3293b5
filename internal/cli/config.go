package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/recount-go/recount/pkg/clierr"
	"github.com/recount-go/recount/pkg/recount"
)

// Config describes the layout a scaffold produces: the directories to
// create and the files to render inside the target directory.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Dirs    []string      `yaml:"dirs,omitempty"`
	Files   []FileConfig  `yaml:"files,omitempty"`
}

// ProjectConfig holds project metadata rendered into files.
type ProjectConfig struct {
	Name    string `yaml:"name"`
	License string `yaml:"license,omitempty"`
}

// FileConfig is one rendered file. Content may reference the project
// name as {name}.
type FileConfig struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content,omitempty"`
}

const configReference = "https://github.com/recount-go/recount/tree/main/cmd/scaffold#config"

// loadConfig reads and validates a scaffold config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, recount.WrapErr(err, clierr.InputFileNotFound(path))
		}
		return nil, recount.WrapErr(err, clierr.ReadFile(path))
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		err = recount.WrapErr(err, clierr.Newf(clierr.Config, "cannot parse config file: %s", path))
		return nil, recount.AddHelp(err, "config reference: "+configReference)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the invariants every command relies on.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return recount.AddHelp(ErrNameMissingInConfig, "set project.name in the config file")
	}
	if len(c.Dirs) == 0 && len(c.Files) == 0 {
		return recount.AddHelp(ErrEmptyLayout, "declare at least one entry under dirs or files")
	}
	for _, dir := range c.Dirs {
		if err := checkRelativePath(dir); err != nil {
			return err
		}
	}
	for _, file := range c.Files {
		if err := checkRelativePath(file.Path); err != nil {
			return err
		}
	}
	return nil
}

// checkRelativePath rejects paths that would land outside the project
// directory: absolute paths and paths reaching up through "..".
func checkRelativePath(path string) error {
	clean := filepath.Clean(path)
	if path == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		err := recount.Wrapf(ErrUnsafePath, "rejecting path %q", path)
		return recount.AddHelp(err, "paths in the config must stay relative to the project directory")
	}
	return nil
}

// defaultConfig is the layout used when no config file is given.
func defaultConfig(name string) *Config {
	return &Config{
		Project: ProjectConfig{Name: name},
		Dirs:    []string{"src"},
		Files: []FileConfig{
			{Path: "README.md", Content: "# {name}\n"},
			{Path: ".gitignore", Content: "/bin/\n"},
		},
	}
}

// render substitutes project metadata into file content.
func (c *Config) render(content string) string {
	return strings.ReplaceAll(content, "{name}", c.Project.Name)
}

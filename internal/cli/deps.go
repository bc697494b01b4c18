// Package cli provides the Cobra command tree and dependency wiring for the
// hdlman CLI. This file defines the Dependencies struct (Composition Root)
// that wires the domain packages together.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hdlman/hdlman/internal/config"
	"github.com/hdlman/hdlman/internal/hardware"
	"github.com/hdlman/hdlman/internal/template"
	"github.com/hdlman/hdlman/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Registry *hardware.Registry
	Deployer template.Deployer
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. Logs go to stderr
// at warn level until --verbose raises it. Config is loaded later by
// loadConfig, once the log level is known.
func InitDependencies() error {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry, err := hardware.Default()
	if err != nil {
		return fmt.Errorf("load hardware registry: %w", err)
	}

	templates, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	deps = &Dependencies{
		Registry: registry,
		Deployer: template.NewDeployer(template.NewRenderer(templates)),
		Headless: ui.NewHeadlessManager(),
		Theme:    ui.NewTheme(),
		Logger:   logger,
		LogLevel: level,
	}
	return nil
}

// loadConfig resolves the config defaults once.
func (d *Dependencies) loadConfig() *config.Config {
	if d.Config == nil {
		d.Config = config.Load(d.Logger)
	}
	return d.Config
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

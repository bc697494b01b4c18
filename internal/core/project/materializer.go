package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/hdlman/hdlman/internal/defs"
	"github.com/hdlman/hdlman/internal/hardware"
	"github.com/hdlman/hdlman/internal/template"
)

// Result summarizes the outcome of project creation.
type Result struct {
	Dir          string   // Path of the project directory.
	CreatedDirs  []string // Directories that were created, relative to Dir.
	CreatedFiles []string // Files that were created, relative to Dir.
}

// Materializer creates project directories.
type Materializer interface {
	// Create builds the project described by spec. It fails with
	// ErrDirectoryExists when the project path is taken and never
	// overwrites anything. A failure after the directory was created
	// leaves the partial tree on disk.
	Create(ctx context.Context, spec Spec) (*Result, error)
}

// CreateSteps is the number of steps Create reports through WithProgress.
const CreateSteps = 5

// Option configures a Materializer.
type Option func(*materializer)

// WithProgress registers fn to be called after each finished step.
func WithProgress(fn func(step string)) Option {
	return func(m *materializer) {
		if fn != nil {
			m.progress = fn
		}
	}
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	registry *hardware.Registry
	deployer template.Deployer
	version  string
	logger   *slog.Logger
	progress func(step string)
}

// NewMaterializer creates a Materializer. version is written into the
// generated file headers.
func NewMaterializer(registry *hardware.Registry, deployer template.Deployer, version string, logger *slog.Logger, opts ...Option) Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &materializer{
		registry: registry,
		deployer: deployer,
		version:  version,
		logger:   logger,
		progress: func(string) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create runs the creation steps in order; the first failure aborts the rest.
func (m *materializer) Create(ctx context.Context, spec Spec) (*Result, error) {
	spec.Name = NormalizeName(spec.Name)
	if err := ValidateName(spec.Name); err != nil {
		return nil, err
	}
	if !spec.Target.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, spec.Target)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.logger.Info("creating HDL project",
		"name", spec.Name,
		"target", spec.Target.String(),
		"devBoard", devBoardLabel(spec.DevBoard),
	)

	dir := spec.Dir()
	result := &Result{Dir: dir}

	// Step 1: Preflight and project directory
	if err := m.createProjectDir(dir); err != nil {
		return nil, err
	}

	// Step 2: resources/ only when something will be written into it
	resources := m.registry.ProjectResources(spec.Target, spec.DevBoard)
	if len(resources) > 0 {
		if err := os.Mkdir(filepath.Join(dir, defs.ResourcesDir), defs.DirPerm); err != nil {
			return result, &FileError{Path: defs.ResourcesDir, Err: err}
		}
		result.CreatedDirs = append(result.CreatedDirs, defs.ResourcesDir)
	}
	m.progress("create project directory")

	tmplCtx := template.NewTemplateContext(
		template.WithProject(spec.Name),
		template.WithTarget(spec.Target),
		template.WithDevBoard(spec.DevBoard),
		template.WithVersion(m.version),
	)

	// Step 3: Topfile
	if err := ctx.Err(); err != nil {
		return result, err
	}
	topfile := spec.Name + defs.VerilogExt
	topfileTmpl := template.TopfileTemplate(m.deployer.Renderer(), spec.Target.String())
	if err := m.deployTemplate(dir, topfileTmpl, topfile, tmplCtx, result); err != nil {
		return result, err
	}
	m.progress("write " + topfile)

	// Step 4: Synthesis script
	if err := ctx.Err(); err != nil {
		return result, err
	}
	script := spec.Name + defs.YosysScriptExt
	if err := m.deployTemplate(dir, template.SynthScriptTemplate, script, tmplCtx, result); err != nil {
		return result, err
	}
	m.progress("write " + script)

	// Step 5: Resources
	if err := ctx.Err(); err != nil {
		return result, err
	}
	for _, res := range resources {
		rel := path.Join(defs.ResourcesDir, res.Filename)
		if err := m.deployer.DeployFile(dir, rel, res.Bytes); err != nil {
			return result, &FileError{Path: rel, Err: err}
		}
		result.CreatedFiles = append(result.CreatedFiles, rel)
	}
	m.progress("copy resources")

	// Step 6: Makefile
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := m.deployTemplate(dir, template.MakefileTemplate, defs.Makefile, tmplCtx, result); err != nil {
		return result, err
	}
	m.progress("write " + defs.Makefile)

	m.logger.Info("project created",
		"dir", dir,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}

// createProjectDir fails if dir exists and otherwise creates it.
func (m *materializer) createProjectDir(dir string) error {
	if _, err := os.Lstat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, dir)
	} else if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s: %v", ErrInsufficientPermission, dir, err)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := os.Mkdir(dir, defs.DirPerm); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return fmt.Errorf("%w: %s", ErrDirectoryExists, dir)
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("%w: %s: %v", ErrInsufficientPermission, dir, err)
		}
		return fmt.Errorf("create project directory %s: %w", dir, err)
	}
	return nil
}

// deployTemplate renders one template into the project and records it.
func (m *materializer) deployTemplate(dir, tmplName, rel string, tmplCtx *template.TemplateContext, result *Result) error {
	if err := m.deployer.DeployTemplate(dir, tmplName, rel, tmplCtx); err != nil {
		return &FileError{Path: rel, Err: err}
	}
	result.CreatedFiles = append(result.CreatedFiles, rel)
	return nil
}

func devBoardLabel(b hardware.DevBoard) string {
	if !b.Valid() {
		return "none"
	}
	return b.String()
}

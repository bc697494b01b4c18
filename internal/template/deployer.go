package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hdlman/hdlman/internal/defs"
)

// Deployer writes rendered templates and verbatim payloads into a project
// directory. It never overwrites an existing file.
type Deployer interface {
	// DeployTemplate renders templateName with tmplCtx and writes the result
	// to relPath under projectRoot.
	DeployTemplate(projectRoot, templateName, relPath string, tmplCtx *TemplateContext) error

	// DeployFile writes content verbatim to relPath under projectRoot.
	DeployFile(projectRoot, relPath string, content []byte) error

	// Renderer returns the renderer used for DeployTemplate.
	Renderer() Renderer
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	renderer Renderer
}

// NewDeployer creates a Deployer that renders templates with the given Renderer.
func NewDeployer(renderer Renderer) Deployer {
	return &deployer{renderer: renderer}
}

// Renderer returns the renderer used for DeployTemplate.
func (d *deployer) Renderer() Renderer {
	return d.renderer
}

// DeployTemplate renders and writes a single template.
func (d *deployer) DeployTemplate(projectRoot, templateName, relPath string, tmplCtx *TemplateContext) error {
	if tmplCtx == nil {
		return fmt.Errorf("template render %q: %w: nil context", templateName, ErrMissingTemplateKey)
	}
	content, err := d.renderer.Render(templateName, tmplCtx)
	if err != nil {
		return fmt.Errorf("template render %q: %w", templateName, err)
	}
	return d.DeployFile(projectRoot, relPath, content)
}

// DeployFile writes content to relPath, creating parent directories as
// needed. The destination must not exist.
func (d *deployer) DeployFile(projectRoot, relPath string, content []byte) error {
	projectRoot = filepath.Clean(projectRoot)

	if err := validateDeployPath(projectRoot, relPath); err != nil {
		return err
	}

	destPath := filepath.Join(projectRoot, filepath.FromSlash(relPath))

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, defs.DirPerm); err != nil {
		return fmt.Errorf("template deploy mkdir %q: %w", destDir, err)
	}

	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, destPath)
		}
		return fmt.Errorf("template deploy create %q: %w", destPath, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("template deploy write %q: %w", destPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("template deploy close %q: %w", destPath, err)
	}

	return nil
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	if relPath == "" {
		return fmt.Errorf("%w: empty path", ErrPathTraversal)
	}

	// Clean and normalize
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	// Reject absolute paths
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	// Reject path traversal components
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	// The resolved path must be strictly under projectRoot.
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}

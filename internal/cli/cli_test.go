package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/hdlman/hdlman/internal/config"
	"github.com/hdlman/hdlman/internal/hardware"
	"github.com/hdlman/hdlman/internal/template"
	"github.com/hdlman/hdlman/internal/ui"
)

// newTestDeps installs headless, colorless dependencies with cfg for the
// duration of the test.
func newTestDeps(t *testing.T, cfg *config.Config) *Dependencies {
	t.Helper()

	reg, err := hardware.Default()
	if err != nil {
		t.Fatalf("hardware.Default() error = %v", err)
	}
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error = %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	d := &Dependencies{
		Config:   cfg,
		Registry: reg,
		Deployer: template.NewDeployer(template.NewRenderer(fsys)),
		Headless: hm,
		Theme:    &ui.Theme{NoColor: true},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogLevel: new(slog.LevelVar),
	}

	old := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(old) })
	return d
}

// executeCmd runs a fresh command tree with args.
func executeCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

package template

import (
	"testing"

	"github.com/hdlman/hdlman/internal/hardware"
)

func TestNewTemplateContext_Defaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.BuildDir != "build" {
		t.Errorf("BuildDir = %q, want %q", ctx.BuildDir, "build")
	}
	if ctx.Version != "dev" {
		t.Errorf("Version = %q, want %q", ctx.Version, "dev")
	}
	if ctx.DevBoard != "" || ctx.ConstraintFlag != "" || ctx.Programmer != "" {
		t.Errorf("board fields should be empty by default: %+v", ctx)
	}
}

func TestNewTemplateContext_WithOptions(t *testing.T) {
	tests := []struct {
		name    string
		opt     ContextOption
		checkFn func(t *testing.T, ctx *TemplateContext)
	}{
		{
			name: "WithProject",
			opt:  WithProject("blinky"),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.ProjectName != "blinky" || ctx.TopModule != "blinky" {
					t.Errorf("got ProjectName=%q TopModule=%q", ctx.ProjectName, ctx.TopModule)
				}
			},
		},
		{
			name: "WithProject_sanitizes_module",
			opt:  WithProject("my-blinky"),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.ProjectName != "my-blinky" {
					t.Errorf("ProjectName = %q", ctx.ProjectName)
				}
				if ctx.TopModule != "my_blinky" {
					t.Errorf("TopModule = %q, want %q", ctx.TopModule, "my_blinky")
				}
			},
		},
		{
			name: "WithTarget",
			opt:  WithTarget(hardware.TargetECP5_85K),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.Target != "ecp5-85k" {
					t.Errorf("Target = %q", ctx.Target)
				}
				if ctx.Synth != "synth_ecp5" {
					t.Errorf("Synth = %q", ctx.Synth)
				}
				if ctx.PlaceAndRoute != "nextpnr-ecp5 --85k" {
					t.Errorf("PlaceAndRoute = %q", ctx.PlaceAndRoute)
				}
				if ctx.Pack != "ecppack" {
					t.Errorf("Pack = %q", ctx.Pack)
				}
			},
		},
		{
			name: "WithDevBoard",
			opt:  WithDevBoard(hardware.DevBoardULX3S),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.DevBoard != "ulx3s" {
					t.Errorf("DevBoard = %q", ctx.DevBoard)
				}
				if ctx.ConstraintFlag != "--lpf resources/ulx3s_v20.lpf" {
					t.Errorf("ConstraintFlag = %q", ctx.ConstraintFlag)
				}
				if ctx.Programmer != "fujprog" {
					t.Errorf("Programmer = %q", ctx.Programmer)
				}
			},
		},
		{
			name: "WithDevBoard_none",
			opt:  WithDevBoard(hardware.NoDevBoard),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.DevBoard != "" || ctx.ConstraintFlag != "" || ctx.Programmer != "" {
					t.Errorf("board fields should stay empty: %+v", ctx)
				}
			},
		},
		{
			name: "WithVersion",
			opt:  WithVersion("v1.2.3"),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.Version != "v1.2.3" {
					t.Errorf("Version = %q", ctx.Version)
				}
			},
		},
		{
			name: "WithVersion_empty_keeps_default",
			opt:  WithVersion(""),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.Version != "dev" {
					t.Errorf("Version = %q, want %q", ctx.Version, "dev")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFn(t, NewTemplateContext(tt.opt))
		})
	}
}

func TestVerilogIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blinky", "blinky"},
		{"my-project", "my_project"},
		{"led_ctrl2", "led_ctrl2"},
		{"2fast", "_2fast"},
		{"$top", "_$top"},
		{"a.b c", "a_b_c"},
		{"ünicode", "_nicode"},
		{"", "top"},
		{"module", "module_top"},
		{"wire", "wire_top"},
		{"always", "always_top"},
		{"Module", "Module"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := VerilogIdentifier(tt.in); got != tt.want {
				t.Errorf("VerilogIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package template

import (
	"strings"

	"github.com/hdlman/hdlman/internal/defs"
	"github.com/hdlman/hdlman/internal/hardware"
)

// TemplateContext provides data for rendering the artifacts of one project.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string // directory name and build stem
	TopModule   string // ProjectName as a legal Verilog identifier

	// Target toolchain
	Target        string // catalog identifier, e.g. "ecp5-85k"
	Synth         string // yosys synthesis command
	SynthFlags    string // extra flags for Synth, may be empty
	PlaceAndRoute string // place-and-route invocation without --json
	Pack          string // bitstream packer

	// Dev-board toolchain; all empty when no board was chosen.
	DevBoard       string
	ConstraintFlag string // e.g. "--lpf resources/ulx3s_v20.lpf"
	Programmer     string

	// Meta
	BuildDir string // toolchain output directory inside the project
	Version  string // hdlman version that generated the project
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults, then applies
// any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		BuildDir: defs.BuildDir,
		Version:  "dev",
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithProject sets the project name and the derived top module name.
func WithProject(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.TopModule = VerilogIdentifier(name)
	}
}

// WithTarget copies the target's toolchain fragments into the context.
func WithTarget(t hardware.Target) ContextOption {
	return func(c *TemplateContext) {
		c.Target = t.String()
		c.Synth = hardware.ToolchainFragment(t)
		c.SynthFlags = t.SynthFlags()
		c.PlaceAndRoute = t.PlaceAndRoute()
		c.Pack = t.PackCommand()
	}
}

// WithDevBoard copies the board's toolchain fragments into the context.
// hardware.NoDevBoard leaves the board fields empty.
func WithDevBoard(b hardware.DevBoard) ContextOption {
	return func(c *TemplateContext) {
		if !b.Valid() {
			c.DevBoard, c.ConstraintFlag, c.Programmer = "", "", ""
			return
		}
		c.DevBoard = b.String()
		c.ConstraintFlag = hardware.ToolchainFragment(b)
		c.Programmer = b.Programmer()
	}
}

// WithVersion sets the hdlman version.
func WithVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		if version != "" {
			c.Version = version
		}
	}
}

// verilogKeywords holds the IEEE 1364-2005 reserved words.
var verilogKeywords = map[string]bool{}

func init() {
	for _, kw := range strings.Fields(`
		always and assign automatic begin buf bufif0 bufif1 case casex casez
		cell cmos config deassign default defparam design disable edge else
		end endcase endconfig endfunction endgenerate endmodule endprimitive
		endspecify endtable endtask event for force forever fork function
		generate genvar highz0 highz1 if ifnone incdir include initial inout
		input instance integer join large liblist library localparam
		macromodule medium module nand negedge nmos nor noshowcancelled not
		notif0 notif1 or output parameter pmos posedge primitive pull0 pull1
		pulldown pullup pulsestyle_ondetect pulsestyle_onevent rcmos real
		realtime reg release repeat rnmos rpmos rtran rtranif0 rtranif1
		scalared showcancelled signed small specify specparam strong0
		strong1 supply0 supply1 table task time tran tranif0 tranif1 tri
		tri0 tri1 triand trior trireg unsigned use uwire vectored wait wand
		weak0 weak1 while wire wor xnor xor`) {
		verilogKeywords[kw] = true
	}
}

// VerilogIdentifier maps name onto a simple Verilog identifier: letters,
// digits, '_' and '$', not starting with a digit or '$'. Other runes become
// '_'. An empty name yields "top"; a reserved word gets a "_top" suffix.
func VerilogIdentifier(name string) string {
	if name == "" {
		return "top"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case (r >= '0' && r <= '9') || r == '$':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if verilogKeywords[id] {
		id += "_top"
	}
	return id
}

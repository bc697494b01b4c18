package hardware

import (
	"bytes"
	"path"

	"github.com/hdlman/hdlman/internal/defs"
)

// Component is implemented by Target and DevBoard only.
type Component interface {
	String() string
	Kind() Kind
	Valid() bool

	resourceNames() []string
	component()
}

var (
	_ Component = Target(0)
	_ Component = DevBoard(0)
)

// Resource is a named payload bundled with the binary that is copied into
// generated projects.
type Resource struct {
	Filename string
	Bytes    []byte
}

// ToolchainFragment returns the snippet a component contributes to
// generated build scripts: the synthesis command for a Target, the
// constraint-file flag for a DevBoard. Values outside the catalog yield "".
func ToolchainFragment(c Component) string {
	switch v := c.(type) {
	case Target:
		return v.SynthCommand()
	case DevBoard:
		if !v.Valid() {
			return ""
		}
		return devBoardTable[v].constraintFlag + " " + path.Join(defs.ResourcesDir, v.ConstraintFile())
	}
	return ""
}

// HasResources reports whether c declares at least one bundled file.
func HasResources(c Component) bool {
	return len(c.resourceNames()) > 0
}

// AssociatedResources returns the files c requires in a generated project,
// in declaration order. The result is empty, never an error, when c has
// none. Payloads are copies; callers may modify them.
func (r *Registry) AssociatedResources(c Component) []Resource {
	names := c.resourceNames()
	out := make([]Resource, 0, len(names))
	for _, name := range names {
		out = append(out, Resource{
			Filename: name,
			Bytes:    bytes.Clone(r.assets[name]),
		})
	}
	return out
}

// ProjectResources returns the files a project for target t and board b
// needs. A file named by both components is returned once, with the
// target's payload. b may be NoDevBoard.
func (r *Registry) ProjectResources(t Target, b DevBoard) []Resource {
	var out []Resource
	seen := make(map[string]bool)
	for _, c := range []Component{t, b} {
		if !HasResources(c) {
			continue
		}
		for _, res := range r.AssociatedResources(c) {
			if seen[res.Filename] {
				continue
			}
			seen[res.Filename] = true
			out = append(out, res)
		}
	}
	return out
}

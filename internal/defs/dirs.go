package defs

// Directory names inside a generated project.
const (
	// ResourcesDir holds board and target specific files such as pin constraints.
	ResourcesDir = "resources"

	// BuildDir is where the generated Makefile places toolchain outputs.
	BuildDir = "build"
)

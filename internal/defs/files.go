package defs

// Common file names used across the project.
const (
	// ConfigFileName is the per-user defaults file, looked up in the home directory.
	ConfigFileName = ".hdlman.yaml"

	// Makefile is the build-orchestration file written into every project.
	Makefile = "Makefile"

	// VerilogExt is the extension of the generated topfile.
	VerilogExt = ".v"

	// YosysScriptExt is the extension of the generated synthesis script.
	YosysScriptExt = ".ys"
)

// Permissions for generated directories and files.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

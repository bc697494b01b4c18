package template

import "path"

// Template names inside the embedded filesystem.
const (
	SynthScriptTemplate = "synth.ys.tmpl"
	MakefileTemplate    = "Makefile.tmpl"

	topfileDir     = "topfile"
	defaultTopfile = "default"
	topfileTmplExt = ".v.tmpl"
)

// TopfileTemplate returns the topfile template to use for target: a
// target-specific "topfile/<target>.v.tmpl" when the renderer has one,
// otherwise "topfile/default.v.tmpl".
func TopfileTemplate(r Renderer, target string) string {
	if target != "" {
		specific := path.Join(topfileDir, target+topfileTmplExt)
		if r.Exists(specific) {
			return specific
		}
	}
	return path.Join(topfileDir, defaultTopfile+topfileTmplExt)
}

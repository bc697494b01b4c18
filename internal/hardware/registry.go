package hardware

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed resources
var embeddedAssets embed.FS

// Registry binds the static catalog to the resource payloads it references.
type Registry struct {
	assets map[string][]byte
}

// NewRegistry loads every resource named by the catalog from fsys.
// A declared resource without a file in fsys is an error.
func NewRegistry(fsys fs.FS) (*Registry, error) {
	r := &Registry{assets: make(map[string][]byte)}

	var names []string
	for _, t := range Targets() {
		names = append(names, t.resourceNames()...)
	}
	for _, b := range DevBoards() {
		names = append(names, b.resourceNames()...)
	}

	for _, name := range names {
		if _, ok := r.assets[name]; ok {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, name, err)
		}
		r.assets[name] = data
	}
	return r, nil
}

// EmbeddedAssets returns the resource files compiled into the binary.
func EmbeddedAssets() (fs.FS, error) {
	return fs.Sub(embeddedAssets, "resources")
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry backed by the embedded assets.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		fsys, err := EmbeddedAssets()
		if err != nil {
			defaultErr = fmt.Errorf("open embedded assets: %w", err)
			return
		}
		defaultRegistry, defaultErr = NewRegistry(fsys)
	})
	return defaultRegistry, defaultErr
}

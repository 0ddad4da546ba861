package device

import (
	"fmt"
	"path/filepath"
	"strings"
)

// devLinksKey is the udev property listing every symlink pointing at a
// device node, as a space-separated list of absolute paths.
const devLinksKey = "DEVLINKS"

// MetadataProvider exposes udev-style properties for a device node.
type MetadataProvider interface {
	// Property returns the value of key for the device at path. It returns
	// an error wrapping ErrMetadataUnavailable when the provider has no
	// record for the device or no value for the key.
	Property(path, key string) (string, error)
}

// Resolver resolves the canonical kernel path of a device node and enumerates
// its by-id aliases through a metadata provider capability.
type Resolver struct {
	provider MetadataProvider
}

// NewResolver creates a resolver backed by provider. A nil provider is valid
// and yields no aliases.
func NewResolver(provider MetadataProvider) *Resolver {
	return &Resolver{provider: provider}
}

// Canonicalize resolves symlinks and relative components to the absolute real
// path of the device node.
func (r *Resolver) Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResolution, path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResolution, path, err)
	}
	return abs, nil
}

// Aliases returns the by-id alias names of the device at path, stripped of
// the directory prefix. A device with no metadata record yields an empty
// list, never an error.
func (r *Resolver) Aliases(path string) []string {
	if r.provider == nil {
		return nil
	}
	links, err := r.provider.Property(path, devLinksKey)
	if err != nil {
		return nil
	}
	var names []string
	for _, link := range strings.Fields(links) {
		if strings.HasPrefix(link, ByIDDir+"/") {
			names = append(names, strings.TrimPrefix(link, ByIDDir+"/"))
		}
	}
	return names
}

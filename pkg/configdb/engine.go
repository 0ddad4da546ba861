package configdb

import "errors"

// Store error taxonomy. Every configdb failure wraps one of these sentinels.
var (
	// ErrNotLoaded is returned when an operation runs against a store that
	// is not open.
	ErrNotLoaded = errors.New("configuration store not loaded")

	// ErrNoMatch is returned when a path expression matches nothing.
	ErrNoMatch = errors.New("path expression matched nothing")

	// ErrExists is returned by Set when the path already holds an object.
	ErrExists = errors.New("path already holds an object")
)

// Engine is the hierarchical store a DB facade sits on. Path expressions are
// slash-separated segment paths ("storage/pools/tank") evaluated over the
// loaded tree. Documents are opaque byte slices; the facade layers object
// marshaling on top.
type Engine interface {
	// Get returns the document at path, or ErrNoMatch.
	Get(path string) ([]byte, error)

	// List returns every document whose path starts with prefix, keyed by
	// full path. An empty result is not an error.
	List(prefix string) (map[string][]byte, error)

	// Set stores a new document at path; ErrExists if the path is taken.
	Set(path string, data []byte) error

	// Replace stores the document at path, creating or overwriting.
	Replace(path string, data []byte) error

	// Update overwrites an existing document at path, or ErrNoMatch.
	Update(path string, data []byte) error

	// Delete removes the document at path, or ErrNoMatch.
	Delete(path string) error

	// Close releases the underlying storage.
	Close() error
}

package configdb

import (
	"fmt"
	"path/filepath"
	"strings"

	bolt "go.etcd.io/bbolt"
)

var bucketConfig = []byte("config")

// BoltEngine implements Engine on a BoltDB file. The whole tree is read into
// memory when the engine opens, so reads never touch disk; mutations write
// through to the database before updating the in-memory tree.
type BoltEngine struct {
	db   *bolt.DB
	tree map[string][]byte
}

// NewBoltEngine opens (or creates) the configuration database under dataDir
// and loads the tree.
func NewBoltEngine(dataDir string) (*BoltEngine, error) {
	dbPath := filepath.Join(dataDir, "quarry.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	tree := make(map[string][]byte)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketConfig)
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketConfig, err)
		}
		return b.ForEach(func(k, v []byte) error {
			// Copies are required; bolt slices are only valid inside
			// the transaction.
			data := make([]byte, len(v))
			copy(data, v)
			tree[string(k)] = data
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltEngine{db: db, tree: tree}, nil
}

// Close closes the database. The engine must not be used afterwards.
func (e *BoltEngine) Close() error {
	e.tree = nil
	return e.db.Close()
}

func (e *BoltEngine) loaded() bool {
	return e.tree != nil
}

// Get returns the document at path.
func (e *BoltEngine) Get(path string) ([]byte, error) {
	if !e.loaded() {
		return nil, ErrNotLoaded
	}
	data, ok := e.tree[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return data, nil
}

// List returns every document under prefix keyed by full path.
func (e *BoltEngine) List(prefix string) (map[string][]byte, error) {
	if !e.loaded() {
		return nil, ErrNotLoaded
	}
	result := make(map[string][]byte)
	for path, data := range e.tree {
		if strings.HasPrefix(path, prefix) {
			result[path] = data
		}
	}
	return result, nil
}

// Set stores a new document at path.
func (e *BoltEngine) Set(path string, data []byte) error {
	if !e.loaded() {
		return ErrNotLoaded
	}
	if _, ok := e.tree[path]; ok {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return e.put(path, data)
}

// Replace stores the document at path, creating or overwriting.
func (e *BoltEngine) Replace(path string, data []byte) error {
	if !e.loaded() {
		return ErrNotLoaded
	}
	return e.put(path, data)
}

// Update overwrites an existing document at path.
func (e *BoltEngine) Update(path string, data []byte) error {
	if !e.loaded() {
		return ErrNotLoaded
	}
	if _, ok := e.tree[path]; !ok {
		return fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return e.put(path, data)
}

// Delete removes the document at path.
func (e *BoltEngine) Delete(path string) error {
	if !e.loaded() {
		return ErrNotLoaded
	}
	if _, ok := e.tree[path]; !ok {
		return fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	err := e.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConfig).Delete([]byte(path))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	delete(e.tree, path)
	return nil
}

func (e *BoltEngine) put(path string, data []byte) error {
	err := e.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConfig).Put([]byte(path), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", path, err)
	}
	e.tree[path] = data
	return nil
}

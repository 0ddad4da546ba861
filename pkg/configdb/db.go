package configdb

import (
	"encoding/json"
	"fmt"

	"github.com/quarryos/quarry/pkg/metrics"
)

// DB translates between structured configuration objects and the raw
// documents held by an Engine. An application constructs one DB at startup
// and passes the handle to components needing store access; there is no
// process-wide instance.
//
// The facade provides no locking. Callers invoking mutators concurrently
// must serialize externally.
type DB struct {
	engine Engine
}

// New returns a DB over engine. The engine must already be loaded.
func New(engine Engine) *DB {
	return &DB{engine: engine}
}

// Get unmarshals the object at path into out.
func (db *DB) Get(path string, out any) error {
	if err := db.ready("get"); err != nil {
		return err
	}
	data, err := db.engine.Get(path)
	if err != nil {
		metrics.ConfigOperationErrors.WithLabelValues("get").Inc()
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		metrics.ConfigOperationErrors.WithLabelValues("get").Inc()
		return fmt.Errorf("failed to unmarshal object at %s: %w", path, err)
	}
	return nil
}

// List returns every raw document under prefix keyed by full path. Callers
// unmarshal the values into the object type stored at that subtree.
func (db *DB) List(prefix string) (map[string]json.RawMessage, error) {
	if err := db.ready("list"); err != nil {
		return nil, err
	}
	docs, err := db.engine.List(prefix)
	if err != nil {
		metrics.ConfigOperationErrors.WithLabelValues("list").Inc()
		return nil, err
	}
	result := make(map[string]json.RawMessage, len(docs))
	for path, data := range docs {
		result[path] = json.RawMessage(data)
	}
	return result, nil
}

// Set stores a new object at path.
func (db *DB) Set(path string, obj any) error {
	return db.mutate("set", path, obj, func(data []byte) error {
		return db.engine.Set(path, data)
	})
}

// Replace stores the object at path, creating or overwriting.
func (db *DB) Replace(path string, obj any) error {
	return db.mutate("replace", path, obj, func(data []byte) error {
		return db.engine.Replace(path, data)
	})
}

// Update overwrites an existing object at path.
func (db *DB) Update(path string, obj any) error {
	return db.mutate("update", path, obj, func(data []byte) error {
		return db.engine.Update(path, data)
	})
}

// Delete removes the object at path.
func (db *DB) Delete(path string) error {
	if err := db.ready("delete"); err != nil {
		return err
	}
	if err := db.engine.Delete(path); err != nil {
		metrics.ConfigOperationErrors.WithLabelValues("delete").Inc()
		return err
	}
	return nil
}

func (db *DB) mutate(op, path string, obj any, apply func([]byte) error) error {
	if err := db.ready(op); err != nil {
		return err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		metrics.ConfigOperationErrors.WithLabelValues(op).Inc()
		return fmt.Errorf("failed to marshal object for %s: %w", path, err)
	}
	if err := apply(data); err != nil {
		metrics.ConfigOperationErrors.WithLabelValues(op).Inc()
		return err
	}
	return nil
}

func (db *DB) ready(op string) error {
	if db == nil || db.engine == nil {
		return ErrNotLoaded
	}
	metrics.ConfigOperationsTotal.WithLabelValues(op).Inc()
	return nil
}

/*
Package configdb provides the hierarchical configuration store for quarry.

Configuration objects live at slash-separated paths ("storage/pools/tank")
inside a loaded tree. The DB facade marshals structured objects to and from
JSON documents; the Engine interface is the store contract, with a
BoltDB-backed implementation that mirrors the whole tree in memory.

# Architecture

	┌─────────────────────── pkg/configdb ─────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │                 DB facade                   │          │
	│  │  Get / List / Set / Replace / Update /      │          │
	│  │  Delete over typed objects (JSON)           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Engine (interface)               │          │
	│  │  raw documents by path expression           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │               BoltEngine                    │          │
	│  │  in-memory loaded tree, write-through       │          │
	│  │  persistence to a bbolt file                │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Operation semantics

  - Get: fails with ErrNoMatch when the path holds nothing
  - Set: creates; fails with ErrExists on collision
  - Replace: creates or overwrites
  - Update: overwrites; fails with ErrNoMatch when the path holds nothing
  - Delete: removes; fails with ErrNoMatch when the path holds nothing

Every operation fails with ErrNotLoaded when the store is not open. Nothing
is retried internally.

# Usage

	engine, err := configdb.NewBoltEngine(dataDir)
	if err != nil {
		return err
	}
	defer engine.Close()

	db := configdb.New(engine)

	pool := types.StoragePool{Name: "tank", Device: "/dev/disk/by-id/ata-..."}
	if err := db.Set("storage/pools/tank", &pool); err != nil {
		return err
	}

	var loaded types.StoragePool
	if err := db.Get("storage/pools/tank", &loaded); err != nil {
		return err
	}

# Concurrency

The facade holds no locks and provides no transactions or rollback. Reads are
served from the loaded tree; concurrent readers are safe only in the absence
of writers. Callers must serialize mutating operations externally.
*/
package configdb

package metrics

import (
	"encoding/json"
	"time"

	"github.com/quarryos/quarry/pkg/types"
)

// ObjectLister is the slice of the configuration store the collector needs.
// *configdb.DB satisfies it; the interface lives here to keep the store free
// to count its own operations through this package.
type ObjectLister interface {
	List(prefix string) (map[string]json.RawMessage, error)
}

// Collector samples object counts from the configuration store
type Collector struct {
	store  ObjectLister
	stopCh chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(store ObjectLister) *Collector {
	return &Collector{
		store:  store,
		stopCh: make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	c.collectPoolMetrics()
	c.collectMountMetrics()
}

func (c *Collector) collectPoolMetrics() {
	pools, err := c.store.List(types.PoolPathPrefix)
	if err != nil {
		return
	}

	PoolsTotal.Set(float64(len(pools)))
}

func (c *Collector) collectMountMetrics() {
	mounts, err := c.store.List(types.MountPathPrefix)
	if err != nil {
		return
	}

	MountsTotal.Set(float64(len(mounts)))
}

package types

import (
	"time"
)

// StoragePool binds a named pool to a block device. Device holds the stable
// by-id path produced by pkg/device so the binding survives kernel device
// renames across reboots.
type StoragePool struct {
	ID        string    `json:"id" yaml:"id,omitempty"`
	Name      string    `json:"name" yaml:"name"`
	Device    string    `json:"device" yaml:"device"`
	CreatedAt time.Time `json:"created_at" yaml:"createdAt,omitempty"`
}

// MountEntry describes a filesystem mount persisted in the configuration
// store.
type MountEntry struct {
	Device  string   `json:"device" yaml:"device"`
	Dir     string   `json:"dir" yaml:"dir"`
	Type    string   `json:"type" yaml:"type"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// ConfigPaths for the objects quarry persists.
const (
	PoolPathPrefix  = "storage/pools/"
	MountPathPrefix = "storage/mounts/"
)

// PoolPath returns the configuration path for a pool name.
func PoolPath(name string) string {
	return PoolPathPrefix + name
}

// MountPath returns the configuration path for a mount directory.
func MountPath(dir string) string {
	return MountPathPrefix + dir
}

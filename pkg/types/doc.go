/*
Package types defines the structured configuration objects quarry persists.

These are the objects the configuration store holds: storage pools bound to
block devices and filesystem mount entries. Device references inside them are
stable by-id paths produced by pkg/device, never raw kernel names, so a pool
definition keeps pointing at the same disk when the kernel reorders probe
order across reboots.

All types are designed to be:
  - Serializable (JSON for the store, YAML for apply manifests)
  - Self-documenting (clear field names and comments)

Path helpers (PoolPath, MountPath) give every object kind a fixed subtree in
the configuration hierarchy.
*/
package types

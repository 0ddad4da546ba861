/*
Package device resolves stable identities for block devices.

The package answers two questions about a device node: what is its canonical
kernel path, and what is the most stable name to persist for it. Kernel names
like /dev/sdb are assigned in probe order and can move between disks across
reboots; a configuration that stores them can silently end up pointing at the
wrong disk. udev publishes identity-derived symlinks under /dev/disk/by-id
that survive renames, and this package deterministically selects the best one.

# Architecture

	┌─────────────────────── pkg/device ───────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            BlockDevice handle               │          │
	│  │  - DeviceFile / CanonicalDeviceFile         │          │
	│  │  - DeviceFileByID (cached)                  │          │
	│  │  - DeviceNumber, Description                │          │
	│  │  - geometry accessors (after probe)         │          │
	│  └─────────┬──────────────────┬───────────────┘          │
	│            │                  │                            │
	│  ┌─────────▼────────┐  ┌─────▼──────────────┐           │
	│  │     Resolver      │  │   SelectBest        │           │
	│  │  - Canonicalize   │  │  - class ranking    │           │
	│  │  - Aliases        │  │  - natural order    │           │
	│  └─────────┬────────┘  └────────────────────┘           │
	│            │                                               │
	│  ┌─────────▼────────────────────────────────┐            │
	│  │        MetadataProvider (capability)      │            │
	│  │  UdevRunProvider: /run/udev/data records  │            │
	│  └──────────────────────────────────────────┘            │
	└────────────────────────────────────────────────────────┘

# Alias selection

Aliases are ranked by the first character of their name: 'a' (ATA identity)
before 'w' (world-wide name) before 's' (SCSI/bus) before everything else.
Ties within a rank are broken by natural string order, so numbered aliases
compare numerically ("ata-disk-2" before "ata-disk-10"). The winner is
returned as an absolute /dev/disk/by-id path.

# Usage

	provider := device.NewUdevRunProvider("")
	resolver := device.NewResolver(provider)

	d := device.New("/dev/sda", resolver)
	if err := d.AssertExists(); err != nil {
		return err
	}

	if byID, ok := d.DeviceFileByID(); ok {
		// byID is stable across reboots; persist this.
	}

	if err := d.ProbeGeometry(device.UnixProber{}); err == nil {
		size, _ := d.Size()
		_ = size
	}

# Concurrency

Handles are synchronous and single-threaded; every call blocks on the
underlying filesystem or metadata read. Internal caches are not locked.
Callers needing concurrent access to one handle must serialize externally.

# Integration Points

  - pkg/configdb: pool and mount objects persist the stable by-id path
  - cmd/quarry: `device inspect`, `device list`, `pool create`
*/
package device

package device

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/quarryos/quarry/pkg/metrics"
)

// DevDir is the directory holding kernel device nodes.
const DevDir = "/dev"

// BlockDevice is a handle on a block device node. The canonical path and the
// preferred by-id alias are resolved lazily and cached for the lifetime of
// the handle (snapshot semantics: later symlink changes do not move it).
//
// A handle is not safe for concurrent use. A first-resolution race at worst
// repeats an idempotent read and overwrites the cache with an equal value.
type BlockDevice struct {
	rawPath   string
	canonical string
	byID      string
	resolver  *Resolver
	sysfsRoot string
	geometry  *Geometry
}

// New returns a handle for the device node at path. A by-id path is
// canonicalized immediately so the handle's device file is the kernel node;
// if resolution fails the supplied path is kept as-is.
func New(path string, resolver *Resolver) *BlockDevice {
	d := &BlockDevice{
		rawPath:   path,
		resolver:  resolver,
		sysfsRoot: DefaultSysfsRoot,
	}
	if strings.HasPrefix(path, ByIDDir+"/") {
		if canonical, err := resolver.Canonicalize(path); err == nil {
			d.rawPath = canonical
			d.canonical = canonical
		}
	}
	return d
}

// Exists reports whether the device file currently resolves to a
// block-special node. A regular file at the path is not a device.
func (d *BlockDevice) Exists() bool {
	var st unix.Stat_t
	if err := unix.Stat(d.rawPath, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFBLK
}

// AssertExists fails with ErrDeviceNotFound when the device file is not a
// block-special node.
func (d *BlockDevice) AssertExists() error {
	if !d.Exists() {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, d.rawPath)
	}
	return nil
}

// DeviceFile returns the device path as constructed.
func (d *BlockDevice) DeviceFile() string {
	return d.rawPath
}

// CanonicalDeviceFile resolves and caches the canonical kernel device path.
func (d *BlockDevice) CanonicalDeviceFile() (string, error) {
	if d.canonical != "" {
		return d.canonical, nil
	}
	canonical, err := d.resolver.Canonicalize(d.rawPath)
	if err != nil {
		return "", err
	}
	d.canonical = canonical
	return canonical, nil
}

// DeviceFileByID returns the preferred by-id alias path for the device.
// The answer is cached; a device without aliases caches the plain device
// file so the metadata provider is queried exactly once per handle. ok is
// false when the cached value is not a genuine by-id path.
func (d *BlockDevice) DeviceFileByID() (string, bool) {
	if d.byID == "" {
		metrics.DeviceResolutionsTotal.Inc()
		if best, ok := SelectBest(d.resolver.Aliases(d.rawPath)); ok {
			d.byID = best
		} else {
			metrics.DevicesWithoutAlias.Inc()
			d.byID = d.rawPath
		}
	}
	return d.byID, strings.HasPrefix(d.byID, ByIDDir+"/")
}

// HasDeviceFileByID reports whether the device exposes a by-id alias.
func (d *BlockDevice) HasDeviceFileByID() bool {
	_, ok := d.DeviceFileByID()
	return ok
}

// DeviceName returns the device file name with the leading "/dev/" stripped.
// The strip is a literal prefix removal, not path-aware: an unresolved by-id
// path yields "disk/by-id/<name>".
func (d *BlockDevice) DeviceName(canonical bool) (string, error) {
	path := d.rawPath
	if canonical {
		var err error
		path, err = d.CanonicalDeviceFile()
		if err != nil {
			return "", err
		}
	}
	return strings.TrimPrefix(path, DevDir+"/"), nil
}

// DeviceNumber returns the kernel major:minor numbers recorded for the
// canonical device name.
func (d *BlockDevice) DeviceNumber() (major, minor uint32, err error) {
	name, err := d.DeviceName(true)
	if err != nil {
		return 0, 0, err
	}
	return readDeviceNumber(d.sysfsRoot, name)
}

// Major returns the kernel major device number.
func (d *BlockDevice) Major() (uint32, error) {
	major, _, err := d.DeviceNumber()
	return major, err
}

// Minor returns the kernel minor device number.
func (d *BlockDevice) Minor() (uint32, error) {
	_, minor, err := d.DeviceNumber()
	return minor, err
}

// Description returns a human-readable identity string, for example
// "Block device sda [8:0]".
func (d *BlockDevice) Description() string {
	name, _ := d.DeviceName(false)
	major, minor, err := d.DeviceNumber()
	if err != nil {
		return fmt.Sprintf("Block device %s", name)
	}
	return fmt.Sprintf("Block device %s [%d:%d]", name, major, minor)
}

// ProbeGeometry populates the handle's geometry from prober. Geometry stays
// absent until probed.
func (d *BlockDevice) ProbeGeometry(prober GeometryProber) error {
	path, err := d.CanonicalDeviceFile()
	if err != nil {
		return err
	}
	g, err := prober.Probe(path)
	if err != nil {
		return err
	}
	d.geometry = &g
	return nil
}

// Size returns the device size in bytes, if known.
func (d *BlockDevice) Size() (uint64, bool) {
	if d.geometry == nil {
		return 0, false
	}
	return d.geometry.SizeBytes, true
}

// BlockSize returns the device block size in bytes, if known.
func (d *BlockDevice) BlockSize() (uint64, bool) {
	if d.geometry == nil {
		return 0, false
	}
	return d.geometry.BlockSizeBytes, true
}

// SectorSize returns the device logical sector size in bytes, if known.
func (d *BlockDevice) SectorSize() (uint64, bool) {
	if d.geometry == nil {
		return 0, false
	}
	return d.geometry.SectorSizeBytes, true
}

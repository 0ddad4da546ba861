package device

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Geometry holds device geometry reported by a prober.
type Geometry struct {
	SizeBytes       uint64
	BlockSizeBytes  uint64
	SectorSizeBytes uint64
}

// GeometryProber reads geometry for a device node.
type GeometryProber interface {
	Probe(path string) (Geometry, error)
}

// UnixProber reads geometry with BLK ioctls on the opened device node.
type UnixProber struct{}

// Probe implements GeometryProber.
func (UnixProber) Probe(path string) (Geometry, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, os.ModeDevice)
	if err != nil {
		return Geometry{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fd := f.Fd()

	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return Geometry{}, fmt.Errorf("ioctl BLKGETSIZE64 on %s: %w", path, errno)
	}

	blockSize, err := unix.IoctlGetInt(int(fd), unix.BLKBSZGET)
	if err != nil {
		return Geometry{}, fmt.Errorf("ioctl BLKBSZGET on %s: %w", path, err)
	}

	sectorSize, err := unix.IoctlGetInt(int(fd), unix.BLKSSZGET)
	if err != nil {
		return Geometry{}, fmt.Errorf("ioctl BLKSSZGET on %s: %w", path, err)
	}

	return Geometry{
		SizeBytes:       size,
		BlockSizeBytes:  uint64(blockSize),
		SectorSizeBytes: uint64(sectorSize),
	}, nil
}

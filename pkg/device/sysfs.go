package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSysfsRoot is where the kernel exposes block device records.
const DefaultSysfsRoot = "/sys"

// readDeviceNumber reads the major:minor numbers for a block device name
// from <sysfsRoot>/class/block/<name>/dev, formatted as "MAJ:MIN\n".
func readDeviceNumber(sysfsRoot, name string) (major, minor uint32, err error) {
	recordPath := filepath.Join(sysfsRoot, "class", "block", name, "dev")
	data, err := os.ReadFile(recordPath)
	if err != nil {
		return 0, 0, fmt.Errorf("reading device record for %s: %w", name, err)
	}
	return parseDeviceNumber(strings.TrimSpace(string(data)))
}

// parseDeviceNumber parses a "MAJ:MIN" kernel device number pair.
func parseDeviceNumber(s string) (major, minor uint32, err error) {
	majStr, minStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected MAJ:MIN, got %q", ErrMalformedRecord, s)
	}
	maj, err := strconv.ParseUint(majStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: major in %q", ErrMalformedRecord, s)
	}
	min, err := strconv.ParseUint(minStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: minor in %q", ErrMalformedRecord, s)
	}
	return uint32(maj), uint32(min), nil
}

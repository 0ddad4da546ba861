package device

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UdevRunProvider reads device properties from the udev runtime database
// under <root>/run/udev/data. Block device records are keyed "b<maj>:<min>";
// "E:" lines carry KEY=VALUE properties and "S:" lines carry /dev-relative
// symlinks.
type UdevRunProvider struct {
	root string
}

// NewUdevRunProvider returns a provider rooted at root. Pass "" for the real
// host root; tests point this at a fixture tree.
func NewUdevRunProvider(root string) *UdevRunProvider {
	if root == "" {
		root = "/"
	}
	return &UdevRunProvider{root: root}
}

// Property implements MetadataProvider.
func (p *UdevRunProvider) Property(path, key string) (string, error) {
	major, minor, err := readDeviceNumber(filepath.Join(p.root, "sys"), filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, path, err)
	}

	record := fmt.Sprintf("b%d:%d", major, minor)
	f, err := os.Open(filepath.Join(p.root, "run", "udev", "data", record))
	if err != nil {
		return "", fmt.Errorf("%w: %s has no udev record", ErrMetadataUnavailable, path)
	}
	defer f.Close()

	var links []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "E:"):
			if k, v, ok := strings.Cut(line[2:], "="); ok && k == key {
				return v, nil
			}
		case strings.HasPrefix(line, "S:"):
			links = append(links, "/dev/"+line[2:])
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading udev record %s: %w", record, err)
	}

	// The runtime database stores symlinks as S: lines rather than a
	// DEVLINKS property; synthesize the property for callers asking for it.
	if key == devLinksKey && len(links) > 0 {
		return strings.Join(links, " "), nil
	}
	return "", fmt.Errorf("%w: no %s property for %s", ErrMetadataUnavailable, key, path)
}

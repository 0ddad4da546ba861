package device

import (
	"github.com/maruel/natural"
)

// ByIDDir is the directory udev populates with identity-derived device links.
const ByIDDir = "/dev/disk/by-id"

// classRank classifies an alias name by its first character. Identity-derived
// names (ata-*) survive controller and cabling changes, world-wide names are
// globally unique but less readable, bus names change with topology. Matching
// is deliberately first-character only, so "abc-device" ranks the same as
// "ata-device"; persisted device references depend on this, do not tighten it
// to full prefixes.
func classRank(name string) int {
	if name == "" {
		return 3
	}
	switch name[0] {
	case 'a':
		return 0
	case 'w':
		return 1
	case 's':
		return 2
	}
	return 3
}

// aliasLess orders alias candidates by class rank, breaking ties with natural
// string order so that "ata-device-2" sorts before "ata-device-10".
func aliasLess(a, b string) bool {
	ra, rb := classRank(a), classRank(b)
	if ra != rb {
		return ra < rb
	}
	return natural.Less(a, b)
}

// SelectBest picks the highest-priority alias from names and returns it as an
// absolute path under ByIDDir. The result is the same for any ordering of
// names. ok is false when names is empty.
func SelectBest(names []string) (best string, ok bool) {
	if len(names) == 0 {
		return "", false
	}
	winner := names[0]
	for _, name := range names[1:] {
		if aliasLess(name, winner) {
			winner = name
		}
	}
	return ByIDDir + "/" + winner, true
}

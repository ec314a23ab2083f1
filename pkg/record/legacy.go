package record

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/qualia/pkg/types"
)

// The shapes older installers wrote, and how they map onto the current
// record:
//
//  1. enabled entries beginning with "firefox" were itemized browser
//     variants ("firefox-flatpak"); they all mean the firefox component.
//  2. a "firefox:" line holding a boolean flag (true, yes, 1) was the
//     single firefox switch; it enables the firefox component. Any other
//     value is the current list of browser profile families.
//  3. a bare "gnome: N" line was the only desktop identity. It is used
//     when no "desktops:" line is present. "None" or a non-integer means
//     absent.
//  4. "old_<component>_<desktop>" lines for unknown desktops or
//     components are dropped.

// normalizeEnabled applies rule 1
func normalizeEnabled(name string) types.Component {
	if strings.HasPrefix(name, string(types.ComponentFirefox)) {
		return types.ComponentFirefox
	}
	return types.Component(name)
}

// legacyFirefoxFlag applies rule 2
func legacyFirefoxFlag(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// legacyGnomeVersion applies rule 3
func legacyGnomeVersion(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil {
		return ""
	}
	return strconv.Itoa(n)
}

// splitSnapshotKey applies rule 4. Component ids may contain
// underscores, so the desktop is everything after the last one.
func splitSnapshotKey(key string) (types.Component, types.Desktop, bool) {
	rest := strings.TrimPrefix(key, snapshotPrefix)
	i := strings.LastIndex(rest, "_")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	c := types.Component(rest[:i])
	d := types.Desktop(rest[i+1:])
	if !c.Valid() || !d.Valid() {
		return "", "", false
	}
	return c, d, true
}

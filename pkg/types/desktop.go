package types

import (
	"strings"
)

// Desktop identifies a supported desktop environment.
type Desktop string

const (
	DesktopGnome    Desktop = "gnome"
	DesktopCinnamon Desktop = "cinnamon"
	DesktopUnity    Desktop = "unity"
	DesktopXfce     Desktop = "xfce"
	DesktopMate     Desktop = "mate"
	DesktopBudgie   Desktop = "budgie"
)

// supportedVersions is the allow-list of desktop versions the themes are
// built for. A detected version outside this list counts as absent.
var supportedVersions = map[Desktop][]string{
	DesktopGnome:    {"42", "43"},
	DesktopCinnamon: {"4", "5"},
	DesktopUnity:    {"7"},
	DesktopXfce:     {"4"},
	DesktopMate:     {"1"},
	DesktopBudgie:   {"10.6"},
}

// AllDesktops returns every supported desktop in a stable order.
func AllDesktops() []Desktop {
	return []Desktop{
		DesktopGnome,
		DesktopCinnamon,
		DesktopUnity,
		DesktopXfce,
		DesktopMate,
		DesktopBudgie,
	}
}

// Valid reports whether d is a supported desktop.
func (d Desktop) Valid() bool {
	_, ok := supportedVersions[d]
	return ok
}

// Pretty returns the name used in user facing messages.
func (d Desktop) Pretty() string {
	switch d {
	case DesktopGnome, DesktopXfce:
		return strings.ToUpper(string(d))
	case "":
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// SupportedVersions returns the allow-listed versions for d.
func SupportedVersions(d Desktop) []string {
	return append([]string(nil), supportedVersions[d]...)
}

// IsSupportedVersion reports whether version is allow-listed for d.
func IsSupportedVersion(d Desktop, version string) bool {
	for _, v := range supportedVersions[d] {
		if v == version {
			return true
		}
	}
	return false
}

// DesktopVersions maps each desktop to its detected version token. A
// missing or empty entry means the desktop is absent or unsupported.
type DesktopVersions map[Desktop]string

// Has reports whether d was detected with a supported version.
func (dv DesktopVersions) Has(d Desktop) bool {
	return dv[d] != ""
}

// Version returns the detected version of d, or "" when absent.
func (dv DesktopVersions) Version(d Desktop) string {
	return dv[d]
}

// Detected returns the present desktops in AllDesktops order.
func (dv DesktopVersions) Detected() []Desktop {
	var out []Desktop
	for _, d := range AllDesktops() {
		if dv.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Clone returns a copy of dv without its empty entries.
func (dv DesktopVersions) Clone() DesktopVersions {
	return dv.Without("")
}

// Without returns a copy of dv with d removed.
func (dv DesktopVersions) Without(d Desktop) DesktopVersions {
	out := make(DesktopVersions, len(dv))
	for k, v := range dv {
		if k != d && v != "" {
			out[k] = v
		}
	}
	return out
}

// Equal compares the present desktops of two maps, ignoring empty entries.
func (dv DesktopVersions) Equal(other DesktopVersions) bool {
	for _, d := range AllDesktops() {
		if dv[d] != other[d] {
			return false
		}
	}
	return true
}

// String renders the present desktops as space separated name=version
// pairs, in AllDesktops order.
func (dv DesktopVersions) String() string {
	var parts []string
	for _, d := range dv.Detected() {
		parts = append(parts, string(d)+"="+dv[d])
	}
	return strings.Join(parts, " ")
}

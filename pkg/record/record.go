package record

import (
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/types"
)

// VersionTokenLength is the length of a recorded version token (a git
// commit id).
const VersionTokenLength = 40

// SelfAuthoredPrefix starts every display name the installer writes. A
// stored snapshot with this prefix is a value qualia wrote itself, not
// the user's original setting.
const SelfAuthoredPrefix = "qualia"

// IsSelfAuthored reports whether value looks like a value the installer
// wrote.
func IsSelfAuthored(value string) bool {
	return strings.HasPrefix(value, SelfAuthoredPrefix)
}

// Record is the in-memory config record
type Record struct {
	// Accent and Variant are empty when the file had no usable value.
	Accent  types.Accent
	Variant types.Variant

	// Enabled lists the enabled components in the order they were chosen.
	Enabled []types.Component

	// Desktops is the desktop identity the Yaru group was last built for.
	Desktops types.DesktopVersions

	// Firefox and VSCode list the browser profile families and editor
	// installs present at the last run.
	Firefox []string
	VSCode  []string

	// Versions holds the version token of each built group.
	Versions map[types.Group]string

	// Snapshots holds the settings found before qualia first changed them.
	Snapshots Snapshots
}

// New returns an empty record
func New() *Record {
	return &Record{
		Desktops:  types.DesktopVersions{},
		Versions:  map[types.Group]string{},
		Snapshots: Snapshots{},
	}
}

// Clone returns a deep copy of r
func (r *Record) Clone() *Record {
	out := New()
	out.Accent = r.Accent
	out.Variant = r.Variant
	out.Enabled = append([]types.Component(nil), r.Enabled...)
	for d, v := range r.Desktops {
		out.Desktops[d] = v
	}
	out.Firefox = append([]string(nil), r.Firefox...)
	out.VSCode = append([]string(nil), r.VSCode...)
	for g, v := range r.Versions {
		out.Versions[g] = v
	}
	out.Snapshots = r.Snapshots.Clone()
	return out
}

// IsEnabled reports whether c is enabled
func (r *Record) IsEnabled(c types.Component) bool {
	for _, e := range r.Enabled {
		if e == c {
			return true
		}
	}
	return false
}

// Enable adds c to the enabled list if missing
func (r *Record) Enable(c types.Component) {
	if !r.IsEnabled(c) {
		r.Enabled = append(r.Enabled, c)
	}
}

// Disable removes c from the enabled list
func (r *Record) Disable(c types.Component) {
	out := r.Enabled[:0]
	for _, e := range r.Enabled {
		if e != c {
			out = append(out, e)
		}
	}
	r.Enabled = out
}

// AnyEnabled reports whether any component of g is enabled
func (r *Record) AnyEnabled(g types.Group) bool {
	for _, c := range types.ComponentsOf(g) {
		if r.IsEnabled(c) {
			return true
		}
	}
	return false
}

// Version returns the recorded token of g, "" when none
func (r *Record) Version(g types.Group) string {
	return r.Versions[g]
}

// SetVersion records the token of g. Tokens must be empty or exactly
// VersionTokenLength characters long.
func (r *Record) SetVersion(g types.Group, token string) error {
	if token != "" && len(token) != VersionTokenLength {
		return errors.Newf(errors.ErrInvalidInput, "version token of %s must be %d characters, got %q",
			g, VersionTokenLength, token).WithDetail("group", string(g))
	}
	if r.Versions == nil {
		r.Versions = map[types.Group]string{}
	}
	r.Versions[g] = token
	return nil
}

// Snapshots maps a component and desktop to the setting found before the
// installer first changed it.
type Snapshots map[types.Component]map[types.Desktop]string

// Get returns the snapshot of (c, d)
func (s Snapshots) Get(c types.Component, d types.Desktop) (string, bool) {
	v, ok := s[c][d]
	return v, ok
}

// Set stores the snapshot of (c, d)
func (s Snapshots) Set(c types.Component, d types.Desktop, value string) {
	if s[c] == nil {
		s[c] = map[types.Desktop]string{}
	}
	s[c][d] = value
}

// Clone returns a deep copy of s
func (s Snapshots) Clone() Snapshots {
	out := make(Snapshots, len(s))
	for c, byDesktop := range s {
		inner := make(map[types.Desktop]string, len(byDesktop))
		for d, v := range byDesktop {
			inner[d] = v
		}
		out[c] = inner
	}
	return out
}

// Persistable reports whether a snapshot value is written to disk: empty
// and self-authored values are not.
func Persistable(value string) bool {
	return value != "" && !IsSelfAuthored(value)
}

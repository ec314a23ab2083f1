package resolver

import (
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Eligible returns the components that can be offered on this host, in
// menu order. A component needs its desktop detected and its host
// dependency present; an option also needs its parent to be eligible.
func Eligible(desktops types.DesktopVersions, hosts types.HostInventory) []types.Component {
	var out []types.Component
	ok := map[types.Component]bool{}
	for _, info := range types.AllComponents() {
		if info.Desktop != "" && !desktops.Has(info.Desktop) {
			continue
		}
		if !hosts.Has(info.Host) {
			continue
		}
		if info.IsOption() && !ok[info.Parent] {
			continue
		}
		ok[info.ID] = true
		out = append(out, info.ID)
	}
	return out
}

// IsEligible reports whether c is in eligible
func IsEligible(eligible []types.Component, c types.Component) bool {
	for _, e := range eligible {
		if e == c {
			return true
		}
	}
	return false
}

// NarrowEnabled removes enabled components that are no longer eligible and
// returns them.
func NarrowEnabled(rec *record.Record, eligible []types.Component) []types.Component {
	var dropped []types.Component
	for _, c := range append([]types.Component(nil), rec.Enabled...) {
		if !IsEligible(eligible, c) {
			rec.Disable(c)
			dropped = append(dropped, c)
		}
	}
	return dropped
}

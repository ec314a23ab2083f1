// Package types defines the closed enumerations shared by the installer:
// the accent palette, light/dark variants, supported desktop environments,
// and the installable theme components with their groups.
//
// Every component carries its own eligibility metadata (desktop
// dependency, host dependency, parent component for options) so callers
// never need to special-case a component by name to decide whether it can
// be offered.
package types

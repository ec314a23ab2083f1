package types

// HostInventory records the host dependencies found at startup.
type HostInventory struct {
	// Firefox lists the browser profile families found on disk.
	Firefox []string
	// VSCode lists the editor installs found on disk.
	VSCode []string
	// Snap is true when the snap binary is on PATH.
	Snap bool
}

// Has reports whether dep is satisfied on this host.
func (h HostInventory) Has(dep HostDependency) bool {
	switch dep {
	case HostNone:
		return true
	case HostFirefox:
		return len(h.Firefox) > 0
	case HostVSCode:
		return len(h.VSCode) > 0
	case HostSnap:
		return h.Snap
	}
	return false
}

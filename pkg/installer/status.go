package installer

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/resolver"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Status is a read-only view of the installation
type Status struct {
	RecordPath string `json:"record_path" yaml:"record_path"`
	Found      bool   `json:"found" yaml:"found"`

	Accent  string   `json:"accent,omitempty" yaml:"accent,omitempty"`
	Variant string   `json:"variant,omitempty" yaml:"variant,omitempty"`
	Enabled []string `json:"enabled" yaml:"enabled"`

	Versions map[string]string `json:"versions" yaml:"versions"`
	Desktops map[string]string `json:"desktops" yaml:"desktops"`
	Eligible []string          `json:"eligible" yaml:"eligible"`

	Facets []FacetStatus `json:"facets" yaml:"facets"`

	// Host is filled in by the caller.
	Host *HostInfo `json:"host,omitempty" yaml:"host,omitempty"`
}

// FacetStatus is one (component, desktop) setting
type FacetStatus struct {
	Component string `json:"component" yaml:"component"`
	Desktop   string `json:"desktop" yaml:"desktop"`
	Store     string `json:"store" yaml:"store"`
	Key       string `json:"key" yaml:"key"`
	Live      string `json:"live" yaml:"live"`
	Desired   string `json:"desired,omitempty" yaml:"desired,omitempty"`
	Snapshot  string `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	// Error is set when the live value could not be read.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Applied reports whether the live value is the desired one
func (f FacetStatus) Applied() bool {
	return f.Desired != "" && f.Live == f.Desired
}

// HostInfo describes the machine
type HostInfo struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	OS       string `json:"os" yaml:"os"`
	Platform string `json:"platform" yaml:"platform"`
	Version  string `json:"version" yaml:"version"`
	Kernel   string `json:"kernel" yaml:"kernel"`
}

// Status reads the record and the live settings without changing
// anything
func (in *Installer) Status(ctx context.Context) (*Status, error) {
	rec, found, err := in.store.Load()
	if err != nil {
		return nil, err
	}

	st := &Status{
		RecordPath: in.store.Path(),
		Found:      found,
		Accent:     string(rec.Accent),
		Variant:    string(rec.Variant),
		Versions:   map[string]string{},
		Desktops:   map[string]string{},
	}
	for _, c := range rec.Enabled {
		st.Enabled = append(st.Enabled, string(c))
	}
	for g, v := range rec.Versions {
		if v != "" {
			st.Versions[string(g)] = v
		}
	}
	for _, d := range in.deps.Desktops.Detected() {
		st.Desktops[string(d)] = in.deps.Desktops.Version(d)
	}

	hosts := resolver.DetectHosts(in.deps.FS, in.deps.Paths, in.deps.Config, in.deps.Runner)
	for _, c := range resolver.Eligible(in.deps.Desktops, hosts.HostInventory) {
		st.Eligible = append(st.Eligible, string(c))
	}

	var names resolver.Names
	if rec.Accent.Valid() {
		if scheme, err := resolver.ResolveScheme(ctx, rec.Variant, in.detectScheme); err == nil {
			names = resolver.DisplayNames(rec.Accent, scheme)
		}
	}

	st.Facets = in.facetStatus(ctx, rec.Snapshots, names, rec.IsEnabled)
	return st, nil
}

func (in *Installer) facetStatus(ctx context.Context, snaps record.Snapshots, names resolver.Names, enabled func(types.Component) bool) []FacetStatus {
	var out []FacetStatus
	for _, f := range enable.Facets() {
		for _, d := range in.deps.Desktops.Detected() {
			store, key := in.deps.Stores.Schema, f.Property
			if d == types.DesktopXfce {
				if !f.HasProperty() {
					continue
				}
				store = in.deps.Stores.Property
			} else {
				k, ok := f.SchemaKey(d)
				if !ok {
					continue
				}
				key = k
			}
			if store == nil {
				continue
			}

			row := FacetStatus{
				Component: string(f.Component),
				Desktop:   string(d),
				Store:     store.Name(),
				Key:       key.String(),
			}
			row.Snapshot, _ = snaps.Get(f.Component, d)
			if enabled(f.Component) {
				c := f.Component
				if c == types.ComponentIcons && d == types.DesktopUnity {
					c = types.ComponentGtk3
				}
				row.Desired, _ = names.Lookup(c, d)
			}
			if !store.Available() {
				row.Error = "'" + store.Name() + "' not found"
				out = append(out, row)
				continue
			}
			live, err := store.Get(ctx, key)
			if err != nil {
				row.Error = err.Error()
			} else {
				row.Live = live
			}
			out = append(out, row)
		}
	}
	return out
}

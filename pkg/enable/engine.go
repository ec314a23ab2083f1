package enable

import (
	"context"
	"fmt"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/types"
)

// NameFunc returns the value c should have on d. False means the facet has
// no desired value there.
type NameFunc func(c types.Component, d types.Desktop) (string, bool)

// Reporter receives the user facing messages of a pass
type Reporter interface {
	// Changing is called right before a setting is written.
	Changing(c types.Component, d types.Desktop, value string)
	// Warn reports a skipped facet.
	Warn(message string)
}

// Options restrict a pass
type Options struct {
	// Desktop limits the pass to one desktop. Empty means all.
	Desktop types.Desktop

	// Rollback applies recorded snapshots: every facet is considered,
	// enabled or not, and no display name is substituted.
	Rollback bool
}

func (o Options) includes(d types.Desktop) bool {
	return o.Desktop == "" || o.Desktop == d
}

// Skip is one (component, desktop) pair left alone
type Skip struct {
	Component types.Component
	Desktop   types.Desktop
	Reason    string
}

// Result summarizes a pass
type Result struct {
	// Changed is true when any setting was written.
	Changed bool
	Writes  int
	Skipped []Skip
}

func (r *Result) skip(c types.Component, d types.Desktop, reason string) {
	r.Skipped = append(r.Skipped, Skip{Component: c, Desktop: d, Reason: reason})
}

// Engine reconciles desktop settings with the desired theme names
type Engine struct {
	stores     settings.Stores
	extensions Extensions
	reporter   Reporter
}

// NewEngine creates an engine. A nil reporter discards messages.
func NewEngine(stores settings.Stores, ext Extensions, reporter Reporter) *Engine {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Engine{stores: stores, extensions: ext, reporter: reporter}
}

// pair is one (facet, desktop) the pass acts on
type pair struct {
	desktop types.Desktop
	store   settings.Store
	key     settings.Key
	value   string
}

// Enable runs one pass over every facet. Snapshots are captured into
// rec.Snapshots. A failing write is returned; everything else that goes
// wrong only skips the pair concerned.
func (e *Engine) Enable(ctx context.Context, rec *record.Record, desktops types.DesktopVersions, names NameFunc, opts Options) (Result, error) {
	log := logging.GetLogger("enable")
	var res Result

	for _, f := range Facets() {
		c := f.Component
		if !opts.Rollback && !rec.IsEnabled(c) {
			continue
		}

		pairs := e.pairs(f, desktops, names, opts, &res)
		if len(pairs) == 0 {
			continue
		}

		if c == types.ComponentGnomeShell {
			if err := e.gate(ctx); err != nil {
				e.reporter.Warn(fmt.Sprintf("%s, not enabling GNOME Shell theme.", errors.GetErrorMessage(err)))
				for _, p := range pairs {
					res.skip(c, p.desktop, errors.GetErrorMessage(err))
				}
				continue
			}
		}

		for _, p := range pairs {
			if err := e.reconcile(ctx, rec, c, p, &res); err != nil {
				return res, err
			}
		}
	}

	log.Debug().Bool("changed", res.Changed).Int("writes", res.Writes).Int("skipped", len(res.Skipped)).
		Msg("Enable pass finished")
	return res, nil
}

// pairs lists the desktops f acts on, applying every Skip rule that does
// not need the live value.
func (e *Engine) pairs(f Facet, desktops types.DesktopVersions, names NameFunc, opts Options, res *Result) []pair {
	c := f.Component
	warned := map[string]bool{}
	var out []pair

	for _, d := range types.AllDesktops() {
		if !desktops.Has(d) || !opts.includes(d) {
			continue
		}

		var store settings.Store
		var key settings.Key
		if d == types.DesktopXfce {
			if !f.HasProperty() {
				continue
			}
			store, key = e.stores.Property, f.Property
		} else {
			k, ok := f.SchemaKey(d)
			if !ok {
				continue
			}
			store, key = e.stores.Schema, k
		}

		value, ok := e.desired(c, d, names, opts)
		if !ok {
			res.skip(c, d, "no display name")
			continue
		}

		if store == nil || !store.Available() {
			name := storeName(store, d)
			if !warned[name] {
				warned[name] = true
				e.reporter.Warn(fmt.Sprintf("'%s' not found, not enabling %s theme.", name, c))
			}
			res.skip(c, d, name+" unavailable")
			continue
		}

		out = append(out, pair{desktop: d, store: store, key: key, value: value})
	}
	return out
}

// desired returns the display name of c on d. Unity gets the GTK theme
// name for its icons: its panel is not always dark, so the icon set
// follows the theme variant there.
func (e *Engine) desired(c types.Component, d types.Desktop, names NameFunc, opts Options) (string, bool) {
	if c == types.ComponentIcons && d == types.DesktopUnity && !opts.Rollback {
		c = types.ComponentGtk3
	}
	if names == nil {
		return "", false
	}
	return names(c, d)
}

func (e *Engine) gate(ctx context.Context) error {
	if e.extensions == nil {
		return errors.New(errors.ErrStoreUnavailable, "'gnome-extensions' not found")
	}
	return e.extensions.EnableUserTheme(ctx)
}

func (e *Engine) reconcile(ctx context.Context, rec *record.Record, c types.Component, p pair, res *Result) error {
	log := logging.GetLogger("enable").With().
		Str("theme", string(c)).
		Str("desktop", string(p.desktop)).
		Logger()

	live, err := p.store.Get(ctx, p.key)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read live setting")
		e.reporter.Warn(fmt.Sprintf("Can't read the %s theme in %s, not enabling it.", c.Label(), p.desktop.Pretty()))
		res.skip(c, p.desktop, "read failed")
		return nil
	}

	if Capture(rec.Snapshots, c, p.desktop, live) {
		log.Debug().Str("value", live).Msg("Captured snapshot")
	}

	if live == p.value {
		log.Trace().Str("value", live).Msg("Already applied")
		return nil
	}

	e.reporter.Changing(c, p.desktop, p.value)
	if err := p.store.Set(ctx, p.key, p.value); err != nil {
		if errors.IsErrorCode(err, errors.ErrStoreUnavailable) {
			res.skip(c, p.desktop, p.store.Name()+" unavailable")
			return nil
		}
		return errors.Wrapf(err, errors.ErrCommandFailed, "failed to set the %s theme in %s", c.Label(), p.desktop.Pretty()).
			WithDetail("key", p.key.String()).
			WithDetail("value", p.value)
	}
	res.Changed = true
	res.Writes++
	return nil
}

// Capture stores live as the snapshot of (c, d) unless a snapshot that
// qualia did not write already exists. It reports whether it stored.
func Capture(snaps record.Snapshots, c types.Component, d types.Desktop, live string) bool {
	if old, ok := snaps.Get(c, d); ok && !record.IsSelfAuthored(old) {
		return false
	}
	snaps.Set(c, d, live)
	return true
}

// SnapshotNames returns the recorded snapshots as a NameFunc, for rolling
// back. Self-authored and empty snapshots have no name.
func SnapshotNames(snaps record.Snapshots) NameFunc {
	snaps = snaps.Clone()
	return func(c types.Component, d types.Desktop) (string, bool) {
		v, ok := snaps.Get(c, d)
		return v, ok && record.Persistable(v)
	}
}

func storeName(store settings.Store, d types.Desktop) string {
	if store != nil {
		return store.Name()
	}
	if d == types.DesktopXfce {
		return "xfconf-query"
	}
	return "gsettings"
}

type nopReporter struct{}

func (nopReporter) Changing(types.Component, types.Desktop, string) {}
func (nopReporter) Warn(string)                                     {}

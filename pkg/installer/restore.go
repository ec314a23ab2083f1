package installer

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Restore puts back the settings recorded before qualia first changed
// them. An empty desktop restores every detected desktop.
func (in *Installer) Restore(ctx context.Context, desktop types.Desktop) (enable.Result, error) {
	log := logging.GetLogger("installer")

	if err := in.refuseRoot(); err != nil {
		return enable.Result{}, err
	}
	if desktop != "" && !desktop.Valid() {
		return enable.Result{}, errors.Newf(errors.ErrInvalidInput, "unknown desktop %q", desktop).
			WithDetail("desktop", string(desktop))
	}

	rec, found, err := in.store.Load()
	if err != nil {
		return enable.Result{}, err
	}
	if !found {
		return enable.Result{}, errors.Newf(errors.ErrNotFound, "no config record at %s, nothing to restore", in.store.Path())
	}

	names := enable.SnapshotNames(rec.Snapshots)
	res, err := in.engine().Enable(ctx, rec, in.deps.Desktops, names, enable.Options{Desktop: desktop, Rollback: true})
	if saveErr := in.store.Save(rec); saveErr != nil && err == nil {
		err = saveErr
	}
	if err != nil {
		return res, err
	}

	log.Info().Int("writes", res.Writes).Str("desktop", string(desktop)).Msg("Restore finished")
	return res, nil
}

// Clean removes the meson build directories
func (in *Installer) Clean(ctx context.Context) ([]string, error) {
	return build.Clean(ctx, in.deps.FS, in.deps.Runner, in.deps.Paths, in.euid == 0)
}

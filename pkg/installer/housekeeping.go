package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// installedName is how a leftover component is named in the uninstall
// hint
func installedName(c types.Component) string {
	switch c {
	case types.ComponentGtk4Libadwaita:
		return "Libadwaita GTK4 theme"
	case types.ComponentGtk4:
		return "GTK4 configuration"
	}
	return c.Label() + " theme"
}

// reportDisabled points at files left behind by disabled components of g
func (in *Installer) reportDisabled(r *run, g types.Group) {
	log := logging.GetLogger("installer")
	for _, c := range types.ComponentsOf(g) {
		if c.Info().IsOption() || r.rec.IsEnabled(c) {
			continue
		}
		found, err := r.installed.Exists(in.deps.FS, c)
		if err != nil {
			log.Debug().Err(err).Str("theme", string(c)).Msg("Failed to look for installed files")
			continue
		}
		if found {
			in.deps.Console.Info(fmt.Sprintf("The %s was installed previously, use './uninstall.py %s' to remove it.",
				installedName(c), c))
		}
	}
}

// installSnap installs the snap theme when enabled and reachable, and
// otherwise reports a leftover snap
func (in *Installer) installSnap(ctx context.Context, r *run) error {
	log := logging.GetLogger("installer")
	snap := build.NewSnap(in.deps.Runner, in.deps.Console.Info)

	if !r.rec.IsEnabled(types.ComponentSnap) {
		if !in.deps.Runner.LookPath("snap") {
			return nil
		}
		installed, err := snap.Installed(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to list snaps")
			return nil
		}
		if installed {
			in.deps.Console.Info("The Snap theme was installed previously, use './uninstall.py snap' to remove it.")
		}
		return nil
	}

	if in.deps.Probe != nil {
		if err := in.deps.Probe(ctx); err != nil {
			log.Warn().Err(err).Msg("Connectivity probe failed, skipping snap")
			in.deps.Console.Warn(NoticeNoNetwork)
			return nil
		}
	}
	return snap.Install(ctx, r.rec)
}

// mirrorForMate links the themes installed under the user prefix into
// the system prefix, where MATE looks for them
func (in *Installer) mirrorForMate(ctx context.Context, r *run) error {
	if !in.deps.Desktops.Has(types.DesktopMate) {
		return nil
	}
	log := logging.GetLogger("installer")
	fs := in.deps.FS
	userPrefix := in.deps.Paths.UserPrefix()
	systemPrefix := in.deps.Paths.SystemPrefix()

	dirs, err := r.installed.UserThemeDirs(fs)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		entries, err := afero.Glob(fs, filepath.Join(dir, "*"))
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
		}
		for _, target := range entries {
			rel, ok := strings.CutPrefix(target, userPrefix)
			if !ok {
				continue
			}
			dest := systemPrefix + rel

			parent := filepath.Dir(dest)
			if exists, _ := afero.DirExists(fs, parent); !exists {
				if err := in.sudo(ctx, "mkdir", "-p", parent); err != nil {
					return err
				}
			}
			if exists, _ := afero.Exists(fs, dest); !exists {
				log.Debug().Str("target", target).Str("dest", dest).Msg("Linking theme for MATE")
				if err := in.sudo(ctx, "ln", "-rsf", target, dest); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// removeOldTheme runs the uninstaller on files of the previous theme
// generation
func (in *Installer) removeOldTheme(ctx context.Context, r *run) error {
	old, err := r.installed.OldExists(in.deps.FS)
	if err != nil || !old {
		return err
	}
	in.deps.Console.Info("Removing old theme.")
	c := runner.Command("sudo", "./uninstall.py", "--old").In(in.deps.Paths.RepoDir()).Streaming(true)
	if err := in.deps.Runner.Run(ctx, c); err != nil {
		return errors.Wrap(err, errors.ErrCommandFailed, "failed to remove the old theme")
	}
	return nil
}

func (in *Installer) sudo(ctx context.Context, args ...string) error {
	c := runner.Command("sudo", args...)
	if err := in.deps.Runner.Run(ctx, c); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "failed to run %s", c.String())
	}
	return nil
}

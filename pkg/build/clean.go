package build

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// MesonGroups returns the groups with a meson build directory
func MesonGroups() []types.Group {
	var out []types.Group
	for _, g := range types.BuildOrder() {
		if g.Info().Meson {
			out = append(out, g)
		}
	}
	return out
}

// Clean removes the meson build directories. Builds run ninja install
// as root for system wide groups, so the directories can be root owned:
// unless root is true the removal goes through sudo.
func Clean(ctx context.Context, fs afero.Fs, r runner.Runner, p paths.Paths, root bool) ([]string, error) {
	log := logging.GetLogger("build.clean")
	var removed []string

	for _, g := range MesonGroups() {
		dir := p.BuildDir(g)
		if _, err := fs.Stat(dir); err != nil {
			log.Debug().Str("dir", dir).Msg("No build directory")
			continue
		}

		if root {
			if err := fs.RemoveAll(dir); err != nil {
				return removed, errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", dir)
			}
		} else if err := r.Run(ctx, runner.Command("sudo", "rm", "-rf", dir)); err != nil {
			return removed, errors.Wrapf(err, errors.ErrCommandFailed, "failed to remove %s", dir)
		}
		log.Info().Str("dir", dir).Msg("Removed build directory")
		removed = append(removed, dir)
	}
	return removed, nil
}

package resolver

import (
	"github.com/arthur-debert/qualia/pkg/config"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// Hosts is the detected host inventory together with the directories
// that satisfied it
type Hosts struct {
	types.HostInventory
	FirefoxDirs []string
	VSCodeDirs  []string
}

// DetectHosts looks for the browser profile families and editor installs
// named in cfg, and for the snap client.
func DetectHosts(fs afero.Fs, p paths.Paths, cfg *config.Config, tools ToolFinder) Hosts {
	log := logging.GetLogger("resolver")

	var h Hosts
	h.Firefox, h.FirefoxDirs = presentProfiles(fs, p, cfg.Firefox)
	h.VSCode, h.VSCodeDirs = presentProfiles(fs, p, cfg.VSCode)
	h.Snap = tools != nil && tools.LookPath("snap")

	log.Debug().
		Strs("firefox", h.Firefox).
		Strs("vscode", h.VSCode).
		Bool("snap", h.Snap).
		Msg("Host dependencies detected")
	return h
}

func presentProfiles(fs afero.Fs, p paths.Paths, profiles config.Profiles) (names, dirs []string) {
	for _, name := range profiles.Names() {
		dir := p.Expand(profiles.Profiles[name])
		if dir == "" {
			continue
		}
		if ok, err := afero.DirExists(fs, dir); err == nil && ok {
			names = append(names, name)
			dirs = append(dirs, dir)
		}
	}
	return names, dirs
}

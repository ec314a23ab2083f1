package build

import (
	"context"
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Snap names
const (
	SnapTheme  = "qualia-gtk-theme"
	SnapCommon = "gtk-common-themes"
)

// snapSlots maps the components the snap themes to their slot prefix
var snapSlots = []struct {
	component types.Component
	slot      string
}{
	{types.ComponentGtk3, "gtk-3"},
	{types.ComponentIcons, "icon"},
	{types.ComponentSounds, "sound"},
}

// Snap installs the theme snap and wires its slots into installed snaps
type Snap struct {
	runner runner.Runner
	notify func(string)
}

// NewSnap creates the snap installer. notify receives the progress
// messages; nil drops them.
func NewSnap(r runner.Runner, notify func(string)) *Snap {
	if notify == nil {
		notify = func(string) {}
	}
	return &Snap{runner: r, notify: notify}
}

// Installed reports whether the theme snap is installed
func (s *Snap) Installed(ctx context.Context) (bool, error) {
	installed, err := s.list(ctx)
	if err != nil {
		return false, err
	}
	return installed[SnapTheme], nil
}

// Install installs or refreshes the theme snaps, then connects the theme
// slots for enabled components and disconnects them for disabled ones.
func (s *Snap) Install(ctx context.Context, rec *record.Record) error {
	log := logging.GetLogger("build.snap")

	installed, err := s.list(ctx)
	if err != nil {
		return err
	}
	for _, name := range []string{SnapCommon, SnapTheme} {
		var c runner.Cmd
		if installed[name] {
			s.notify("Checking if " + name + " Snap can be updated.")
			c = runner.Command("sudo", "snap", "refresh", name)
		} else {
			s.notify("Installing the " + name + " Snap.")
			c = runner.Command("sudo", "snap", "install", name)
		}
		if err := s.runner.Run(ctx, c.Streaming(true)); err != nil {
			return errors.Wrapf(err, errors.ErrBuildFailed, "failed to install the %s snap", name).
				WithDetail("hints", []string{HintLog})
		}
	}

	out, err := s.runner.Output(ctx, runner.Command("snap", "connections"))
	if err != nil {
		return errors.Wrap(err, errors.ErrCommandFailed, "failed to list snap connections")
	}
	for _, c := range connectionCommands(out, rec) {
		log.Debug().Str("command", c.String()).Msg("Updating snap connection")
		if err := s.runner.Run(ctx, c.Streaming(true)); err != nil {
			return errors.Wrap(err, errors.ErrBuildFailed, "failed to update snap connections").
				WithDetail("hints", []string{HintLog})
		}
	}
	return nil
}

// list parses `snap list` into the set of installed snap names
func (s *Snap) list(ctx context.Context) (map[string]bool, error) {
	out, err := s.runner.Output(ctx, runner.Command("snap", "list"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCommandFailed, "failed to list installed snaps")
	}
	installed := map[string]bool{}
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			installed[fields[0]] = true
		}
	}
	return installed, nil
}

// connectionCommands reads `snap connections` output (interface, plug,
// slot, notes) and returns the connect and disconnect commands to run.
func connectionCommands(out string, rec *record.Record) []runner.Cmd {
	var cmds []runner.Cmd
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		plug, slot := fields[1], fields[2]
		for _, s := range snapSlots {
			theme := SnapTheme + ":" + s.slot + "-themes"
			if rec.IsEnabled(s.component) {
				if slot == SnapCommon+":"+s.slot+"-themes" {
					cmds = append(cmds, runner.Command("sudo", "snap", "connect", plug, theme))
				}
			} else if slot == theme {
				cmds = append(cmds, runner.Command("sudo", "snap", "disconnect", plug, theme))
			}
		}
	}
	return cmds
}

package installer

import (
	"context"
	"os"

	"github.com/arthur-debert/qualia/pkg/config"
	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/progress"
	"github.com/arthur-debert/qualia/pkg/record"
	"github.com/arthur-debert/qualia/pkg/resolver"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/spf13/afero"
)

// RequiredTools must be on PATH before anything is changed
var RequiredTools = []string{"sassc", "git"}

// Console receives the user facing output of a run
type Console interface {
	enable.Reporter
	// Notice prints a highlighted line.
	Notice(message string)
	// Info prints a plain line.
	Info(message string)
}

// ProbeFunc checks connectivity before installing the snap
type ProbeFunc func(ctx context.Context) error

// Deps are the collaborators of the installer
type Deps struct {
	FS     afero.Fs
	Runner runner.Runner
	Paths  paths.Paths
	Config *config.Config

	Stores     settings.Stores
	Extensions enable.Extensions

	Prompter  resolver.Prompter
	Console   Console
	Indicator *progress.Indicator

	// Desktops is the detected desktop identity.
	Desktops types.DesktopVersions

	// Probe gates the snap component. Nil means always connected.
	Probe ProbeFunc

	// EUID overrides the effective user id. Nil means os.Geteuid().
	EUID *int
}

// Installer runs the installer commands
type Installer struct {
	deps  Deps
	store *record.Store
	euid  int
}

// New creates an installer
func New(d Deps) *Installer {
	euid := os.Geteuid()
	if d.EUID != nil {
		euid = *d.EUID
	}
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Desktops == nil {
		d.Desktops = types.DesktopVersions{}
	}
	if d.Console == nil {
		d.Console = nopConsole{}
	}
	return &Installer{
		deps:  d,
		store: record.NewStore(d.FS, recordPath(d), legacyRecordPath(d)),
		euid:  euid,
	}
}

func recordPath(d Deps) string {
	if d.Config != nil && d.Config.Paths.RecordFile != "" {
		return d.Paths.Expand(d.Config.Paths.RecordFile)
	}
	return d.Paths.RecordPath()
}

func legacyRecordPath(d Deps) string {
	if d.Config != nil && d.Config.Paths.LegacyRecordFile != "" {
		return d.Paths.Expand(d.Config.Paths.LegacyRecordFile)
	}
	return d.Paths.LegacyRecordPath()
}

// RecordPath returns where the config record lives
func (in *Installer) RecordPath() string {
	return in.store.Path()
}

func (in *Installer) refuseRoot() error {
	if in.euid == 0 {
		return errors.New(errors.ErrRunAsRoot, "Don't run this as root, exiting.")
	}
	return nil
}

func (in *Installer) checkTools() error {
	for _, tool := range RequiredTools {
		if !in.deps.Runner.LookPath(tool) {
			return errors.Newf(errors.ErrMissingDependency, "'%s' not found, exiting.", tool).
				WithDetail("tool", tool)
		}
	}
	return nil
}

// detectScheme reads the desktop's light/dark preference for auto
func (in *Installer) detectScheme(ctx context.Context) (types.ColorScheme, error) {
	if in.deps.Stores.Schema == nil {
		return "", errors.New(errors.ErrAutoDetect, "can't detect system light/dark theme preference")
	}
	return settings.DetectColorScheme(ctx, in.deps.Stores.Schema)
}

func (in *Installer) engine() *enable.Engine {
	return enable.NewEngine(in.deps.Stores, in.deps.Extensions, in.deps.Console)
}

type nopConsole struct{}

func (nopConsole) Changing(types.Component, types.Desktop, string) {}
func (nopConsole) Warn(string)                                     {}
func (nopConsole) Notice(string)                                   {}
func (nopConsole) Info(string)                                     {}

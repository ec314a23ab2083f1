package qualia

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/qualia/pkg/build"
	"github.com/arthur-debert/qualia/pkg/config"
	"github.com/arthur-debert/qualia/pkg/desktop"
	"github.com/arthur-debert/qualia/pkg/enable"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/installer"
	"github.com/arthur-debert/qualia/pkg/logging"
	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/progress"
	"github.com/arthur-debert/qualia/pkg/runner"
	"github.com/arthur-debert/qualia/pkg/settings"
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/afero"
)

// Env holds the process level collaborators of the commands. Tests
// build one with fakes.
type Env struct {
	FS     afero.Fs
	Runner runner.Runner
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer

	// Paths builds the path set for a repository directory.
	Paths func(repoDir string) (paths.Paths, error)

	// Desktops overrides desktop detection when non nil.
	Desktops types.DesktopVersions

	// Probe overrides the connectivity probe when non nil.
	Probe installer.ProbeFunc

	// Host returns the machine description for status.
	Host func(ctx context.Context) (*installer.HostInfo, error)

	// EUID overrides the effective user id. Nil means os.Geteuid().
	EUID *int

	// SkipLogging leaves the global logger alone.
	SkipLogging bool
}

// DefaultEnv is the environment of a real run
func DefaultEnv() Env {
	return Env{
		FS:     afero.NewOsFs(),
		Runner: runner.NewExec(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Paths:  paths.New,
		Host:   hostInfo,
	}
}

// hostInfo describes the machine with gopsutil
func hostInfo(ctx context.Context) (*installer.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgHostUnknown)
	}
	return &installer.HostInfo{
		Hostname: info.Hostname,
		OS:       info.OS,
		Platform: info.Platform,
		Version:  info.PlatformVersion,
		Kernel:   info.KernelVersion,
	}, nil
}

// app is the per invocation state shared by the commands
type app struct {
	env       Env
	verbosity int
	format    string
	repoDir   string

	cfg   *config.Config
	paths paths.Paths
}

// setup loads the settings, resolves the paths and configures logging.
// It runs before every command.
func (a *app) setup() error {
	if a.env.Paths == nil {
		a.env.Paths = paths.New
	}
	// Settings may move the repository, so paths are resolved twice.
	p, err := a.env.Paths("")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, MsgErrInitPaths)
	}
	overrides := map[string]interface{}{}
	if a.repoDir != "" {
		overrides["paths.repo_dir"] = a.repoDir
	}
	cfg, err := config.LoadWithOverrides(p.SettingsPath(), overrides)
	if err != nil {
		return err
	}
	if cfg.Paths.RepoDir != "" {
		if p, err = a.env.Paths(cfg.Paths.RepoDir); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, MsgErrInitPaths)
		}
	}
	a.cfg = cfg
	a.paths = p

	if !a.env.SkipLogging {
		logging.SetupLogger(logging.Options{
			Verbosity:  a.verbosity,
			File:       p.LogFilePath(),
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Console:    a.env.Stderr,
		})
	}
	return nil
}

// outputFormat resolves --format against the output stream
func (a *app) outputFormat() (ui.Format, error) {
	f, err := ui.ParseFormat(a.format)
	if err != nil {
		return ui.FormatAuto, err
	}
	out, _ := a.env.Stdout.(*os.File)
	return ui.Resolve(f, out), nil
}

// stores returns the settings stores. When xfconf-query is missing the
// channel files are read instead, which is enough for status.
func (a *app) stores(readOnly bool) settings.Stores {
	st := settings.Stores{
		Schema:   settings.NewGSettings(a.env.Runner),
		Property: settings.NewXfconf(a.env.Runner),
	}
	if readOnly && !st.Property.Available() {
		if file := settings.NewXfconfFile(a.env.FS, settings.DefaultXfconfDir(a.paths.Home())); file.Available() {
			st.Property = file
		}
	}
	return st
}

func (a *app) desktops(ctx context.Context) types.DesktopVersions {
	if a.env.Desktops != nil {
		return a.env.Desktops
	}
	return desktop.NewProber(a.env.Runner).Detect(ctx)
}

func (a *app) probe() installer.ProbeFunc {
	if a.env.Probe != nil {
		return a.env.Probe
	}
	url, timeout := a.cfg.Network.ProbeURL, a.cfg.Network.ProbeTimeout
	return func(ctx context.Context) error {
		return build.Probe(ctx, url, timeout)
	}
}

// installer wires an Installer for the given output format. Verbose runs
// and non terminals print progress as plain lines.
func (a *app) installer(ctx context.Context, format ui.Format, readOnly bool) *installer.Installer {
	console := ui.NewConsole(a.env.Stdout, format)
	animate := format == ui.FormatTerminal && a.verbosity == 0
	return installer.New(installer.Deps{
		FS:         a.env.FS,
		Runner:     a.env.Runner,
		Paths:      a.paths,
		Config:     a.cfg,
		Stores:     a.stores(readOnly),
		Extensions: enable.NewGnomeExtensions(a.env.Runner),
		Prompter:   ui.NewPrompter(a.env.Stdin, a.env.Stdout, format),
		Console:    console,
		Indicator:  progress.New(a.env.Stdout, animate),
		Desktops:   a.desktops(ctx),
		Probe:      a.probe(),
		EUID:       a.env.EUID,
	})
}

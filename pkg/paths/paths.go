package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/types"
)

// Environment variable names
const (
	// EnvRepoDir points at the theme repository checkout
	EnvRepoDir = "QUALIA_REPO_DIR"

	// EnvConfigDir overrides the XDG config directory for qualia
	EnvConfigDir = "QUALIA_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the XDG and repository directories
const (
	// AppDirName is the directory name for qualia specific files
	AppDirName = "qualia"

	// RecordFileName is the name of the config record
	RecordFileName = "config"

	// LegacyRecordFileName is the record name used inside the repository
	// by older installers
	LegacyRecordFileName = ".config"

	// SettingsFileName is the optional user settings file
	SettingsFileName = "installer.toml"

	// LogFileName is the name of the log file
	LogFileName = "qualia.log"

	// BuildDirName is the meson build directory inside a group's source
	BuildDirName = "build"
)

// Paths provides centralized path management for qualia
type Paths interface {
	Home() string
	RepoDir() string
	SourceDir(g types.Group) string
	BuildDir(g types.Group) string
	ConfigDir() string
	StateDir() string
	RecordPath() string
	LegacyRecordPath() string
	SettingsPath() string
	LogFilePath() string
	UserPrefix() string
	SystemPrefix() string
	UserThemesDir() string
	SystemThemesDir() string
	SystemIconsDir() string
	Expand(path string) string
}

type paths struct {
	home      string
	repoDir   string
	xdgConfig string
	xdgState  string
}

// New creates a Paths rooted at repoDir. An empty repoDir falls back to
// QUALIA_REPO_DIR and then to the current directory.
func New(repoDir string) (Paths, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	p := &paths{home: home}

	if repoDir == "" {
		repoDir = os.Getenv(EnvRepoDir)
	}
	if repoDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
		}
		repoDir = cwd
	}
	abs, err := filepath.Abs(p.Expand(repoDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository")
	}
	p.repoDir = abs

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = p.Expand(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}
	p.xdgState = filepath.Join(xdg.StateHome, AppDirName)

	return p, nil
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME.
func GetHomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

func (p *paths) Home() string {
	return p.home
}

// RepoDir returns the theme repository root
func (p *paths) RepoDir() string {
	return p.repoDir
}

// SourceDir returns the submodule directory of a group
func (p *paths) SourceDir(g types.Group) string {
	return filepath.Join(p.repoDir, g.SourceDir())
}

// BuildDir returns the meson build directory of a group
func (p *paths) BuildDir(g types.Group) string {
	return filepath.Join(p.SourceDir(g), BuildDirName)
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

// RecordPath returns the default location of the config record
func (p *paths) RecordPath() string {
	return filepath.Join(p.xdgConfig, RecordFileName)
}

// LegacyRecordPath returns where older installers kept the record
func (p *paths) LegacyRecordPath() string {
	return filepath.Join(p.repoDir, LegacyRecordFileName)
}

func (p *paths) SettingsPath() string {
	return filepath.Join(p.xdgConfig, SettingsFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// UserPrefix is the install prefix of per-user builds
func (p *paths) UserPrefix() string {
	return filepath.Join(p.home, ".local")
}

// SystemPrefix is the install prefix of system wide builds
func (p *paths) SystemPrefix() string {
	return "/usr"
}

// UserThemesDir is where the GTK themes are installed for the user
func (p *paths) UserThemesDir() string {
	return filepath.Join(p.UserPrefix(), "share", "themes")
}

func (p *paths) SystemThemesDir() string {
	return filepath.Join(p.SystemPrefix(), "share", "themes")
}

func (p *paths) SystemIconsDir() string {
	return filepath.Join(p.SystemPrefix(), "share", "icons")
}

// Expand expands a leading ~ to the home directory
func (p *paths) Expand(path string) string {
	return expandHome(path, p.home)
}

func expandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	// ~user is left alone
	return path
}

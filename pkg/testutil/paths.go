package testutil

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/qualia/pkg/paths"
	"github.com/arthur-debert/qualia/pkg/types"
)

// FakePaths is a paths.Paths rooted under one directory, system
// locations included, so tests can use a memory filesystem or a temp dir
type FakePaths struct {
	Root string
}

var _ paths.Paths = (*FakePaths)(nil)

// NewFakePaths roots every location under root
func NewFakePaths(root string) *FakePaths {
	return &FakePaths{Root: root}
}

func (f *FakePaths) Home() string {
	return filepath.Join(f.Root, "home")
}

func (f *FakePaths) RepoDir() string {
	return filepath.Join(f.Root, "repo")
}

func (f *FakePaths) SourceDir(g types.Group) string {
	return filepath.Join(f.RepoDir(), g.SourceDir())
}

func (f *FakePaths) BuildDir(g types.Group) string {
	return filepath.Join(f.SourceDir(g), paths.BuildDirName)
}

func (f *FakePaths) ConfigDir() string {
	return filepath.Join(f.Home(), ".config", paths.AppDirName)
}

func (f *FakePaths) StateDir() string {
	return filepath.Join(f.Home(), ".local", "state", paths.AppDirName)
}

func (f *FakePaths) RecordPath() string {
	return filepath.Join(f.ConfigDir(), paths.RecordFileName)
}

func (f *FakePaths) LegacyRecordPath() string {
	return filepath.Join(f.RepoDir(), paths.LegacyRecordFileName)
}

func (f *FakePaths) SettingsPath() string {
	return filepath.Join(f.ConfigDir(), paths.SettingsFileName)
}

func (f *FakePaths) LogFilePath() string {
	return filepath.Join(f.StateDir(), paths.LogFileName)
}

func (f *FakePaths) UserPrefix() string {
	return filepath.Join(f.Home(), ".local")
}

func (f *FakePaths) SystemPrefix() string {
	return filepath.Join(f.Root, "usr")
}

func (f *FakePaths) UserThemesDir() string {
	return filepath.Join(f.UserPrefix(), "share", "themes")
}

func (f *FakePaths) SystemThemesDir() string {
	return filepath.Join(f.SystemPrefix(), "share", "themes")
}

func (f *FakePaths) SystemIconsDir() string {
	return filepath.Join(f.SystemPrefix(), "share", "icons")
}

// Expand expands a leading ~/ to Home
func (f *FakePaths) Expand(path string) string {
	if path == "~" {
		return f.Home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(f.Home(), path[2:])
	}
	return path
}

package config

import (
	"sort"
	"time"
)

// Config is the decoded installer settings
type Config struct {
	Paths   Paths    `koanf:"paths"`
	Firefox Profiles `koanf:"firefox"`
	VSCode  Profiles `koanf:"vscode"`
	Network Network  `koanf:"network"`
	Logging Logging  `koanf:"logging"`
}

// Paths holds user-configurable locations. Empty values fall back to the
// defaults computed by pkg/paths.
type Paths struct {
	RepoDir          string `koanf:"repo_dir"`
	RecordFile       string `koanf:"record_file"`
	LegacyRecordFile string `koanf:"legacy_record_file"`
}

// Profiles maps a variant name to the directory whose presence makes that
// variant available.
type Profiles struct {
	Profiles map[string]string `koanf:"profiles"`
}

// Names returns the variant names sorted, so detection order is stable.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p.Profiles))
	for name := range p.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Network holds the connectivity probe settings
type Network struct {
	ProbeURL     string        `koanf:"probe_url"`
	ProbeTimeout time.Duration `koanf:"probe_timeout"`
}

// Logging holds log file rotation settings
type Logging struct {
	MaxSizeMB  int `koanf:"max_size_mb"`
	MaxBackups int `koanf:"max_backups"`
	MaxAgeDays int `koanf:"max_age_days"`
}

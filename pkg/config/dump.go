package config

import (
	"strings"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

type dumpConfig struct {
	Paths struct {
		RepoDir          string `toml:"repo_dir"`
		RecordFile       string `toml:"record_file"`
		LegacyRecordFile string `toml:"legacy_record_file"`
	} `toml:"paths"`
	Firefox struct {
		Profiles map[string]string `toml:"profiles"`
	} `toml:"firefox"`
	VSCode struct {
		Profiles map[string]string `toml:"profiles"`
	} `toml:"vscode"`
	Network struct {
		ProbeURL     string `toml:"probe_url"`
		ProbeTimeout string `toml:"probe_timeout"`
	} `toml:"network"`
	Logging struct {
		MaxSizeMB  int `toml:"max_size_mb"`
		MaxBackups int `toml:"max_backups"`
		MaxAgeDays int `toml:"max_age_days"`
	} `toml:"logging"`
}

// Dump renders the effective settings as TOML
func Dump(cfg *Config) ([]byte, error) {
	var d dumpConfig
	d.Paths.RepoDir = cfg.Paths.RepoDir
	d.Paths.RecordFile = cfg.Paths.RecordFile
	d.Paths.LegacyRecordFile = cfg.Paths.LegacyRecordFile
	d.Firefox.Profiles = cfg.Firefox.Profiles
	d.VSCode.Profiles = cfg.VSCode.Profiles
	d.Network.ProbeURL = cfg.Network.ProbeURL
	d.Network.ProbeTimeout = cfg.Network.ProbeTimeout.String()
	d.Logging.MaxSizeMB = cfg.Logging.MaxSizeMB
	d.Logging.MaxBackups = cfg.Logging.MaxBackups
	d.Logging.MaxAgeDays = cfg.Logging.MaxAgeDays

	out, err := toml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render settings")
	}
	return out, nil
}

// GenerateSettingsContent returns the defaults with every assignment
// commented out, suitable as a starting installer.toml.
func GenerateSettingsContent() string {
	lines := strings.Split(GetDefaultsContent(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			out = append(out, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			out = append(out, line)
		default:
			out = append(out, "# "+line)
		}
	}
	return strings.Join(out, "\n")
}

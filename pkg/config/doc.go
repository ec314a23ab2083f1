// Package config loads the installer settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. $XDG_CONFIG_HOME/qualia/installer.toml, when present
//  3. QUALIA_<SECTION>_<KEY> environment variables
//  4. overrides given by the caller (command line flags)
//
// These settings describe the host (where the repository lives, where
// browser and editor profiles are found). The user's theme choices live in
// the config record, see pkg/record.
package config

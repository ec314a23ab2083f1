// Package paths provides centralized path handling for qualia.
//
// It resolves the XDG locations used by the installer and the layout of
// the theme repository:
//
//   - Config: $XDG_CONFIG_HOME/qualia (the config record and installer.toml)
//   - State: $XDG_STATE_HOME/qualia (the log file)
//   - Repository: the checkout holding install scripts and src/<group>
//     submodules
//
// It also knows where each component's files land once installed, which
// the installer uses to report components that were disabled but are
// still on disk.
//
// # Environment Variables
//
//   - QUALIA_REPO_DIR: repository location (default: current directory)
//   - QUALIA_CONFIG_DIR: override $XDG_CONFIG_HOME/qualia
package paths

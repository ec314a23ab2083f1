package qualia

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install the Qualia desktop themes"
	MsgInstallShort    = "Build, install and enable the themes"
	MsgRestoreShort    = "Restore the themes replaced by qualia"
	MsgCleanShort      = "Remove the meson build directories"
	MsgStatusShort     = "Show the installed configuration and live settings"
	MsgConfigShort     = "Print the installer settings"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgCleaned        = "Removed %s"
	MsgNothingToClean = "No build directories to remove."
	MsgRestored       = "Restored %d setting(s)."
	MsgNothingRestore = "No settings to restore."
	MsgSkipped        = "Skipped %s in %s: %s"
	MsgInterrupted    = "Interrupted."

	// Error messages
	MsgErrorPrefix   = "Error:"
	MsgErrInitPaths  = "failed to initialize paths"
	MsgCommandOutput = "Command output:"
	MsgVersionFormat = "qualia version %s\n  commit: %s\n  built:  %s\n"
	MsgHostUnknown   = "failed to read host information"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat      = "Output format: auto, terminal, text, json or yaml"
	MsgFlagRepo        = "Theme repository checkout (default: current directory)"
	MsgFlagReconfigure = "Ask every question again"
	MsgFlagForce       = "Rebuild every enabled theme even if up to date"
	MsgFlagNoUpdate    = "Don't update the theme sources before building"
	MsgFlagAccent      = "Choose the accent color again"
	MsgFlagTheme       = "Choose the light or dark variant again"
	MsgFlagSyntax      = "Choose the VS Code syntax highlighting again"
	MsgFlagFirefox     = "Choose the Firefox profiles again"
	MsgFlagDefaults    = "Print the built-in defaults"
	MsgFlagGenerate    = "Print a commented settings file template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/clean-long.txt
	msgCleanLongRaw string
	MsgCleanLong    = strings.TrimSpace(msgCleanLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

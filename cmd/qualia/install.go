package qualia

import (
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// installFlags are shared by the root command and install
type installFlags struct {
	reconfigure bool
	force       bool
	noUpdate    bool
	accent      bool
	theme       bool
	syntax      bool
	firefox     bool
}

func (f *installFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.reconfigure, "reconfigure", "r", false, MsgFlagReconfigure)
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVarP(&f.noUpdate, "no-update", "n", false, MsgFlagNoUpdate)
	cmd.Flags().BoolVarP(&f.accent, "accent", "a", false, MsgFlagAccent)
	cmd.Flags().BoolVarP(&f.theme, "theme", "t", false, MsgFlagTheme)
	cmd.Flags().BoolVarP(&f.syntax, "syntax", "s", false, MsgFlagSyntax)
	cmd.Flags().BoolVarP(&f.firefox, "firefox", "F", false, MsgFlagFirefox)
}

func (f installFlags) runConfig(verbosity int) types.RunConfig {
	return types.RunConfig{
		Reconfigure:        f.reconfigure,
		Force:              f.force,
		NoUpdate:           f.noUpdate,
		Verbose:            verbosity,
		AskAccent:          f.accent,
		AskTheme:           f.theme,
		AskSyntax:          f.syntax,
		AskFirefoxSettings: f.firefox,
	}
}

func newInstallCmd(a *app) *cobra.Command {
	var flags installFlags
	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, a, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runInstall(cmd *cobra.Command, a *app, flags installFlags) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}
	run := flags.runConfig(a.verbosity)
	log.Info().
		Str("repo", a.paths.RepoDir()).
		Bool("reconfigure", run.Reconfigure).
		Bool("force", run.Force).
		Bool("no_update", run.NoUpdate).
		Msg("Installing themes")

	report, err := a.installer(cmd.Context(), format, false).Install(cmd.Context(), run)
	if err != nil {
		return err
	}
	log.Debug().Int("built", len(report.Built)).Int("writes", report.Enable.Writes).Msg("Install report")
	return nil
}

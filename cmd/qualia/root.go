package qualia

import (
	"github.com/arthur-debert/qualia/cmd/qualia/topics"
	"github.com/arthur-debert/qualia/internal/version"
	cobratopics "github.com/arthur-debert/qualia/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(DefaultEnv())
}

// NewRootCmdWithEnv creates the root command running against env
func NewRootCmdWithEnv(env Env) *cobra.Command {
	initTemplateFormatting()

	a := &app{env: env}
	var flags installFlags

	rootCmd := &cobra.Command{
		Use:     "qualia",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		// Without a command qualia installs.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, a, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	if env.Stdin != nil {
		rootCmd.SetIn(env.Stdin)
	}
	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.repoDir, "repo", "", MsgFlagRepo)
	flags.register(rootCmd)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newRestoreCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := cobratopics.Options{
		Extensions: []string{".md"},
		Renderer:   cobratopics.NewMarkdownRenderer(stdoutIsTerminal()),
	}
	if err := cobratopics.InitializeWithOptions(rootCmd, topics.FS, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			cmd.GroupID = "misc"
		}
	}

	return rootCmd
}

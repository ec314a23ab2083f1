package qualia

import (
	"fmt"

	"github.com/arthur-debert/qualia/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var defaults, generate bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case generate:
				_, err := fmt.Fprintln(out, config.GenerateSettingsContent())
				return err
			case defaults:
				_, err := fmt.Fprint(out, config.GetDefaultsContent())
				return err
			}

			data, err := config.Dump(a.cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&generate, "generate", false, MsgFlagGenerate)
	cmd.MarkFlagsMutuallyExclusive("defaults", "generate")
	return cmd
}

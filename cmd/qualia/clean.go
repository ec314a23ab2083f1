package qualia

import (
	"fmt"

	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/spf13/cobra"
)

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "clean",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			removed, err := a.installer(cmd.Context(), format, false).Clean(cmd.Context())
			console := ui.NewConsole(a.env.Stdout, format)
			for _, dir := range removed {
				console.Info(fmt.Sprintf(MsgCleaned, dir))
			}
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				console.Info(MsgNothingToClean)
			}
			return nil
		},
	}
}

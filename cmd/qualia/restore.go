package qualia

import (
	"fmt"

	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/spf13/cobra"
)

func desktopNames() []string {
	var names []string
	for _, d := range types.AllDesktops() {
		names = append(names, string(d))
	}
	return names
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "restore [desktop]",
		Short:     MsgRestoreShort,
		Long:      MsgRestoreLong,
		GroupID:   "core",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: desktopNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			var d types.Desktop
			if len(args) == 1 {
				d = types.Desktop(args[0])
			}

			res, err := a.installer(cmd.Context(), format, false).Restore(cmd.Context(), d)
			if err != nil {
				return err
			}

			console := ui.NewConsole(a.env.Stdout, format)
			for _, skip := range res.Skipped {
				if a.verbosity == 0 {
					break
				}
				console.Info(fmt.Sprintf(MsgSkipped, skip.Component.Label(), skip.Desktop.Pretty(), skip.Reason))
			}
			if res.Writes == 0 {
				console.Info(MsgNothingRestore)
				return nil
			}
			console.Success(fmt.Sprintf(MsgRestored, res.Writes))
			return nil
		},
	}
}

package qualia

import (
	"github.com/arthur-debert/qualia/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}

			st, err := a.installer(cmd.Context(), format, true).Status(cmd.Context())
			if err != nil {
				return err
			}
			if a.env.Host != nil {
				if h, err := a.env.Host(cmd.Context()); err != nil {
					log.Debug().Err(err).Msg("No host information")
				} else {
					st.Host = h
				}
			}

			renderer, err := ui.NewRenderer(format, a.env.Stdout)
			if err != nil {
				return err
			}
			return renderer.RenderResult(st)
		},
	}
}

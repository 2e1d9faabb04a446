package cli

import (
	"fmt"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Dashboard: progress across all modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Session.State(cmd.Context())
			onb, _ := app.Onboarding.Load(cmd.Context())
			out := formatter.RenderBox(app.Dict.T("dashboard.title"),
				formatter.RenderStatus(app.Dict, st, onb))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

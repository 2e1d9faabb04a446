package cli

import (
	"fmt"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/spf13/cobra"
)

func newFinanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Adjust pricing and see what it takes to hit your goal",
	}

	cmd.AddCommand(
		newFinanceShowCmd(app),
		newFinanceSetCmd(app),
	)

	return cmd
}

func newFinanceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the working figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Session.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderFinance(app.Dict, st.Finance))
			return nil
		},
	}
}

func newFinanceSetCmd(app *App) *cobra.Command {
	var price, cost, target float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override price, cost or monthly target",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch session.FinancePatch
			if cmd.Flags().Changed("price") {
				patch.Price = &price
			}
			if cmd.Flags().Changed("cost") {
				patch.Cost = &cost
			}
			if cmd.Flags().Changed("target") {
				patch.MonthlyTarget = &target
			}
			if patch.Price == nil && patch.Cost == nil && patch.MonthlyTarget == nil {
				return fmt.Errorf("nothing to set (use --price, --cost or --target)")
			}

			if err := app.Session.UpdateFinance(cmd.Context(), patch); err != nil {
				return err
			}
			st := app.Session.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderFinance(app.Dict, st.Finance))
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	cmd.Flags().Float64Var(&cost, "cost", 0, "unit cost")
	cmd.Flags().Float64Var(&target, "target", 0, "monthly revenue target")

	return cmd
}

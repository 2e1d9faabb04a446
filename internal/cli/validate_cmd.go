package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Work through the idea validation checklist",
	}

	cmd.AddCommand(
		newValidateListCmd(app),
		newValidateCheckCmd(app, true),
		newValidateCheckCmd(app, false),
		newValidateNotesCmd(app),
	)

	return cmd
}

func newValidateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Session.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderChecklist(app.Dict, st.Validation))
			return nil
		},
	}
}

func newValidateCheckCmd(app *App, value bool) *cobra.Command {
	use, short := "check <n>", "Mark checklist item n as passed"
	if !value {
		use, short = "uncheck <n>", "Mark checklist item n as not passed"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item number %q", args[0])
			}
			// Items are numbered from 1 in the display.
			if err := app.Session.SetCheck(cmd.Context(), n-1, value); err != nil {
				return err
			}
			st := app.Session.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderChecklist(app.Dict, st.Validation))
			return nil
		},
	}
}

func newValidateNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes [text]",
		Short: "Set or show the validation notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				notes := app.Session.State(cmd.Context()).Validation.Notes
				fmt.Fprintln(cmd.OutOrStdout(), orNone(app.Dict, notes))
				return nil
			}
			return app.Session.SetNotes(cmd.Context(), strings.Join(args, " "))
		},
	}
}

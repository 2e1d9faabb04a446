package cli

import (
	"fmt"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/spf13/cobra"
)

func newBrandingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branding",
		Short: "Edit your brand name, promise and pitch",
	}

	cmd.AddCommand(
		newBrandingShowCmd(app),
		newBrandingSetCmd(app),
	)

	return cmd
}

func newBrandingShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved branding",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.Session.State(cmd.Context()).Branding
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"FIELD", "VALUE"},
				[][]string{
					{"name", orNone(app.Dict, b.Name)},
					{"promise", orNone(app.Dict, b.Promise)},
					{"pitch", orNone(app.Dict, b.Pitch)},
				},
			))
			return nil
		},
	}
}

func newBrandingSetCmd(app *App) *cobra.Command {
	var name, promise, pitch string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set branding fields (generation never overwrites these)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch session.BrandingPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("promise") {
				patch.Promise = &promise
			}
			if cmd.Flags().Changed("pitch") {
				patch.Pitch = &pitch
			}
			if patch.Name == nil && patch.Promise == nil && patch.Pitch == nil {
				return fmt.Errorf("nothing to set (use --name, --promise or --pitch)")
			}

			if err := app.Session.UpdateBranding(cmd.Context(), patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.StyleGreen.Render("✓ saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "brand name")
	cmd.Flags().StringVar(&promise, "promise", "", "what you promise customers")
	cmd.Flags().StringVar(&pitch, "pitch", "", "elevator pitch")

	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/i18n"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "theme [light|dark]",
		Short:       "Toggle or set the color theme",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipGateAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var next string
			if len(args) == 1 {
				next = strings.ToLower(args[0])
				if next != "light" && next != "dark" {
					return fmt.Errorf("unknown theme %q (light|dark)", args[0])
				}
			} else {
				// No argument toggles, defaulting to dark.
				next = "dark"
				if app.Flags.Theme() == "dark" {
					next = "light"
				}
			}

			if err := app.Flags.SetTheme(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", app.Dict.T("common.theme_changed"), next)
			return nil
		},
	}
}

func newLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "lang [fr|en]",
		Short:       "Toggle or set the display language",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipGateAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			next := ""
			if len(args) == 1 {
				next = strings.ToLower(args[0])
			} else if app.Dict.Lang() == "fr" {
				next = "en"
			} else {
				next = "fr"
			}

			dict, err := i18n.Load(next)
			if err != nil {
				return err
			}
			if err := app.Flags.SetLanguage(dict.Lang()); err != nil {
				return err
			}
			app.Dict = dict
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
				app.Dict.T("common.language_changed"), strings.ToUpper(dict.Lang()))
			return nil
		},
	}
}

func newUnlockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "unlock",
		Short:       "Unlock the app after purchase",
		Annotations: map[string]string{skipGateAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Flags.SetPaid(true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(app.Dict.T("gate.unlocked")))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "reset",
		Short:       "Delete everything nexus has saved",
		Annotations: map[string]string{skipGateAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !app.Interactive {
				return fmt.Errorf("refusing to reset without --force in a non-interactive run")
			}
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "Delete all saved data? [y/N] ")
				var answer string
				fmt.Fscanln(cmd.InOrStdin(), &answer)
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					return nil
				}
			}

			app.States.Delete(cmd.Context())
			app.Profiles.Delete(cmd.Context())
			app.Flags.Clear()

			fmt.Fprintln(cmd.OutOrStdout(), app.Dict.T("common.reset_done"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	return cmd
}

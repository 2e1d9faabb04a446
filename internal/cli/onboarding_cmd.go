package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/i18n"
	"github.com/spf13/cobra"
)

func newOnboardingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Answer or review the onboarding questions",
	}

	cmd.AddCommand(
		newOnboardingSetCmd(app),
		newOnboardingShowCmd(app),
	)

	return cmd
}

func newOnboardingSetCmd(app *App) *cobra.Command {
	var goal, timeBracket, skills string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save your goal, weekly hours and skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Existing answers pre-fill the form.
			existing, _ := app.Onboarding.Load(cmd.Context())
			if goal == "" {
				goal = existing.Goal
			}
			if timeBracket == "" {
				timeBracket = string(existing.Time)
			}
			if skills == "" {
				skills = existing.Skills
			}

			if app.Interactive && !cmd.Flags().Changed("goal") &&
				!cmd.Flags().Changed("time") && !cmd.Flags().Changed("skills") {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("What do you want to achieve?").
							Placeholder("Replace my salary within a year").
							Value(&goal),
						timeSelect(&timeBracket),
						huh.NewInput().
							Title("What are you already good at?").
							Placeholder("writing, design, sales...").
							Value(&skills),
					),
				)
				if err := runForm(form); err != nil {
					return err
				}
			}

			profile := domain.OnboardingProfile{
				Goal:   goal,
				Time:   domain.TimeBracket(timeBracket),
				Skills: skills,
			}
			if err := app.Onboarding.Save(cmd.Context(), profile); err != nil {
				if domain.IsValidation(err) {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), app.Dict.T("onboarding.save_failed")+":", err)
				return err
			}

			done, pct := profile.Progress()
			msg := app.Dict.T("onboarding.saved")
			if done < domain.OnboardingFieldCount {
				msg = app.Dict.T("onboarding.saved_partial")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("✓"),
				fmt.Sprintf("%s (%d%%)", msg, pct))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "what you want to achieve")
	cmd.Flags().StringVar(&timeBracket, "time", "", "weekly hours bracket (2-5|5-10|10-20|20+)")
	cmd.Flags().StringVar(&skills, "skills", "", "skills you bring")

	return cmd
}

func newOnboardingShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved onboarding answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, found := app.Onboarding.Load(cmd.Context())
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render(app.Dict.T("common.none")))
				return nil
			}

			_, pct := profile.Progress()
			out := formatter.RenderTable(
				[]string{"FIELD", "VALUE"},
				[][]string{
					{"goal", orNone(app.Dict, profile.Goal)},
					{"time", orNone(app.Dict, string(profile.Time))},
					{"skills", orNone(app.Dict, profile.Skills)},
				},
			)
			out += "\n" + formatter.RenderProgress(float64(pct)/100, 15) +
				"  " + app.Dict.Tf("onboarding.progress", pct) + "\n"
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// orNone substitutes the localized none sentinel for empty display values.
func orNone(dict *i18n.Dictionary, s string) string {
	if s == "" {
		return formatter.StyleDim.Render(dict.T("common.none"))
	}
	return s
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect the business plan",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var name, desc, projType, audience, budget, exp, goalStr string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive scores, an offer and a roadmap from your project",
		Long: "Derives the viability scores, a suggested offer and a 4-phase roadmap.\n" +
			"Regenerating replaces the previous plan and resets roadmap progress and\n" +
			"the validation checklist; branding text you entered is kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			anyFlag := cmd.Flags().Changed("name") || cmd.Flags().Changed("desc") ||
				cmd.Flags().Changed("type") || cmd.Flags().Changed("audience") ||
				cmd.Flags().Changed("budget") || cmd.Flags().Changed("exp") ||
				cmd.Flags().Changed("goal")

			if app.Interactive && !anyFlag {
				// Pre-fill from the last generated project, if any.
				if prev := app.Session.State(cmd.Context()).Project; prev != nil {
					name = prev.Name
					desc = prev.Desc
					projType = string(prev.Type)
					audience = string(prev.Audience)
					budget = string(prev.Budget)
					exp = string(prev.Exp)
					if prev.GoalMonthly > 0 {
						goalStr = strconv.FormatFloat(prev.GoalMonthly, 'f', -1, 64)
					}
				}

				form := huh.NewForm(
					huh.NewGroup(
						requiredInput("Project name", "My studio", &name),
						requiredInput("Describe it in one sentence", "I build websites for local shops", &desc),
					),
					huh.NewGroup(
						projectTypeSelect(&projType),
						audienceSelect(&audience),
						budgetSelect(&budget),
						experienceSelect(&exp),
						optionalNumberInput("Monthly revenue goal", "2000", &goalStr),
					),
				)
				if err := runForm(form); err != nil {
					return err
				}
			}

			var goal float64
			if s := strings.TrimSpace(goalStr); s != "" {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid monthly goal %q: %w", goalStr, err)
				}
				goal = v
			}

			project := domain.ProjectProfile{
				Name:        strings.TrimSpace(name),
				Desc:        strings.TrimSpace(desc),
				Type:        domain.ProjectType(projType),
				Audience:    domain.Audience(audience),
				Budget:      domain.BudgetBracket(budget),
				Exp:         domain.ExperienceLevel(exp),
				GoalMonthly: goal,
			}

			results, err := app.Session.Generate(cmd.Context(), project)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPlan(app.Dict, results))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&desc, "desc", "", "one-sentence description (required)")
	cmd.Flags().StringVar(&projType, "type", "service", "service|digital|subscription|physical|audience")
	cmd.Flags().StringVar(&audience, "audience", "b2c", "b2c|b2b|both")
	cmd.Flags().StringVar(&budget, "budget", "0-50", "starting budget bracket (0-50|50-200|200-1000|1000+)")
	cmd.Flags().StringVar(&exp, "exp", "beginner", "beginner|intermediate|expert")
	cmd.Flags().StringVar(&goalStr, "goal", "", "monthly revenue goal")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, found := app.Session.Results(cmd.Context())
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render(app.Dict.T("dashboard.no_plan")))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPlan(app.Dict, results))
			return nil
		},
	}
}

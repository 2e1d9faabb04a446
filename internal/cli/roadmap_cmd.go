package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/cli/formatter"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTaskID resolves a user-typed id (full or unique prefix) against the
// current roadmap.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks := app.Session.State(ctx).Roadmap.Tasks

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Track the generated roadmap",
	}

	cmd.AddCommand(
		newRoadmapListCmd(app),
		newRoadmapTickCmd(app),
		newRoadmapAddCmd(app),
		newRoadmapRemoveCmd(app),
		newRoadmapUICmd(app),
	)

	return cmd
}

func newRoadmapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roadmap tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Session.State(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderRoadmap(st.Roadmap.Tasks))

			done, total := domain.TaskProgress(st.Roadmap.Tasks)
			if total > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s  %s\n",
					formatter.RenderProgress(formatter.Ratio(done, total), 20),
					app.Dict.Tf("roadmap.progress", done, total))
			}
			return nil
		},
	}
}

func newRoadmapTickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tick <task-id>",
		Short: "Toggle a task done/todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Session.ToggleTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.CheckMark(task.Done), task.Title)
			return nil
		},
	}
}

func newRoadmapAddCmd(app *App) *cobra.Command {
	var detail string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add your own task (always phase S4)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Session.AddTask(cmd.Context(), strings.Join(args, " "), detail)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
				formatter.StyleGreen.Render("+"),
				formatter.StyleDim.Render(formatter.ShortID(task.ID)),
				task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&detail, "detail", "", "optional task detail")
	return cmd
}

func newRoadmapRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Session.RemoveTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleRed.Render("-"), formatter.ShortID(id))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/nolimit-nexus/nexus/internal/i18n"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/nolimit-nexus/nexus/internal/state"
	"github.com/spf13/cobra"
)

// App holds references to the services and repositories CLI commands use.
type App struct {
	Session    session.Service
	Onboarding session.OnboardingService
	States     state.AppStateRepo
	Profiles   state.OnboardingRepo
	Flags      state.FlagRepo
	Dict       *i18n.Dictionary

	// Interactive is true when stdin is a terminal; wizards and
	// confirmation prompts only run then.
	Interactive bool
}

// annotation key marking commands that bypass the paid gate.
const skipGateAnnotation = "nexus_skip_gate"

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewRootCmd creates the top-level "nexus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Business plan generator and tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return enforcePaidGate(app, cmd)
		},
	}

	root.AddCommand(
		newOnboardingCmd(app),
		newPlanCmd(app),
		newRoadmapCmd(app),
		newValidateCmd(app),
		newFinanceCmd(app),
		newBrandingCmd(app),
		newStatusCmd(app),
		newThemeCmd(app),
		newLangCmd(app),
		newUnlockCmd(app),
		newResetCmd(app),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the nexus version",
		Annotations: map[string]string{skipGateAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nexus %s\n", Version)
		},
	}
}

// enforcePaidGate blocks app commands until the paid flag is set. The flag
// is a local marker, not a license check.
func enforcePaidGate(app *App, cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipGateAnnotation] == "true" {
			return nil
		}
	}
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return nil
	}
	if !app.Flags.Paid() {
		return fmt.Errorf("%s", app.Dict.T("gate.locked"))
	}
	return nil
}

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/i18n"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/nolimit-nexus/nexus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	states, profiles, flags := testutil.NewTestRepos(t)
	dict, err := i18n.Load("en")
	require.NoError(t, err)
	return &App{
		Session:     session.NewService(states, profiles),
		Onboarding:  session.NewOnboardingService(profiles),
		States:      states,
		Profiles:    profiles,
		Flags:       flags,
		Dict:        dict,
		Interactive: false,
	}
}

// execute runs a fresh command tree against the app, capturing output.
// A fresh tree per call keeps flag state from leaking between runs.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPaidGate_BlocksAppCommands(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), app.Dict.T("gate.locked"))

	_, err = execute(t, app, "plan", "show")
	assert.Error(t, err)
}

func TestPaidGate_SettingsAreExempt(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	out, err = execute(t, app, "lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "EN")
}

func TestUnlockOpensTheGate(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "unlock")
	require.NoError(t, err)
	assert.Contains(t, out, app.Dict.T("gate.unlocked"))
	assert.True(t, app.Flags.Paid())

	out, err = execute(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, app.Dict.T("dashboard.no_plan"))
}

func TestPlanGenerate_WithFlags(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	out, err := execute(t, app, "plan", "generate",
		"--name", "Side Studio",
		"--desc", "Websites for local shops",
		"--type", "service",
		"--audience", "b2c",
		"--goal", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "Side Studio")

	results, found := app.Session.Results(context.Background())
	require.True(t, found)
	assert.Equal(t, domain.TypeService, results.Project.Type)
	assert.Equal(t, 2000.0, results.Project.GoalMonthly)
}

func TestPlanGenerate_MissingNameFails(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	_, err := execute(t, app, "plan", "generate", "--desc", "something")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPlanGenerate_RejectsUnknownBudget(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	_, err := execute(t, app, "plan", "generate",
		"--name", "Side Studio", "--desc", "something", "--budget", "bogus")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = execute(t, app, "plan", "generate",
		"--name", "Side Studio", "--desc", "something", "--exp", "wizard")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRoadmapAddTickRemove(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	out, err := execute(t, app, "roadmap", "add", "Write", "the", "newsletter", "--detail", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Write the newsletter")

	st := app.Session.State(context.Background())
	require.Len(t, st.Roadmap.Tasks, 1)
	id := st.Roadmap.Tasks[0].ID

	// Prefix resolution is enough to address the task.
	out, err = execute(t, app, "roadmap", "tick", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Write the newsletter")
	assert.True(t, app.Session.State(context.Background()).Roadmap.Tasks[0].Done)

	_, err = execute(t, app, "roadmap", "rm", id)
	require.NoError(t, err)
	assert.Empty(t, app.Session.State(context.Background()).Roadmap.Tasks)
}

func TestResolveTaskID(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	st := app.States.Load(ctx)
	st.Roadmap.Tasks = []domain.Task{
		{ID: "abc123", Title: "one"},
		{ID: "abd999", Title: "two"},
	}
	require.NoError(t, app.States.Save(ctx, st))

	id, err := resolveTaskID(ctx, app, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	id, err = resolveTaskID(ctx, app, "abd")
	require.NoError(t, err)
	assert.Equal(t, "abd999", id)

	_, err = resolveTaskID(ctx, app, "ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveTaskID(ctx, app, "zz")
	assert.Error(t, err)

	_, err = resolveTaskID(ctx, app, "")
	assert.Error(t, err)
}

func TestValidateCheckUsesDisplayIndexing(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	_, err := execute(t, app, "validate", "check", "1")
	require.NoError(t, err)
	assert.True(t, app.Session.State(context.Background()).Validation.Checks[0])

	_, err = execute(t, app, "validate", "check", "0")
	assert.Error(t, err)
	_, err = execute(t, app, "validate", "check", "99")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))
	require.NoError(t, app.Onboarding.Save(context.Background(), testutil.Onboarding()))

	// Non-interactive runs refuse to reset without --force.
	_, err := execute(t, app, "reset")
	require.Error(t, err)

	out, err := execute(t, app, "reset", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, app.Dict.T("common.reset_done"))

	assert.False(t, app.Flags.Paid())
	_, found := app.Profiles.Load(context.Background())
	assert.False(t, found)
}

func TestShowCommandsUseLocalizedNoneSentinel(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.Flags.SetPaid(true))

	out, err := execute(t, app, "onboarding", "show")
	require.NoError(t, err)
	assert.Contains(t, out, app.Dict.T("common.none"))

	out, err = execute(t, app, "branding", "show")
	require.NoError(t, err)
	assert.Contains(t, out, app.Dict.T("common.none"))
}

func TestVersionSkipsGate(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nexus ")
}

func TestLangSwitchesDictionary(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "lang", "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", app.Dict.Lang())
	assert.Equal(t, "fr", app.Flags.Language())

	// No argument toggles back.
	_, err = execute(t, app, "lang")
	require.NoError(t, err)
	assert.Equal(t, "en", app.Dict.Lang())
}

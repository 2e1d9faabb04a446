package state_test

import (
	"context"
	"testing"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/state"
	"github.com/nolimit-nexus/nexus/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) (state.AppStateRepo, state.OnboardingRepo, *store.MemRecordStore) {
	t.Helper()
	records := store.NewMemRecordStore()
	chunks := store.NewChunkStore(records)
	return state.NewAppStateRepo(chunks), state.NewOnboardingRepo(chunks), records
}

func TestAppStateRepo_LoadAbsentIsNormalizedZero(t *testing.T) {
	states, _, _ := newRepos(t)

	st := states.Load(context.Background())
	assert.Nil(t, st.Project)
	assert.Nil(t, st.ProjectResults)
	assert.Len(t, st.Validation.Checks, len(domain.ChecklistItems))
	assert.NotNil(t, st.Roadmap.Tasks)
	assert.Empty(t, st.Roadmap.Tasks)
}

func TestAppStateRepo_RoundTrip(t *testing.T) {
	states, _, records := newRepos(t)
	ctx := context.Background()

	st := states.Load(ctx)
	st.Branding.Name = "Nexus"
	st.Validation.Notes = "first interview done"
	st.Roadmap.Tasks = []domain.Task{{ID: "a", Phase: domain.PhaseFoundation, Title: "t"}}
	require.NoError(t, states.Save(ctx, st))

	loaded := states.Load(ctx)
	assert.Equal(t, "Nexus", loaded.Branding.Name)
	assert.Equal(t, "first interview done", loaded.Validation.Notes)
	require.Len(t, loaded.Roadmap.Tasks, 1)
	assert.Equal(t, "a", loaded.Roadmap.Tasks[0].ID)

	// The aggregate lands under the nb_appdata chunk keys.
	_, found := records.Get(state.KeyAppData + "__meta")
	assert.True(t, found)
	_, found = records.Get(state.KeyAppData + "__0")
	assert.True(t, found)
}

func TestAppStateRepo_Delete(t *testing.T) {
	states, _, records := newRepos(t)
	ctx := context.Background()

	require.NoError(t, states.Save(ctx, states.Load(ctx)))
	states.Delete(ctx)

	assert.Equal(t, 0, records.Len())
	assert.Nil(t, states.Load(ctx).Project)
}

func TestOnboardingRepo_RoundTrip(t *testing.T) {
	_, profiles, records := newRepos(t)
	ctx := context.Background()

	_, found := profiles.Load(ctx)
	assert.False(t, found)

	require.NoError(t, profiles.Save(ctx, domain.OnboardingProfile{
		Goal: "side income", Time: domain.TimeLight, Skills: "sql", UpdatedAt: 42,
	}))

	loaded, found := profiles.Load(ctx)
	require.True(t, found)
	assert.Equal(t, "side income", loaded.Goal)
	assert.Equal(t, domain.TimeLight, loaded.Time)
	assert.Equal(t, int64(42), loaded.UpdatedAt)

	_, metaFound := records.Get(state.KeyOnboarding + "__meta")
	assert.True(t, metaFound)

	profiles.Delete(ctx)
	_, found = profiles.Load(ctx)
	assert.False(t, found)
}

func TestFlagRepo(t *testing.T) {
	records := store.NewMemRecordStore()
	flags := state.NewFlagRepo(records)

	assert.Equal(t, "", flags.Theme())
	assert.Equal(t, "", flags.Language())
	assert.False(t, flags.Paid())

	require.NoError(t, flags.SetTheme("dark"))
	require.NoError(t, flags.SetLanguage("en"))
	require.NoError(t, flags.SetPaid(true))

	assert.Equal(t, "dark", flags.Theme())
	assert.Equal(t, "en", flags.Language())
	assert.True(t, flags.Paid())

	// Unsetting the paid flag removes the record entirely.
	require.NoError(t, flags.SetPaid(false))
	assert.False(t, flags.Paid())
	_, found := records.Get(state.KeyPaid)
	assert.False(t, found)
}

func TestFlagRepo_Clear(t *testing.T) {
	records := store.NewMemRecordStore()
	flags := state.NewFlagRepo(records)

	require.NoError(t, flags.SetTheme("light"))
	require.NoError(t, flags.SetLanguage("fr"))
	require.NoError(t, flags.SetPaid(true))

	flags.Clear()
	assert.Equal(t, "", flags.Theme())
	assert.Equal(t, "", flags.Language())
	assert.False(t, flags.Paid())
}

package session_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/session"
	"github.com/nolimit-nexus/nexus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []session.OpEvent
}

func (r *recordingObserver) Observe(_ context.Context, event session.OpEvent) {
	r.events = append(r.events, event)
}

func TestObserver_GenerateEmitsTypedEvent(t *testing.T) {
	states, profiles, _ := testutil.NewTestRepos(t)
	rec := &recordingObserver{}
	svc := session.NewService(states, profiles, rec)
	ctx := context.Background()

	results, err := svc.Generate(ctx, testutil.Project())
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	event := rec.events[0]
	assert.Equal(t, session.OpGenerate, event.Op)
	assert.NoError(t, event.Err)
	assert.Equal(t, "Side Studio", event.Project)
	assert.Equal(t, len(results.Plan.Tasks), event.TaskCount)
	assert.False(t, event.StartedAt.IsZero())
}

func TestObserver_FailedGenerateCarriesError(t *testing.T) {
	states, profiles, _ := testutil.NewTestRepos(t)
	rec := &recordingObserver{}
	svc := session.NewService(states, profiles, rec)

	p := testutil.Project()
	p.Name = ""
	_, err := svc.Generate(context.Background(), p)
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	assert.Equal(t, session.OpGenerate, rec.events[0].Op)
	assert.Error(t, rec.events[0].Err)
	assert.Zero(t, rec.events[0].TaskCount)
}

func TestObserver_OnboardingSaveReportsFieldsDone(t *testing.T) {
	_, profiles, _ := testutil.NewTestRepos(t)
	rec := &recordingObserver{}
	svc := session.NewOnboardingService(profiles, rec)

	require.NoError(t, svc.Save(context.Background(), domain.OnboardingProfile{
		Goal: "side income", Time: domain.TimeLight,
	}))

	require.Len(t, rec.events, 1)
	assert.Equal(t, session.OpSaveOnboarding, rec.events[0].Op)
	assert.Equal(t, 2, rec.events[0].FieldsDone)
}

func TestLogObserver_WritesPerOpAttributes(t *testing.T) {
	var buf bytes.Buffer
	obs := session.NewLogObserver(&buf)

	obs.Observe(context.Background(), session.OpEvent{
		Op: session.OpGenerate, Project: "Side Studio", TaskCount: 12,
	})
	out := buf.String()
	assert.Contains(t, out, "op=generate-plan")
	assert.Contains(t, out, "tasks=12")
	assert.NotContains(t, out, "fields_done")

	buf.Reset()
	obs.Observe(context.Background(), session.OpEvent{
		Op: session.OpSaveOnboarding, FieldsDone: 3,
	})
	out = buf.String()
	assert.Contains(t, out, "op=save-onboarding")
	assert.Contains(t, out, "fields_done=3")
	assert.Contains(t, out, "level=INFO")
}

func TestLogObserver_NilWriterIsNoop(t *testing.T) {
	obs := session.NewLogObserver(nil)
	assert.IsType(t, session.NoopObserver{}, obs)
}

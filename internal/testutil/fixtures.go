package testutil

import (
	"testing"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/state"
	"github.com/nolimit-nexus/nexus/internal/store"
)

// NewTestStore returns a chunk store over a fresh in-memory record backend,
// plus the backend itself for fragment-level assertions.
func NewTestStore(t *testing.T) (*store.ChunkStore, *store.MemRecordStore) {
	t.Helper()
	records := store.NewMemRecordStore()
	return store.NewChunkStore(records), records
}

// NewTestRepos wires the state repositories over a fresh in-memory backend.
func NewTestRepos(t *testing.T) (state.AppStateRepo, state.OnboardingRepo, state.FlagRepo) {
	t.Helper()
	chunks, records := NewTestStore(t)
	return state.NewAppStateRepo(chunks), state.NewOnboardingRepo(chunks), state.NewFlagRepo(records)
}

// Project options
type ProjectOption func(*domain.ProjectProfile)

func WithType(pt domain.ProjectType) ProjectOption {
	return func(p *domain.ProjectProfile) {
		p.Type = pt
	}
}

func WithAudience(a domain.Audience) ProjectOption {
	return func(p *domain.ProjectProfile) {
		p.Audience = a
	}
}

func WithBudget(b domain.BudgetBracket) ProjectOption {
	return func(p *domain.ProjectProfile) {
		p.Budget = b
	}
}

func WithExperience(e domain.ExperienceLevel) ProjectOption {
	return func(p *domain.ProjectProfile) {
		p.Exp = e
	}
}

func WithGoal(goal float64) ProjectOption {
	return func(p *domain.ProjectProfile) {
		p.GoalMonthly = goal
	}
}

// Project returns a valid baseline project profile, customizable per test.
func Project(opts ...ProjectOption) domain.ProjectProfile {
	p := domain.ProjectProfile{
		Name:        "Side Studio",
		Desc:        "Websites for local shops",
		Type:        domain.TypeService,
		Audience:    domain.AudienceB2C,
		Budget:      domain.BudgetTiny,
		Exp:         domain.ExpBeginner,
		GoalMonthly: 2000,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Onboarding returns a baseline onboarding profile.
func Onboarding() domain.OnboardingProfile {
	return domain.OnboardingProfile{
		Goal:   "Replace my salary",
		Time:   domain.TimeMinimal,
		Skills: "",
	}
}

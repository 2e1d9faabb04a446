package session

import (
	"context"

	"github.com/nolimit-nexus/nexus/internal/domain"
)

// BrandingPatch carries partial branding edits. Nil fields are left as they
// are.
type BrandingPatch struct {
	Name    *string
	Promise *string
	Pitch   *string
}

// FinancePatch carries partial finance edits. Nil fields are left as they
// are.
type FinancePatch struct {
	Price         *float64
	Cost          *float64
	MonthlyTarget *float64
}

// Service orchestrates plan generation and every mutation of the persisted
// aggregate. Mutators always re-read the full aggregate before merging their
// slice and save it back wholesale; nothing caches state across calls.
type Service interface {
	// Generate validates the project, derives scores, offer and plan, and
	// replaces the persisted results. Roadmap and validation state are
	// reset from the new plan; branding keeps user-entered text; finance
	// is overwritten from the new offer.
	Generate(ctx context.Context, p domain.ProjectProfile) (*domain.ProjectResults, error)

	// Results returns the full derived record, or false when no plan has
	// been generated yet. Never returns a partial record.
	Results(ctx context.Context) (*domain.ProjectResults, bool)

	// State returns the current normalized aggregate.
	State(ctx context.Context) domain.AppState

	ToggleTask(ctx context.Context, id string) (*domain.Task, error)
	AddTask(ctx context.Context, title, detail string) (*domain.Task, error)
	RemoveTask(ctx context.Context, id string) error

	SetCheck(ctx context.Context, index int, value bool) error
	SetNotes(ctx context.Context, notes string) error

	UpdateBranding(ctx context.Context, patch BrandingPatch) error
	UpdateFinance(ctx context.Context, patch FinancePatch) error
}

// OnboardingService persists the onboarding answers and reports completion.
type OnboardingService interface {
	Load(ctx context.Context) (domain.OnboardingProfile, bool)
	Save(ctx context.Context, o domain.OnboardingProfile) error
}

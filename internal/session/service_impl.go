package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/offer"
	"github.com/nolimit-nexus/nexus/internal/plan"
	"github.com/nolimit-nexus/nexus/internal/scoring"
	"github.com/nolimit-nexus/nexus/internal/state"
)

type service struct {
	states     state.AppStateRepo
	onboarding state.OnboardingRepo
	observer   Observer
}

// NewService wires the aggregator over the state repositories. Observers are
// optional; the first non-nil one is used.
func NewService(states state.AppStateRepo, onboarding state.OnboardingRepo, observers ...Observer) Service {
	return &service{
		states:     states,
		onboarding: onboarding,
		observer:   observerOrNoop(observers),
	}
}

func (s *service) Generate(ctx context.Context, p domain.ProjectProfile) (results *domain.ProjectResults, err error) {
	startedAt := time.Now().UTC()
	taskCount := 0
	defer func() {
		s.observer.Observe(ctx, OpEvent{
			Op:        OpGenerate,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Project:   p.Name,
			TaskCount: taskCount,
		})
	}()

	if err = p.Validate(); err != nil {
		return nil, err
	}

	// Snapshot the onboarding answers at generation time; an absent
	// profile scores with neutral defaults.
	onb, _ := s.onboarding.Load(ctx)

	scores := scoring.Score(p, onb)
	off := offer.Synthesize(p, scores)
	generated := plan.Build(p, onb, scores, off)
	taskCount = len(generated.Tasks)

	results = &domain.ProjectResults{
		Project:       p,
		Onboarding:    onb,
		Scores:        scores,
		Offer:         off,
		MonthlyTarget: p.GoalMonthly,
		Plan:          generated,
		CreatedAt:     time.Now().UnixMilli(),
	}

	st := s.states.Load(ctx)
	st.Project = &p
	st.ProjectResults = results

	// Checklist restarts from zero on every regeneration; notes survive.
	st.Validation.Checks = make([]bool, len(domain.ChecklistItems))

	// Branding defaults never overwrite user-entered text.
	if st.Branding.Name == "" {
		st.Branding.Name = p.Name
	}
	if st.Branding.Promise == "" {
		st.Branding.Promise = generated.Angle
	}
	if st.Branding.Pitch == "" {
		st.Branding.Pitch = p.Desc
	}

	// Finance always tracks the newest offer.
	st.Finance = domain.FinanceState{
		Price:         float64(off.Price),
		Cost:          float64(off.Cost),
		MonthlyTarget: p.GoalMonthly,
	}

	// Regeneration replaces the roadmap wholesale, progress included.
	st.Roadmap.Tasks = append([]domain.Task(nil), generated.Tasks...)

	if err = s.states.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving generated plan: %w", err)
	}
	return results, nil
}

func (s *service) Results(ctx context.Context) (*domain.ProjectResults, bool) {
	st := s.states.Load(ctx)
	if st.ProjectResults == nil {
		return nil, false
	}
	return st.ProjectResults, true
}

func (s *service) State(ctx context.Context) domain.AppState {
	return s.states.Load(ctx)
}

func (s *service) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	st := s.states.Load(ctx)
	for i := range st.Roadmap.Tasks {
		if st.Roadmap.Tasks[i].ID == id {
			st.Roadmap.Tasks[i].Done = !st.Roadmap.Tasks[i].Done
			if err := s.states.Save(ctx, st); err != nil {
				return nil, fmt.Errorf("saving roadmap: %w", err)
			}
			return &st.Roadmap.Tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task not found: %q", id)
}

func (s *service) AddTask(ctx context.Context, title, detail string) (*domain.Task, error) {
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Message: "task title is required"}
	}

	// User-added tasks always land in the systemization phase.
	task := domain.Task{
		ID:        uuid.New().String(),
		Phase:     domain.PhaseSystemization,
		Title:     title,
		Detail:    detail,
		CreatedAt: time.Now().UnixMilli(),
	}

	st := s.states.Load(ctx)
	st.Roadmap.Tasks = append(st.Roadmap.Tasks, task)
	if err := s.states.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving roadmap: %w", err)
	}
	return &task, nil
}

func (s *service) RemoveTask(ctx context.Context, id string) error {
	st := s.states.Load(ctx)
	for i := range st.Roadmap.Tasks {
		if st.Roadmap.Tasks[i].ID == id {
			st.Roadmap.Tasks = append(st.Roadmap.Tasks[:i], st.Roadmap.Tasks[i+1:]...)
			if err := s.states.Save(ctx, st); err != nil {
				return fmt.Errorf("saving roadmap: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("task not found: %q", id)
}

func (s *service) SetCheck(ctx context.Context, index int, value bool) error {
	if index < 0 || index >= len(domain.ChecklistItems) {
		return &domain.ValidationError{
			Field:   "check",
			Message: fmt.Sprintf("check index must be between 1 and %d", len(domain.ChecklistItems)),
		}
	}
	st := s.states.Load(ctx)
	st.Validation.Checks[index] = value
	if err := s.states.Save(ctx, st); err != nil {
		return fmt.Errorf("saving validation: %w", err)
	}
	return nil
}

func (s *service) SetNotes(ctx context.Context, notes string) error {
	st := s.states.Load(ctx)
	st.Validation.Notes = notes
	if err := s.states.Save(ctx, st); err != nil {
		return fmt.Errorf("saving validation: %w", err)
	}
	return nil
}

func (s *service) UpdateBranding(ctx context.Context, patch BrandingPatch) error {
	st := s.states.Load(ctx)
	if patch.Name != nil {
		st.Branding.Name = *patch.Name
	}
	if patch.Promise != nil {
		st.Branding.Promise = *patch.Promise
	}
	if patch.Pitch != nil {
		st.Branding.Pitch = *patch.Pitch
	}
	if err := s.states.Save(ctx, st); err != nil {
		return fmt.Errorf("saving branding: %w", err)
	}
	return nil
}

func (s *service) UpdateFinance(ctx context.Context, patch FinancePatch) error {
	if patch.Price != nil && *patch.Price < 0 {
		return &domain.ValidationError{Field: "price", Message: "price must be >= 0"}
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return &domain.ValidationError{Field: "cost", Message: "cost must be >= 0"}
	}
	if patch.MonthlyTarget != nil && *patch.MonthlyTarget < 0 {
		return &domain.ValidationError{Field: "target", Message: "monthly target must be >= 0"}
	}

	st := s.states.Load(ctx)
	if patch.Price != nil {
		st.Finance.Price = *patch.Price
	}
	if patch.Cost != nil {
		st.Finance.Cost = *patch.Cost
	}
	if patch.MonthlyTarget != nil {
		st.Finance.MonthlyTarget = *patch.MonthlyTarget
	}
	if err := s.states.Save(ctx, st); err != nil {
		return fmt.Errorf("saving finance: %w", err)
	}
	return nil
}

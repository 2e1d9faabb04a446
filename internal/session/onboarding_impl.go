package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/state"
)

type onboardingService struct {
	profiles state.OnboardingRepo
	observer Observer
}

// NewOnboardingService wires the onboarding form persistence.
func NewOnboardingService(profiles state.OnboardingRepo, observers ...Observer) OnboardingService {
	return &onboardingService{
		profiles: profiles,
		observer: observerOrNoop(observers),
	}
}

func (s *onboardingService) Load(ctx context.Context) (domain.OnboardingProfile, bool) {
	return s.profiles.Load(ctx)
}

func (s *onboardingService) Save(ctx context.Context, o domain.OnboardingProfile) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		done, _ := o.Progress()
		s.observer.Observe(ctx, OpEvent{
			Op:         OpSaveOnboarding,
			StartedAt:  startedAt,
			Duration:   time.Since(startedAt),
			Err:        err,
			FieldsDone: done,
		})
	}()

	if o.Time != "" && !domain.ValidTimeBrackets[string(o.Time)] {
		return &domain.ValidationError{Field: "time", Message: fmt.Sprintf("unknown time bracket %q", o.Time)}
	}

	o.Skills = strings.TrimSpace(o.Skills)
	o.UpdatedAt = time.Now().UnixMilli()
	if err = s.profiles.Save(ctx, o); err != nil {
		return fmt.Errorf("saving onboarding: %w", err)
	}
	return nil
}

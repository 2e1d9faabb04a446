package state

import (
	"context"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/store"
)

// Persisted key names and retention windows. The nb_ prefix and the windows
// are part of the on-disk contract.
const (
	KeyAppData    = "nb_appdata"
	KeyOnboarding = "nb_onboarding"
	KeyTheme      = "nb_theme"
	KeyLanguage   = "nb_lang"
	KeyPaid       = "nb_paid"

	appDataTTLDays    = 30
	onboardingTTLDays = 30
	flagTTLDays       = 365
)

// AppStateRepo loads and saves the aggregate root. Load never fails: absent
// or undecodable state degrades to a normalized zero value.
type AppStateRepo interface {
	Load(ctx context.Context) domain.AppState
	Save(ctx context.Context, s domain.AppState) error
	Delete(ctx context.Context)
}

// OnboardingRepo persists the onboarding profile separately from the
// aggregate, mirroring the original per-form record.
type OnboardingRepo interface {
	Load(ctx context.Context) (domain.OnboardingProfile, bool)
	Save(ctx context.Context, o domain.OnboardingProfile) error
	Delete(ctx context.Context)
}

type appStateRepo struct {
	chunks *store.ChunkStore
}

// NewAppStateRepo returns an AppStateRepo backed by the given chunk store.
func NewAppStateRepo(chunks *store.ChunkStore) AppStateRepo {
	return &appStateRepo{chunks: chunks}
}

func (r *appStateRepo) Load(ctx context.Context) domain.AppState {
	var s domain.AppState
	r.chunks.Get(KeyAppData, &s)
	s.Normalize()
	return s
}

func (r *appStateRepo) Save(ctx context.Context, s domain.AppState) error {
	return r.chunks.Put(KeyAppData, s, appDataTTLDays)
}

func (r *appStateRepo) Delete(ctx context.Context) {
	r.chunks.Delete(KeyAppData)
}

type onboardingRepo struct {
	chunks *store.ChunkStore
}

// NewOnboardingRepo returns an OnboardingRepo backed by the given chunk store.
func NewOnboardingRepo(chunks *store.ChunkStore) OnboardingRepo {
	return &onboardingRepo{chunks: chunks}
}

func (r *onboardingRepo) Load(ctx context.Context) (domain.OnboardingProfile, bool) {
	var o domain.OnboardingProfile
	found := r.chunks.Get(KeyOnboarding, &o)
	return o, found
}

func (r *onboardingRepo) Save(ctx context.Context, o domain.OnboardingProfile) error {
	return r.chunks.Put(KeyOnboarding, o, onboardingTTLDays)
}

func (r *onboardingRepo) Delete(ctx context.Context) {
	r.chunks.Delete(KeyOnboarding)
}

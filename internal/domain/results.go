package domain

// ProjectResults is the derived aggregate produced by a generation run: the
// project and onboarding snapshots it was computed from, the scores, the
// offer and the plan. It is replaced wholesale on every regeneration and
// seeds the validation, finance and roadmap modules' initial state.
type ProjectResults struct {
	Project       ProjectProfile    `json:"project"`
	Onboarding    OnboardingProfile `json:"onboarding"`
	Scores        ScoreTriple       `json:"scores"`
	Offer         Offer             `json:"offer"`
	MonthlyTarget float64           `json:"monthlyTarget"`
	Plan          Plan              `json:"plan"`
	CreatedAt     int64             `json:"createdAt"`
}

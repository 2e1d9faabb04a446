package domain

import (
	"math"
	"strings"
)

// OnboardingProfile captures the answers from the onboarding form. Fields may
// be empty; scoring treats absent values as neutral defaults.
type OnboardingProfile struct {
	Goal      string      `json:"goal"`
	Time      TimeBracket `json:"time"`
	Skills    string      `json:"skills"`
	UpdatedAt int64       `json:"updatedAt,omitempty"`
}

// OnboardingFieldCount is the number of fields the progress meter tracks.
const OnboardingFieldCount = 3

// Progress returns how many onboarding fields are filled in and the derived
// completion percentage (0-100).
func (o OnboardingProfile) Progress() (done, pct int) {
	if o.Goal != "" {
		done++
	}
	if o.Time != "" {
		done++
	}
	if len(strings.TrimSpace(o.Skills)) >= 2 {
		done++
	}
	pct = int(math.Round(float64(done) / OnboardingFieldCount * 100))
	return done, pct
}

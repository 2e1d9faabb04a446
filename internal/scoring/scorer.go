package scoring

import (
	"math"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/domain"
)

// triple carries the unclamped floating-point accumulation of one score run.
type triple struct {
	profit float64
	speed  float64
	ease   float64
}

func (t triple) add(o triple) triple {
	return triple{t.profit + o.profit, t.speed + o.speed, t.ease + o.ease}
}

// Hand-tuned base triples per project type. These constants are part of the
// scoring contract; changing them changes every derived plan.
var baseTriples = map[domain.ProjectType]triple{
	domain.TypeService:      {6, 8, 7},
	domain.TypeDigital:      {7, 5, 6},
	domain.TypeSubscription: {8, 4, 5},
	domain.TypePhysical:     {6, 3, 4},
	domain.TypeAudience:     {5, 4, 8},
}

// BudgetOrdinal maps a budget bracket to its ordinal 1-4. Unrecognized
// brackets map to 1 (the most conservative).
func BudgetOrdinal(b domain.BudgetBracket) int {
	switch b {
	case domain.BudgetSmall:
		return 2
	case domain.BudgetMedium:
		return 3
	case domain.BudgetLarge:
		return 4
	default:
		return 1
	}
}

// TimeOrdinal maps a weekly-hours bracket to its ordinal 1-4. An absent or
// unrecognized bracket is score-neutral and maps to 2.
func TimeOrdinal(t domain.TimeBracket) int {
	switch t {
	case domain.TimeMinimal:
		return 1
	case domain.TimeLight:
		return 2
	case domain.TimeSerious:
		return 3
	case domain.TimeFull:
		return 4
	default:
		return 2
	}
}

// ExperienceOrdinal maps an experience level to its ordinal 1-3. Absent or
// unrecognized maps to 1.
func ExperienceOrdinal(e domain.ExperienceLevel) int {
	switch e {
	case domain.ExpIntermediate:
		return 2
	case domain.ExpExpert:
		return 3
	default:
		return 1
	}
}

// FastMode reports whether the time commitment is high enough for the plan
// builder to raise its outreach targets.
func FastMode(t domain.TimeBracket) bool {
	return TimeOrdinal(t) >= 3
}

// Score derives the viability triple for a project given the onboarding
// answers. Pure and deterministic: identical inputs always produce the
// identical triple.
func Score(p domain.ProjectProfile, o domain.OnboardingProfile) domain.ScoreTriple {
	sum := baseTriples[p.Type]
	if _, ok := baseTriples[p.Type]; !ok {
		sum = baseTriples[domain.TypeService]
	}

	factors := []func(domain.ProjectProfile, domain.OnboardingProfile) triple{
		audienceModifier,
		budgetModifier,
		timeModifier,
		experienceModifier,
		skillsModifier,
	}
	for _, f := range factors {
		sum = sum.add(f(p, o))
	}

	return domain.ScoreTriple{
		Profit: clampScore(sum.profit),
		Speed:  clampScore(sum.speed),
		Ease:   clampScore(sum.ease),
	}
}

// B2B sells for more but closes slower and takes more polish.
func audienceModifier(p domain.ProjectProfile, _ domain.OnboardingProfile) triple {
	switch p.Audience {
	case domain.AudienceB2B:
		return triple{profit: 2, speed: -1, ease: -0.5}
	case domain.AudienceBoth:
		return triple{profit: 1, speed: -0.5}
	default:
		return triple{}
	}
}

func budgetModifier(p domain.ProjectProfile, _ domain.OnboardingProfile) triple {
	d := float64(BudgetOrdinal(p.Budget) - 2)
	return triple{profit: d * 0.3, speed: d * 0.7, ease: d * 0.7}
}

func timeModifier(_ domain.ProjectProfile, o domain.OnboardingProfile) triple {
	d := float64(TimeOrdinal(o.Time) - 2)
	return triple{speed: d * 0.8, ease: d * 0.8}
}

func experienceModifier(p domain.ProjectProfile, _ domain.OnboardingProfile) triple {
	d := float64(ExperienceOrdinal(p.Exp) - 1)
	return triple{speed: d * 0.3, ease: d * 0.9}
}

func skillsModifier(_ domain.ProjectProfile, o domain.OnboardingProfile) triple {
	if len(strings.TrimSpace(o.Skills)) >= 3 {
		return triple{ease: 0.6}
	}
	return triple{}
}

// clampScore clamps to [1,10] then rounds half away from zero, which on this
// positive domain is the required round-half-up.
func clampScore(v float64) int {
	if v < 1 {
		v = 1
	}
	if v > 10 {
		v = 10
	}
	return int(math.Round(v))
}

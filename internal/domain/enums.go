package domain

type ProjectType string

const (
	TypeService      ProjectType = "service"
	TypeDigital      ProjectType = "digital"
	TypeSubscription ProjectType = "subscription"
	TypePhysical     ProjectType = "physical"
	TypeAudience     ProjectType = "audience"
)

type Audience string

const (
	AudienceB2C  Audience = "b2c"
	AudienceB2B  Audience = "b2b"
	AudienceBoth Audience = "both"
)

type BudgetBracket string

const (
	BudgetTiny   BudgetBracket = "0-50"
	BudgetSmall  BudgetBracket = "50-200"
	BudgetMedium BudgetBracket = "200-1000"
	BudgetLarge  BudgetBracket = "1000+"
)

type TimeBracket string

const (
	TimeMinimal TimeBracket = "2-5"
	TimeLight   TimeBracket = "5-10"
	TimeSerious TimeBracket = "10-20"
	TimeFull    TimeBracket = "20+"
)

type ExperienceLevel string

const (
	ExpBeginner     ExperienceLevel = "beginner"
	ExpIntermediate ExperienceLevel = "intermediate"
	ExpExpert       ExperienceLevel = "expert"
)

// Phase is one of the four fixed roadmap stages tasks are grouped under.
type Phase string

const (
	PhaseFoundation    Phase = "S1"
	PhaseValidation    Phase = "S2"
	PhaseSales         Phase = "S3"
	PhaseSystemization Phase = "S4"
)

// Phases lists the roadmap phases in display order.
var Phases = []Phase{PhaseFoundation, PhaseValidation, PhaseSales, PhaseSystemization}

// ValidProjectTypes is the canonical set of accepted project type strings.
var ValidProjectTypes = map[string]bool{
	"service": true, "digital": true, "subscription": true,
	"physical": true, "audience": true,
}

// ValidAudiences is the canonical set of accepted audience strings.
var ValidAudiences = map[string]bool{
	"b2c": true, "b2b": true, "both": true,
}

// ValidBudgetBrackets is the canonical set of accepted budget bracket strings.
var ValidBudgetBrackets = map[string]bool{
	"0-50": true, "50-200": true, "200-1000": true, "1000+": true,
}

// ValidTimeBrackets is the canonical set of accepted weekly-hours bracket strings.
var ValidTimeBrackets = map[string]bool{
	"2-5": true, "5-10": true, "10-20": true, "20+": true,
}

// ValidExperienceLevels is the canonical set of accepted experience strings.
var ValidExperienceLevels = map[string]bool{
	"beginner": true, "intermediate": true, "expert": true,
}

// PhaseLabel returns the human name for a roadmap phase.
func PhaseLabel(p Phase) string {
	switch p {
	case PhaseFoundation:
		return "Foundation"
	case PhaseValidation:
		return "Validation"
	case PhaseSales:
		return "Sales"
	case PhaseSystemization:
		return "Systemization"
	default:
		return string(p)
	}
}

package domain

import (
	"fmt"
	"strings"
)

// ProjectProfile is the immutable snapshot of the project parameters a plan
// is generated from. Regeneration replaces the whole snapshot; it is never
// edited in place.
type ProjectProfile struct {
	Name        string          `json:"name"`
	Desc        string          `json:"desc"`
	Type        ProjectType     `json:"type"`
	Audience    Audience        `json:"audience"`
	Budget      BudgetBracket   `json:"budget"`
	Exp         ExperienceLevel `json:"exp"`
	GoalMonthly float64         `json:"goalMonthly"`
}

// Validate checks the required free-text fields and the categorical values.
// A failure is a ValidationError: the caller surfaces it inline and performs
// no state mutation.
func (p *ProjectProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "project name is required"}
	}
	if strings.TrimSpace(p.Desc) == "" {
		return &ValidationError{Field: "desc", Message: "project description is required"}
	}
	if p.Type != "" && !ValidProjectTypes[string(p.Type)] {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown project type %q", p.Type)}
	}
	if p.Audience != "" && !ValidAudiences[string(p.Audience)] {
		return &ValidationError{Field: "audience", Message: fmt.Sprintf("unknown audience %q", p.Audience)}
	}
	if p.Budget != "" && !ValidBudgetBrackets[string(p.Budget)] {
		return &ValidationError{Field: "budget", Message: fmt.Sprintf("unknown budget bracket %q", p.Budget)}
	}
	if p.Exp != "" && !ValidExperienceLevels[string(p.Exp)] {
		return &ValidationError{Field: "exp", Message: fmt.Sprintf("unknown experience level %q", p.Exp)}
	}
	if p.GoalMonthly < 0 {
		return &ValidationError{Field: "goalMonthly", Message: "monthly goal must be >= 0"}
	}
	return nil
}

// ScoreTriple is the derived viability score. Each dimension is an integer
// in [1,10] and the whole triple is a pure function of its inputs.
type ScoreTriple struct {
	Profit int `json:"profit"`
	Speed  int `json:"speed"`
	Ease   int `json:"ease"`
}

// Offer is the suggested pricing derived from the project and its scores.
type Offer struct {
	Price int `json:"price"` // >= 9
	Cost  int `json:"cost"`  // >= 0
}

// Margin returns the per-unit margin of the offer.
func (o Offer) Margin() int {
	return o.Price - o.Cost
}

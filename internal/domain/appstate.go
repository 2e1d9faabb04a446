package domain

// AppState is the aggregate root: the single persisted record all module
// views read from and merge into. It is saved wholesale on every change
// (read-modify-write, last writer wins).
type AppState struct {
	Project        *ProjectProfile `json:"project,omitempty"`
	ProjectResults *ProjectResults `json:"projectResults,omitempty"`
	Validation     ValidationState `json:"validation"`
	Branding       BrandingState   `json:"branding"`
	Finance        FinanceState    `json:"finance"`
	Roadmap        RoadmapState    `json:"roadmap"`
}

// ValidationState holds the positional checklist state plus free-form notes.
type ValidationState struct {
	Checks []bool `json:"checks"`
	Notes  string `json:"notes"`
}

// BrandingState holds user-editable branding text. Generation fills empty
// fields with defaults but never overwrites what the user typed.
type BrandingState struct {
	Name    string `json:"name"`
	Promise string `json:"promise"`
	Pitch   string `json:"pitch"`
}

// FinanceState holds the working pricing figures. Generation overwrites it
// unconditionally from the new offer.
type FinanceState struct {
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	MonthlyTarget float64 `json:"monthlyTarget"`
}

// RoadmapState holds the tracked task list. Generation replaces it wholesale
// with the new plan's tasks.
type RoadmapState struct {
	Tasks []Task `json:"tasks"`
}

// Normalize self-heals stale shapes after a load: a checks slice whose length
// no longer matches the checklist resets to all-false, and nil task slices
// become empty.
func (s *AppState) Normalize() {
	s.Validation.Checks = NormalizeChecks(s.Validation.Checks)
	if s.Roadmap.Tasks == nil {
		s.Roadmap.Tasks = []Task{}
	}
}

package domain

// ChecklistItems is the fixed validation checklist. ValidationState.Checks is
// indexed positionally against this list, so order matters and changes here
// invalidate persisted check state (see NormalizeChecks).
var ChecklistItems = []string{
	"Problem is painful enough that people already pay to solve it",
	"You can describe the target customer in one sentence",
	"Talked to at least 5 potential customers",
	"At least one competitor exists (market is proven)",
	"You can deliver a first version within 30 days",
	"Price covers costs with room for profit",
}

// NormalizeChecks returns checks if its length matches the current checklist,
// otherwise a fresh all-false slice. Persisted state from an older checklist
// shape is treated as stale rather than an error.
func NormalizeChecks(checks []bool) []bool {
	if len(checks) == len(ChecklistItems) {
		return checks
	}
	return make([]bool, len(ChecklistItems))
}

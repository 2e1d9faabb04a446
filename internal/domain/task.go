package domain

// Task is one roadmap item. Identity is the ID; Phase groups tasks for
// display and progress rollup.
type Task struct {
	ID        string `json:"id"`
	Phase     Phase  `json:"phase"`
	Title     string `json:"title"`
	Detail    string `json:"detail,omitempty"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"createdAt"`
}

// Plan is the generated roadmap: two narrative fields plus the ordered task
// batch.
type Plan struct {
	Angle   string `json:"angle"`
	Channel string `json:"channel"`
	Tasks   []Task `json:"tasks"`
}

// TaskProgress returns done and total counts for a task list.
func TaskProgress(tasks []Task) (done, total int) {
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	return done, len(tasks)
}

// TasksByPhase groups tasks by phase, preserving list order within each
// phase.
func TasksByPhase(tasks []Task) map[Phase][]Task {
	out := make(map[Phase][]Task, len(Phases))
	for _, t := range tasks {
		out[t.Phase] = append(out[t.Phase], t)
	}
	return out
}

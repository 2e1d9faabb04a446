package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/scoring"
)

// Narrative angle per project type.
var angles = map[domain.ProjectType]string{
	domain.TypeService:      "Sell the outcome, not the hours: one clear package with a fixed price and a fixed deadline.",
	domain.TypeDigital:      "Build once, sell forever: a small product that solves one painful problem end to end.",
	domain.TypeSubscription: "Earn trust monthly: a recurring service so useful that cancelling feels like a loss.",
	domain.TypePhysical:     "Start with one hero product: prove demand before touching inventory at scale.",
	domain.TypeAudience:     "Audience first, offers second: publish consistently, then monetize the trust you built.",
}

// Acquisition channel per audience.
var channels = map[domain.Audience]string{
	domain.AudienceB2C:  "Short-form social content plus one owned channel (newsletter or community).",
	domain.AudienceB2B:  "Direct outreach on LinkedIn and email, backed by one strong case study.",
	domain.AudienceBoth: "Content for reach, outreach for revenue: run both and double down on what converts.",
}

type taskTemplate struct {
	phase  domain.Phase
	title  string
	detail string
}

// Build synthesizes the roadmap from the project, the onboarding answers,
// the scores and the offer. Task content is a pure function of the inputs;
// ids are generated fresh per batch and stable once assigned. The final
// order is by phase label + title, lexicographic, regardless of insertion
// order.
func Build(p domain.ProjectProfile, o domain.OnboardingProfile, s domain.ScoreTriple, off domain.Offer) domain.Plan {
	templates := baselineTasks(o.Time)
	templates = append(templates, typeTasks(p, off)...)

	now := time.Now().UnixMilli()
	tasks := make([]domain.Task, 0, len(templates))
	for _, t := range templates {
		tasks = append(tasks, domain.Task{
			ID:        uuid.New().String(),
			Phase:     t.phase,
			Title:     t.title,
			Detail:    t.detail,
			CreatedAt: now,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return string(tasks[i].Phase)+tasks[i].Title < string(tasks[j].Phase)+tasks[j].Title
	})

	angle, ok := angles[p.Type]
	if !ok {
		angle = angles[domain.TypeService]
	}
	channel, ok := channels[p.Audience]
	if !ok {
		channel = channels[domain.AudienceB2C]
	}

	return domain.Plan{Angle: angle, Channel: channel, Tasks: tasks}
}

func baselineTasks(t domain.TimeBracket) []taskTemplate {
	prospects := 20
	if scoring.FastMode(t) {
		prospects = 30
	}

	return []taskTemplate{
		{domain.PhaseFoundation, "Write your offer in one sentence",
			"Who it is for, what changes for them, and what it costs."},
		{domain.PhaseFoundation, "Set up a simple landing page",
			"One page: promise, proof, price, and a way to contact you."},
		{domain.PhaseFoundation, "Open a dedicated bank account",
			"Keep project money separate from day one."},
		{domain.PhaseValidation, "Interview 5 potential customers",
			"Ask about the problem, not your solution. Take notes."},
		{domain.PhaseValidation, fmt.Sprintf("Contact %d prospects", prospects),
			"Direct messages beat ads at this stage. Track replies."},
		{domain.PhaseValidation, "Collect 3 written testimonials",
			"Deliver free or discounted if needed; the proof pays for itself."},
		{domain.PhaseSales, "Publish your price",
			"A visible price filters out the wrong customers for you."},
		{domain.PhaseSales, "Launch your first paid campaign",
			"Small budget, one channel, one message. Measure before scaling."},
		{domain.PhaseSales, "Follow up every lead within 48 hours",
			"Most sales die from silence, not from a no."},
		{domain.PhaseSystemization, "Document your delivery process",
			"Write it so someone else could do it tomorrow."},
		{domain.PhaseSystemization, "Automate invoicing and reminders",
			"Chasing payments by hand does not scale."},
		{domain.PhaseSystemization, "Review your numbers weekly",
			"Revenue, costs, pipeline. Fifteen minutes, same day each week."},
	}
}

func typeTasks(p domain.ProjectProfile, off domain.Offer) []taskTemplate {
	switch p.Type {
	case domain.TypePhysical:
		return []taskTemplate{
			{domain.PhaseValidation, "Validate demand before ordering stock",
				"Pre-sell or take deposits; inventory is the last thing you buy."},
			{domain.PhaseFoundation, "Source two supplier quotes",
				"Compare unit cost, minimums and lead time before committing."},
		}
	case domain.TypeAudience:
		return []taskTemplate{
			{domain.PhaseFoundation, "Pick your content niche",
				"One topic, one audience, one format. Narrow wins."},
			{domain.PhaseFoundation, "Commit to a publishing cadence",
				"Pick a schedule you can hold for 90 days without heroics."},
			{domain.PhaseSales, fmt.Sprintf("Price your entry offer at %d", off.Price),
				"A low-friction first purchase converts followers into customers."},
		}
	default:
		return nil
	}
}

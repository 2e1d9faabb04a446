package formatter

import (
	"fmt"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/i18n"
)

// RenderScores renders the viability triple with per-score bars.
func RenderScores(dict *i18n.Dictionary, s domain.ScoreTriple) string {
	rows := [][]string{
		{dict.T("scores.profit"), renderScoreCell(s.Profit)},
		{dict.T("scores.speed"), renderScoreCell(s.Speed)},
		{dict.T("scores.ease"), renderScoreCell(s.Ease)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-10s %s\n", row[0], row[1]))
	}
	return b.String()
}

func renderScoreCell(score int) string {
	return fmt.Sprintf("%s %s",
		ScoreColor(score).Render(fmt.Sprintf("%2d/10", score)),
		RenderProgress(float64(score)/10, 10))
}

// RenderOffer renders the suggested price, cost and margin.
func RenderOffer(dict *i18n.Dictionary, off domain.Offer) string {
	return RenderTable(
		[]string{dict.T("offer.price"), dict.T("offer.cost"), dict.T("offer.margin")},
		[][]string{{
			StyleBold.Render(fmt.Sprintf("%d", off.Price)),
			fmt.Sprintf("%d", off.Cost),
			StyleGreen.Render(fmt.Sprintf("%d", off.Margin())),
		}},
	)
}

// RenderPlan renders the full generated plan: narrative fields followed by
// the tasks grouped per phase in roadmap order.
func RenderPlan(dict *i18n.Dictionary, res *domain.ProjectResults) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(res.Project.Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  (%s, %s)", res.Project.Type, res.Project.Audience)))
	b.WriteString("\n\n")
	b.WriteString(StyleBold.Render(dict.T("plan.angle")+": ") + res.Plan.Angle + "\n")
	b.WriteString(StyleBold.Render(dict.T("plan.channel")+": ") + res.Plan.Channel + "\n\n")
	b.WriteString(RenderScores(dict, res.Scores))
	b.WriteString("\n")
	b.WriteString(RenderOffer(dict, res.Offer))
	b.WriteString("\n")

	byPhase := domain.TasksByPhase(res.Plan.Tasks)
	for _, phase := range domain.Phases {
		tasks := byPhase[phase]
		if len(tasks) == 0 {
			continue
		}
		b.WriteString(PhaseColor(phase).Bold(true).Render(
			fmt.Sprintf("%s · %s", phase, domain.PhaseLabel(phase))))
		b.WriteString("\n")
		for _, t := range tasks {
			b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(t.Done), t.Title))
			if t.Detail != "" {
				b.WriteString(StyleDim.Render("      "+t.Detail) + "\n")
			}
		}
	}

	b.WriteString("\n" + StyleDim.Render(dict.T("plan.created")+" "+Timestamp(res.CreatedAt)) + "\n")
	return b.String()
}

// RenderRoadmap renders the tracked task list as a table.
func RenderRoadmap(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return StyleDim.Render(None) + "\n"
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			StyleDim.Render(ShortID(t.ID)),
			PhaseColor(t.Phase).Render(string(t.Phase)),
			CheckMark(t.Done),
			t.Title,
		})
	}
	return RenderTable([]string{"ID", "PHASE", "DONE", "TITLE"}, rows)
}

// RenderChecklist renders the validation checklist with its notes.
func RenderChecklist(dict *i18n.Dictionary, v domain.ValidationState) string {
	checks := domain.NormalizeChecks(v.Checks)

	var b strings.Builder
	for i, item := range domain.ChecklistItems {
		b.WriteString(fmt.Sprintf("%s %d. %s\n", CheckMark(checks[i]), i+1, item))
	}

	done := 0
	for _, c := range checks {
		if c {
			done++
		}
	}
	b.WriteString("\n" + RenderProgress(Ratio(done, len(checks)), 20))
	b.WriteString("  " + dict.Tf("validation.progress", done, len(checks)) + "\n")

	if v.Notes != "" {
		b.WriteString("\n" + StyleDim.Render(v.Notes) + "\n")
	}
	return b.String()
}

// RenderFinance renders the working figures plus the derived sales target.
func RenderFinance(dict *i18n.Dictionary, f domain.FinanceState) string {
	margin := f.Price - f.Cost

	rows := [][]string{
		{dict.T("offer.price"), fmt.Sprintf("%.0f", f.Price)},
		{dict.T("offer.cost"), fmt.Sprintf("%.0f", f.Cost)},
		{dict.T("offer.margin"), fmt.Sprintf("%.0f", margin)},
		{dict.T("finance.target"), fmt.Sprintf("%.0f", f.MonthlyTarget)},
	}

	units := None
	if margin > 0 && f.MonthlyTarget > 0 {
		units = fmt.Sprintf("%d", unitsPerMonth(f.MonthlyTarget, margin))
	} else if margin <= 0 {
		units = StyleRed.Render(dict.T("finance.no_margin"))
	}
	rows = append(rows, []string{dict.T("finance.units"), units})

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-28s %s\n", StyleDim.Render(row[0]), row[1]))
	}
	return b.String()
}

func unitsPerMonth(target, margin float64) int {
	units := int(target / margin)
	if float64(units)*margin < target {
		units++
	}
	return units
}

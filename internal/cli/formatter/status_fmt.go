package formatter

import (
	"fmt"
	"strings"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/nolimit-nexus/nexus/internal/i18n"
)

// RenderStatus renders the dashboard: one section per module, absent values
// shown as the none sentinel rather than omitted.
func RenderStatus(dict *i18n.Dictionary, st domain.AppState, onb domain.OnboardingProfile) string {
	var sections []string

	_, pct := onb.Progress()
	onboarding := fmt.Sprintf("%s  %s",
		RenderProgress(float64(pct)/100, 15),
		dict.Tf("onboarding.progress", pct))
	sections = append(sections, section(dict.T("dashboard.onboarding"), onboarding))

	if st.ProjectResults == nil {
		sections = append(sections, StyleDim.Render(dict.T("dashboard.no_plan")))
		return strings.Join(sections, "\n\n") + "\n"
	}
	res := st.ProjectResults

	sections = append(sections,
		section(dict.T("dashboard.scores"), strings.TrimRight(RenderScores(dict, res.Scores), "\n")),
		section(dict.T("dashboard.offer"), strings.TrimRight(RenderOffer(dict, res.Offer), "\n")),
	)

	done, total := domain.TaskProgress(st.Roadmap.Tasks)
	roadmap := fmt.Sprintf("%s  %s",
		RenderProgress(Ratio(done, total), 15),
		dict.Tf("roadmap.progress", done, total))

	byPhase := domain.TasksByPhase(st.Roadmap.Tasks)
	for _, phase := range domain.Phases {
		tasks := byPhase[phase]
		if len(tasks) == 0 {
			continue
		}
		phaseDone, phaseTotal := domain.TaskProgress(tasks)
		roadmap += fmt.Sprintf("\n  %s %d/%d",
			PhaseColor(phase).Render(string(phase)), phaseDone, phaseTotal)
	}
	sections = append(sections, section(dict.T("dashboard.roadmap"), roadmap))

	checks := domain.NormalizeChecks(st.Validation.Checks)
	checked := 0
	for _, c := range checks {
		if c {
			checked++
		}
	}
	validation := fmt.Sprintf("%s  %s",
		RenderProgress(Ratio(checked, len(checks)), 15),
		dict.Tf("validation.progress", checked, len(checks)))
	sections = append(sections, section(dict.T("dashboard.validation"), validation))

	sections = append(sections,
		section(dict.T("dashboard.finance"), strings.TrimRight(RenderFinance(dict, st.Finance), "\n")))

	return strings.Join(sections, "\n\n") + "\n"
}

func section(title, content string) string {
	return StyleHeader.Render(title) + "\n" + content
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/nolimit-nexus/nexus/internal/domain"
)

func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("required")
			}
			return nil
		})
}

func optionalNumberInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalNumber)
}

func validateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a number >= 0")
	}
	return nil
}

func projectTypeSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("What are you selling?").
		Options(
			huh.NewOption("Service (done for you)", string(domain.TypeService)),
			huh.NewOption("Digital product", string(domain.TypeDigital)),
			huh.NewOption("Subscription", string(domain.TypeSubscription)),
			huh.NewOption("Physical product", string(domain.TypePhysical)),
			huh.NewOption("Audience / content", string(domain.TypeAudience)),
		).
		Value(value)
}

func audienceSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Who buys it?").
		Options(
			huh.NewOption("Consumers (B2C)", string(domain.AudienceB2C)),
			huh.NewOption("Businesses (B2B)", string(domain.AudienceB2B)),
			huh.NewOption("Both", string(domain.AudienceBoth)),
		).
		Value(value)
}

func budgetSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Starting budget").
		Options(
			huh.NewOption("0-50", string(domain.BudgetTiny)),
			huh.NewOption("50-200", string(domain.BudgetSmall)),
			huh.NewOption("200-1000", string(domain.BudgetMedium)),
			huh.NewOption("1000+", string(domain.BudgetLarge)),
		).
		Value(value)
}

func timeSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Hours per week").
		Options(
			huh.NewOption("2-5", string(domain.TimeMinimal)),
			huh.NewOption("5-10", string(domain.TimeLight)),
			huh.NewOption("10-20", string(domain.TimeSerious)),
			huh.NewOption("20+", string(domain.TimeFull)),
		).
		Value(value)
}

func experienceSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Experience level").
		Options(
			huh.NewOption("Beginner", string(domain.ExpBeginner)),
			huh.NewOption("Intermediate", string(domain.ExpIntermediate)),
			huh.NewOption("Expert", string(domain.ExpExpert)),
		).
		Value(value)
}

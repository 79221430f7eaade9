// Package classify implements the scoring engine that maps questionnaire
// answers onto an initiative category (Programme, Project or BAU) and the
// set of form sections that category makes visible.
package classify

import "github.com/alexanderramin/triage/internal/domain"

// SectionFlags carries the branching answers, beyond the raw score, that
// influence section visibility.
type SectionFlags struct {
	LegislativeImpact bool
}

// Classify scores the answered dimensions against the table and resolves
// the category and visible sections. It is a total function: unanswered or
// unrecognised answers contribute zero, and identical inputs always yield
// an identical result.
func Classify(answers map[domain.Dimension]domain.Choice, flags SectionFlags, table ScoringTable) domain.ClassificationResult {
	score := Score(answers, table)
	category := categoryFor(score, table)

	return domain.ClassificationResult{
		Score:           score,
		Category:        category,
		VisibleSections: VisibleSections(score, category, flags),
	}
}

// Score sums the configured point values of the given answers.
func Score(answers map[domain.Dimension]domain.Choice, table ScoringTable) int {
	total := 0
	for _, dim := range domain.AllDimensions {
		choice, ok := answers[dim]
		if !ok {
			continue
		}
		total += table.Points[dim][choice]
	}
	return total
}

func categoryFor(score int, table ScoringTable) domain.Category {
	switch {
	case score >= table.ProgrammeMin:
		return domain.CategoryProgramme
	case score >= table.ProjectMin:
		return domain.CategoryProject
	default:
		return domain.CategoryBAU
	}
}

// VisibleSections resolves progressive disclosure: details, classification
// and sign-off always render; governance, benefits and resourcing appear
// at Project tier and above; tranche planning and the programme board only
// at Programme tier; the legislative section only when the initiative has
// declared legislative impact.
func VisibleSections(score int, category domain.Category, flags SectionFlags) map[domain.SectionID]bool {
	visible := map[domain.SectionID]bool{
		domain.SectionDetails:        true,
		domain.SectionClassification: true,
		domain.SectionSignOff:        true,
	}

	if category == domain.CategoryProject || category == domain.CategoryProgramme {
		visible[domain.SectionGovernance] = true
		visible[domain.SectionBenefits] = true
		visible[domain.SectionResourcing] = true
	}
	if category == domain.CategoryProgramme {
		visible[domain.SectionTranches] = true
		visible[domain.SectionProgrammeBoard] = true
	}
	if flags.LegislativeImpact {
		visible[domain.SectionLegislative] = true
	}

	return visible
}

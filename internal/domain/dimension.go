package domain

// Dimension identifies one of the seven classification questions.
type Dimension string

const (
	DimTiming           Dimension = "timing"
	DimScope            Dimension = "scope"
	DimOversight        Dimension = "oversight"
	DimRisk             Dimension = "risk"
	DimBudget           Dimension = "budget"
	DimBenefitTracking  Dimension = "benefit_tracking"
	DimChangeManagement Dimension = "change_management"
)

// AllDimensions is the canonical ordering used for rendering and scoring.
var AllDimensions = []Dimension{
	DimTiming,
	DimScope,
	DimOversight,
	DimRisk,
	DimBudget,
	DimBenefitTracking,
	DimChangeManagement,
}

// Choice is one enumerated answer to a classification dimension.
type Choice string

// Category is the classification tier derived from the total score.
type Category string

const (
	CategoryProgramme Category = "Programme"
	CategoryProject   Category = "Project"
	CategoryBAU       Category = "BAU"
)

// SectionID names a form section subject to progressive disclosure.
type SectionID string

const (
	SectionDetails        SectionID = "details"
	SectionClassification SectionID = "classification"
	SectionGovernance     SectionID = "governance"
	SectionBenefits       SectionID = "benefits"
	SectionResourcing     SectionID = "resourcing"
	SectionTranches       SectionID = "tranches"
	SectionProgrammeBoard SectionID = "programme_board"
	SectionLegislative    SectionID = "legislative"
	SectionSignOff        SectionID = "sign_off"
)

// ClassificationResult is the pure output of scoring the seven dimensions.
type ClassificationResult struct {
	Score           int
	Category        Category
	VisibleSections map[SectionID]bool
}

// Visible reports whether the given section is in the visible set.
func (r ClassificationResult) Visible(id SectionID) bool {
	return r.VisibleSections[id]
}

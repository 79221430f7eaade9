package form

import "github.com/alexanderramin/triage/internal/domain"

// FieldSpec describes one static questionnaire field: its stable key, the
// value kind it carries, and the section it belongs to.
type FieldSpec struct {
	Key     string
	Kind    domain.FieldKind
	Section domain.SectionID
	Title   string
}

// StaticFields is the catalog of non-repeating fields in render order.
// Dimension answer fields use the dimension id as their key.
var StaticFields = []FieldSpec{
	{Key: "initiativeName", Kind: domain.FieldText, Section: domain.SectionDetails, Title: "Initiative name"},
	{Key: "sponsor", Kind: domain.FieldText, Section: domain.SectionDetails, Title: "Senior sponsor"},
	{Key: "department", Kind: domain.FieldText, Section: domain.SectionDetails, Title: "Department"},
	{Key: "startDate", Kind: domain.FieldDate, Section: domain.SectionDetails, Title: "Planned start date"},
	{Key: "description", Kind: domain.FieldText, Section: domain.SectionDetails, Title: "Description"},

	{Key: "timing", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Timing"},
	{Key: "scope", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Scope"},
	{Key: "oversight", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Oversight"},
	{Key: "risk", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Risk"},
	{Key: "budget", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Budget"},
	{Key: "benefit_tracking", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Benefit tracking"},
	{Key: "change_management", Kind: domain.FieldText, Section: domain.SectionClassification, Title: "Change management"},
	{Key: "legislativeImpact", Kind: domain.FieldBool, Section: domain.SectionClassification, Title: "Legislative impact?"},

	{Key: "governanceBoard", Kind: domain.FieldText, Section: domain.SectionGovernance, Title: "Governance board"},
	{Key: "reportingCadence", Kind: domain.FieldText, Section: domain.SectionGovernance, Title: "Reporting cadence"},
	{Key: "benefitOwner", Kind: domain.FieldText, Section: domain.SectionBenefits, Title: "Benefit owner"},
	{Key: "resourcePlan", Kind: domain.FieldText, Section: domain.SectionResourcing, Title: "Resource plan"},
	{Key: "trancheOutline", Kind: domain.FieldText, Section: domain.SectionTranches, Title: "Tranche outline"},
	{Key: "boardChair", Kind: domain.FieldText, Section: domain.SectionProgrammeBoard, Title: "Programme board chair"},
	{Key: "legislativeDetail", Kind: domain.FieldText, Section: domain.SectionLegislative, Title: "Legislative detail"},

	{Key: "preparedBy", Kind: domain.FieldText, Section: domain.SectionSignOff, Title: "Prepared by"},
	{Key: "signedDate", Kind: domain.FieldDate, Section: domain.SectionSignOff, Title: "Date signed"},
	{Key: "sponsorSignature", Kind: domain.FieldImage, Section: domain.SectionSignOff, Title: "Sponsor signature"},
}

var specsByKey = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(StaticFields))
	for _, s := range StaticFields {
		m[s.Key] = s
	}
	return m
}()

// SpecFor looks up the catalog entry for a static field key.
func SpecFor(key string) (FieldSpec, bool) {
	s, ok := specsByKey[key]
	return s, ok
}

// ValueFor converts a raw wire string into the tagged value the catalog
// declares for the key. Unknown keys (including dynamic-row fields)
// default to text.
func ValueFor(key, raw string) domain.FieldValue {
	spec, ok := specsByKey[key]
	if !ok {
		return domain.TextValue(raw)
	}
	switch spec.Kind {
	case domain.FieldBool:
		return domain.BoolValue(raw == "true")
	case domain.FieldDate:
		return domain.DateValue(raw)
	case domain.FieldImage:
		return domain.ImageValue(raw)
	default:
		return domain.TextValue(raw)
	}
}

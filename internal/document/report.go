// Package document renders a questionnaire snapshot as a styled PDF
// report: a titled, sectioned A4 document with page numbering, suitable
// for filing alongside the workflow submission.
package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/form"
)

// fallbackTitle is used when the snapshot carries no initiative name.
const fallbackTitle = "Initiative Triage Report"

// Report is the printable projection of a snapshot: a document title and
// ordered sections of label/value lines.
type Report struct {
	Title    string
	Sections []Section
}

// Section is one titled block of report lines.
type Section struct {
	Heading string
	Lines   []string
}

var sectionHeadings = map[domain.SectionID]string{
	domain.SectionDetails:        "Initiative details",
	domain.SectionClassification: "Classification",
	domain.SectionGovernance:     "Governance",
	domain.SectionBenefits:       "Benefits",
	domain.SectionResourcing:     "Resourcing",
	domain.SectionTranches:       "Tranches",
	domain.SectionProgrammeBoard: "Programme board",
	domain.SectionLegislative:    "Legislative impact",
	domain.SectionSignOff:        "Sign-off",
}

var rowGroupHeadings = map[string]string{
	domain.GroupFinancialBenefits:    "Financial benefits",
	domain.GroupNonFinancialBenefits: "Non-financial benefits",
}

// BuildReport derives the report from a snapshot. The title comes from
// the initiative name when set, matching how the submission is filed;
// signature images are masked rather than dumped as base64.
func BuildReport(snap domain.FullSnapshot) Report {
	report := Report{Title: fallbackTitle}
	if name := strings.TrimSpace(snap["initiativeName"]); name != "" {
		report.Title = name
	}

	byHeading := make(map[string][]string)
	var order []string
	add := func(heading, line string) {
		if _, seen := byHeading[heading]; !seen {
			order = append(order, heading)
		}
		byHeading[heading] = append(byHeading[heading], line)
	}

	for _, spec := range form.StaticFields {
		value, set := snap[spec.Key]
		if !set || value == "" {
			continue
		}
		if spec.Kind == domain.FieldImage || strings.HasPrefix(value, "data:image/") {
			value = "(signature image)"
		}
		add(sectionHeadings[spec.Section], fmt.Sprintf("%s: %s", spec.Title, value))
	}

	for _, group := range []string{domain.GroupFinancialBenefits, domain.GroupNonFinancialBenefits} {
		for _, line := range rowLines(snap, group) {
			add(rowGroupHeadings[group], line)
		}
	}

	for _, heading := range order {
		report.Sections = append(report.Sections, Section{
			Heading: heading,
			Lines:   byHeading[heading],
		})
	}
	return report
}

// rowLines flattens one dynamic row group into display lines, one per
// row, fields in key order.
func rowLines(snap domain.FullSnapshot, group string) []string {
	rows := make(map[int]map[string]string)
	for key, value := range snap {
		g, index, name, ok := domain.ParseRowFieldKey(key)
		if !ok || g != group {
			continue
		}
		if rows[index] == nil {
			rows[index] = make(map[string]string)
		}
		rows[index][name] = value
	}
	if len(rows) == 0 {
		return nil
	}

	indexes := make([]int, 0, len(rows))
	for index := range rows {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	lines := make([]string, 0, len(indexes))
	for _, index := range indexes {
		names := make([]string, 0, len(rows[index]))
		for name := range rows[index] {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s: %s", name, rows[index][name]))
		}
		lines = append(lines, fmt.Sprintf("Row %d — %s", index+1, strings.Join(parts, ", ")))
	}
	return lines
}

// DefaultFileName derives the output file name from the report title,
// the way a converted document inherits its source's name.
func DefaultFileName(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "triage-report"
	}
	return slug + ".pdf"
}

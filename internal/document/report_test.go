package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/triage/internal/domain"
)

func TestBuildReport_TitleFromInitiativeName(t *testing.T) {
	report := BuildReport(domain.FullSnapshot{"initiativeName": "Fleet Renewal"})
	assert.Equal(t, "Fleet Renewal", report.Title)

	report = BuildReport(domain.FullSnapshot{"sponsor": "J. Ellis"})
	assert.Equal(t, fallbackTitle, report.Title)
}

func TestBuildReport_SectionsFollowCatalogOrder(t *testing.T) {
	report := BuildReport(domain.FullSnapshot{
		"preparedBy":     "A. Officer",
		"initiativeName": "Fleet Renewal",
		"timing":         "short",
	})

	require.Len(t, report.Sections, 3)
	assert.Equal(t, "Initiative details", report.Sections[0].Heading)
	assert.Equal(t, "Classification", report.Sections[1].Heading)
	assert.Equal(t, "Sign-off", report.Sections[2].Heading)
	assert.Equal(t, []string{"Timing: short"}, report.Sections[1].Lines)
}

func TestBuildReport_MasksSignatureImage(t *testing.T) {
	report := BuildReport(domain.FullSnapshot{
		"sponsorSignature": "data:image/png;base64,iVBORw0KGgo=",
	})

	require.Len(t, report.Sections, 1)
	assert.Equal(t, []string{"Sponsor signature: (signature image)"}, report.Sections[0].Lines)
}

func TestBuildReport_RowGroupsRenderInIndexOrder(t *testing.T) {
	report := BuildReport(domain.FullSnapshot{
		domain.RowFieldKey(domain.GroupFinancialBenefits, 1, "amount"):      "5000",
		domain.RowFieldKey(domain.GroupFinancialBenefits, 0, "amount"):      "25000",
		domain.RowFieldKey(domain.GroupFinancialBenefits, 0, "description"): "Licence savings",
	})

	require.Len(t, report.Sections, 1)
	assert.Equal(t, "Financial benefits", report.Sections[0].Heading)
	assert.Equal(t, []string{
		"Row 1 — amount: 25000, description: Licence savings",
		"Row 2 — amount: 5000",
	}, report.Sections[0].Lines)
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "fleet-renewal.pdf", DefaultFileName("Fleet Renewal"))
	assert.Equal(t, "q3-upgrade.pdf", DefaultFileName("  Q3 / Upgrade!  "))
	assert.Equal(t, "triage-report.pdf", DefaultFileName("???"))
}

func TestRenderPDF_WritesValidDocument(t *testing.T) {
	report := BuildReport(domain.FullSnapshot{
		"initiativeName": "Fleet Renewal",
		"sponsor":        "J. Ellis",
		"timing":         "long",
	})

	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, report))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderPDF_PaginatesLongReports(t *testing.T) {
	section := Section{Heading: "Benefits"}
	for i := 0; i < 200; i++ {
		section.Lines = append(section.Lines, strings.Repeat("x", 40))
	}
	report := Report{Title: "Long Report", Sections: []Section{section}}

	pages := paginate(flatten(report))
	require.Greater(t, len(pages), 1)

	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, report))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

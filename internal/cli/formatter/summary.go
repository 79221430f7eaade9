package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// CategoryStyle returns the style matching a classification tier.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryProgramme:
		return StyleRed
	case domain.CategoryProject:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// FormatClassification renders the score banner shown after every edit.
func FormatClassification(r domain.ClassificationResult) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Classification") + "\n")
	b.WriteString(fmt.Sprintf("  Score:    %d\n", r.Score))
	b.WriteString("  Category: " + CategoryStyle(r.Category).Render(string(r.Category)) + "\n")
	b.WriteString("  Sections: " + Dim(strings.Join(sectionNames(r), ", ")) + "\n")

	return b.String()
}

// FormatConfirmation renders the durable post-submission record.
func FormatConfirmation(snap domain.FullSnapshot) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✓ Submitted") + "\n")

	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := snap[k]
		if strings.HasPrefix(v, "data:image/") {
			v = Dim("(signature image)")
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", StyleBlue.Render(k), v))
	}
	return b.String()
}

// FormatWarnings renders storage degradation notices, one per line.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(Warn(w) + "\n")
	}
	return b.String()
}

func sectionNames(r domain.ClassificationResult) []string {
	names := make([]string, 0, len(r.VisibleSections))
	for id := range r.VisibleSections {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}

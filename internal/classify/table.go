package classify

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// ScoringTable holds the per-choice point values and category cut points.
// It is deployment configuration, not algorithm: changing a threshold or a
// point value never requires touching the engine.
type ScoringTable struct {
	Points       map[domain.Dimension]map[domain.Choice]int `toml:"points"`
	ProgrammeMin int                                        `toml:"programme_min"`
	ProjectMin   int                                        `toml:"project_min"`
}

// DefaultTable returns the standard scoring table: three weighted choices
// per dimension, Programme at 12+, Project at 8+, BAU below.
func DefaultTable() ScoringTable {
	return ScoringTable{
		ProgrammeMin: 12,
		ProjectMin:   8,
		Points: map[domain.Dimension]map[domain.Choice]int{
			domain.DimTiming: {
				"routine": 1, "time_bound": 2, "multi_phase": 3,
			},
			domain.DimScope: {
				"single_team": 1, "cross_team": 2, "organisation_wide": 3,
			},
			domain.DimOversight: {
				"line_manager": 1, "steering_group": 2, "executive_board": 3,
			},
			domain.DimRisk: {
				"low": 1, "moderate": 2, "high": 3,
			},
			domain.DimBudget: {
				"operational": 1, "dedicated": 2, "capital_programme": 3,
			},
			domain.DimBenefitTracking: {
				"not_tracked": 1, "informal": 2, "formal_realisation": 3,
			},
			domain.DimChangeManagement: {
				"minimal": 1, "managed": 2, "dedicated_function": 3,
			},
		},
	}
}

// LoadTable reads the scoring table from the TOML file named by
// TRIAGE_SCORING, falling back to DefaultTable when unset. Threshold
// overrides via TRIAGE_PROGRAMME_MIN / TRIAGE_PROJECT_MIN apply last.
func LoadTable() (ScoringTable, error) {
	table := DefaultTable()

	if path := os.Getenv("TRIAGE_SCORING"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return table, fmt.Errorf("reading scoring table: %w", err)
		}
		if err := toml.Unmarshal(data, &table); err != nil {
			return table, fmt.Errorf("parsing scoring table: %w", err)
		}
	}

	if v := os.Getenv("TRIAGE_PROGRAMME_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			table.ProgrammeMin = n
		}
	}
	if v := os.Getenv("TRIAGE_PROJECT_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			table.ProjectMin = n
		}
	}

	return table, nil
}

// Choices returns the configured choices for a dimension in ascending
// point order, for stable option rendering.
func (t ScoringTable) Choices(d domain.Dimension) []domain.Choice {
	byPoints := t.Points[d]
	out := make([]domain.Choice, 0, len(byPoints))
	for c := range byPoints {
		out = append(out, c)
	}
	// insertion sort by (points, label); choice sets are tiny
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if byPoints[a] < byPoints[b] || (byPoints[a] == byPoints[b] && a < b) {
				break
			}
			out[j-1], out[j] = b, a
		}
	}
	return out
}

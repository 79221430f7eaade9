package testutil

import "github.com/alexanderramin/triage/internal/domain"

// NewTestSnapshot returns a plausible partially-filled submission payload.
// Overrides are merged last, so a test can pin or blank individual keys.
func NewTestSnapshot(overrides map[string]string) domain.FullSnapshot {
	snap := domain.FullSnapshot{
		"initiativeName": "Estates Renewal",
		"sponsor":        "J. Ellis",
		"timing":         "multi_phase",
		"scope":          "organisation_wide",
		"risk":           "moderate",
	}
	for k, v := range overrides {
		if v == "" {
			delete(snap, k)
			continue
		}
		snap[k] = v
	}
	return snap
}

// NewTestRow builds a dynamic row with text fields from the given pairs.
func NewTestRow(group string, index int, pairs map[string]string) domain.DynamicRow {
	fields := make(map[string]domain.FieldValue, len(pairs))
	for k, v := range pairs {
		fields[k] = domain.TextValue(v)
	}
	return domain.DynamicRow{Group: group, Index: index, Fields: fields}
}

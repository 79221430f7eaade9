package domain

// Row groups for repeatable benefit records.
const (
	GroupFinancialBenefits    = "financialBenefits"
	GroupNonFinancialBenefits = "nonFinancialBenefits"
)

// ValidRowGroups is the canonical set of accepted dynamic-row group names.
var ValidRowGroups = map[string]bool{
	GroupFinancialBenefits:    true,
	GroupNonFinancialBenefits: true,
}

// DynamicRow is one repeatable record within a named group. Rows have no
// identity beyond their group and position; Index namespaces the row's
// field keys via RowFieldKey.
type DynamicRow struct {
	Group  string
	Index  int
	Fields map[string]FieldValue
}

// FieldKey returns the namespaced storage key for one of the row's fields.
func (r DynamicRow) FieldKey(name string) string {
	return RowFieldKey(r.Group, r.Index, name)
}

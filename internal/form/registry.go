// Package form holds the field registry: the single in-memory source of
// truth for current questionnaire values, static and dynamic. All access
// happens on one logical thread of control; the registry is not safe for
// concurrent use and does not need to be.
package form

import (
	"fmt"

	"github.com/alexanderramin/triage/internal/domain"
)

// FieldEdited is the single event the edit pipeline dispatches on: one
// field changed to a new value. A zero value clears the field.
type FieldEdited struct {
	Key   string
	Value domain.FieldValue
}

// MaxRowsPerGroup bounds every dynamic row group. Row indexes arrive in
// keys decoded from share links, so the bound is what keeps a single
// hostile or mistyped key from allocating rows up to its index.
const MaxRowsPerGroup = 100

// Registry enumerates all set form fields and their current values.
type Registry struct {
	static map[string]domain.FieldValue
	rows   map[string][]domain.DynamicRow
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		static: make(map[string]domain.FieldValue),
		rows:   make(map[string][]domain.DynamicRow),
	}
}

// Apply routes a FieldEdited event to the right slot: namespaced keys
// land in their dynamic row (growing the group as needed), everything
// else is a static field. Zero values clear.
func (r *Registry) Apply(ev FieldEdited) error {
	if group, index, name, ok := domain.ParseRowFieldKey(ev.Key); ok {
		if !domain.ValidRowGroups[group] {
			return fmt.Errorf("unknown row group %q", group)
		}
		if index >= MaxRowsPerGroup {
			return fmt.Errorf("row index %d exceeds the %q group bound", index, group)
		}
		if ev.Value.IsZero() {
			// Clearing a field on a row that was never created is a
			// no-op, not a reason to materialise the row.
			if index < len(r.rows[group]) {
				delete(r.rows[group][index].Fields, name)
			}
			return nil
		}
		r.growRows(group, index+1)
		r.rows[group][index].Fields[name] = ev.Value
		return nil
	}

	if ev.Value.IsZero() {
		delete(r.static, ev.Key)
	} else {
		r.static[ev.Key] = ev.Value
	}
	return nil
}

// Get returns the current value of a static field.
func (r *Registry) Get(key string) (domain.FieldValue, bool) {
	v, ok := r.static[key]
	return v, ok
}

// Bool returns the boolean value of a static field, false when unset.
func (r *Registry) Bool(key string) bool {
	v, ok := r.static[key]
	return ok && v.Kind == domain.FieldBool && v.Bool
}

// AddRow appends an empty row to the group and returns its index.
func (r *Registry) AddRow(group string) (int, error) {
	if !domain.ValidRowGroups[group] {
		return 0, fmt.Errorf("unknown row group %q", group)
	}
	index := len(r.rows[group])
	if index >= MaxRowsPerGroup {
		return 0, fmt.Errorf("group %q is full", group)
	}
	r.growRows(group, index+1)
	return index, nil
}

// Rows returns the group's rows in order. Missing groups yield nil.
func (r *Registry) Rows(group string) []domain.DynamicRow {
	return r.rows[group]
}

// SetRows replaces a group's rows wholesale, reindexing by position.
// Used when rehydrating persisted rows at startup.
func (r *Registry) SetRows(group string, rows []domain.DynamicRow) error {
	if !domain.ValidRowGroups[group] {
		return fmt.Errorf("unknown row group %q", group)
	}
	fresh := make([]domain.DynamicRow, len(rows))
	for i, row := range rows {
		fresh[i] = domain.DynamicRow{Group: group, Index: i, Fields: row.Fields}
		if fresh[i].Fields == nil {
			fresh[i].Fields = make(map[string]domain.FieldValue)
		}
	}
	r.rows[group] = fresh
	return nil
}

// Fields returns one flat view of every set field, dynamic-row fields
// under their namespaced keys. Each underlying field is read exactly once.
func (r *Registry) Fields() map[string]domain.FieldValue {
	out := make(map[string]domain.FieldValue, len(r.static))
	for k, v := range r.static {
		out[k] = v
	}
	for group, rows := range r.rows {
		for _, row := range rows {
			for name, v := range row.Fields {
				out[domain.RowFieldKey(group, row.Index, name)] = v
			}
		}
	}
	return out
}

// Answers extracts the classification-dimension answers from the static
// fields. Unanswered dimensions are simply absent.
func (r *Registry) Answers() map[domain.Dimension]domain.Choice {
	answers := make(map[domain.Dimension]domain.Choice)
	for _, dim := range domain.AllDimensions {
		if v, ok := r.static[string(dim)]; ok && v.Text != "" {
			answers[dim] = domain.Choice(v.Text)
		}
	}
	return answers
}

// Clear resets every field and row group to defaults.
func (r *Registry) Clear() {
	r.static = make(map[string]domain.FieldValue)
	r.rows = make(map[string][]domain.DynamicRow)
}

func (r *Registry) growRows(group string, size int) {
	rows := r.rows[group]
	for len(rows) < size {
		rows = append(rows, domain.DynamicRow{
			Group:  group,
			Index:  len(rows),
			Fields: make(map[string]domain.FieldValue),
		})
	}
	r.rows[group] = rows
}

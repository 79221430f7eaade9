package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// FieldKind tags the scalar type carried by a FieldValue.
type FieldKind string

const (
	FieldText  FieldKind = "text"
	FieldBool  FieldKind = "bool"
	FieldDate  FieldKind = "date"
	FieldImage FieldKind = "image"
)

// FieldValue is a single tagged form value keyed by a stable field
// identifier. Text, Date and Image payloads live in Text; Bool in Bool.
type FieldValue struct {
	Kind FieldKind `json:"kind"`
	Text string    `json:"text,omitempty"`
	Bool bool      `json:"bool,omitempty"`
}

// TextValue returns a text-kind FieldValue.
func TextValue(s string) FieldValue { return FieldValue{Kind: FieldText, Text: s} }

// BoolValue returns a bool-kind FieldValue.
func BoolValue(b bool) FieldValue { return FieldValue{Kind: FieldBool, Bool: b} }

// DateValue returns a date-kind FieldValue holding an ISO date string.
func DateValue(s string) FieldValue { return FieldValue{Kind: FieldDate, Text: s} }

// ImageValue returns an image-kind FieldValue holding an encoded image string.
func ImageValue(s string) FieldValue { return FieldValue{Kind: FieldImage, Text: s} }

// IsZero reports whether the value is unset (empty text or false bool).
func (v FieldValue) IsZero() bool {
	if v.Kind == FieldBool {
		return !v.Bool
	}
	return v.Text == ""
}

// Shareable reports whether the value may appear in a resumable link.
// Image payloads never leave the full snapshot.
func (v FieldValue) Shareable() bool {
	return v.Kind != FieldImage
}

// Wire returns the flat string representation used in snapshots.
func (v FieldValue) Wire() string {
	if v.Kind == FieldBool {
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return v.Text
}

// RowFieldKey derives the storage key for a dynamic-row field from its
// group, row index and field name, e.g. "financialBenefits[2].amount".
func RowFieldKey(group string, index int, name string) string {
	return fmt.Sprintf("%s[%d].%s", group, index, name)
}

var rowKeyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\[([0-9]+)\]\.(.+)$`)

// ParseRowFieldKey splits a namespaced dynamic-row key back into its
// group, row index and field name. ok is false for static field keys.
func ParseRowFieldKey(key string) (group string, index int, name string, ok bool) {
	m := rowKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", 0, "", false
	}
	index, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", false
	}
	return m[1], index, m[3], true
}

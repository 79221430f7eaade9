package domain

// FullSnapshot is the complete flat view of all set form fields at a point
// in time, including encoded signature images. Keys are field identifiers,
// values their wire representation. It is the submission payload shape.
type FullSnapshot map[string]string

// ShareSnapshot is the URL-safe projection of a FullSnapshot: every set
// field except those marked non-shareable (signature images).
type ShareSnapshot map[string]string

// IsEmpty reports whether no field is set.
func (s FullSnapshot) IsEmpty() bool { return len(s) == 0 }

// Clone returns an independent copy of the snapshot.
func (s FullSnapshot) Clone() FullSnapshot {
	out := make(FullSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

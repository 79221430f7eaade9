// Package snapshot builds the two canonical projections of current form
// state: the full submission payload and the URL-safe share subset.
package snapshot

import (
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/form"
	"github.com/alexanderramin/triage/internal/signature"
)

// Build derives both snapshot projections from the registry and the
// signature pads. It is total and idempotent: identical inputs yield
// identical snapshots, and each call replaces rather than appends, so it
// is safe to invoke on every edit.
//
// Unset fields are omitted entirely. An empty pad contributes nothing to
// either projection; a marked pad contributes its encoded image to the
// full snapshot only.
func Build(reg *form.Registry, pads map[string]*signature.Pad) (domain.FullSnapshot, domain.ShareSnapshot) {
	fields := reg.Fields()
	full := make(domain.FullSnapshot, len(fields))
	share := make(domain.ShareSnapshot, len(fields))

	for key, v := range fields {
		if v.IsZero() {
			continue
		}
		full[key] = v.Wire()
		if v.Shareable() {
			share[key] = v.Wire()
		}
	}

	for key, pad := range pads {
		if pad == nil || pad.IsEmpty() {
			continue
		}
		encoded, err := pad.Encode()
		if err != nil {
			// Encoding an in-memory raster cannot fail in practice;
			// a pad that somehow does is treated as unmarked.
			continue
		}
		full[key] = encoded
	}

	return full, share
}

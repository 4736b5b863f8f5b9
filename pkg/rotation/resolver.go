// Package rotation picks the crop to plant after the current one.
package rotation

import (
	"strings"

	"agrosense/pkg/region"
)

// Fallback is returned when neither an override nor a national default exists.
const Fallback = "pulses"

const maxAlternatives = 2

type Resolver struct {
	t Tables
}

func NewResolver(t Tables) *Resolver { return &Resolver{t: t} }

// NextCrop resolves state override, then national default, then Fallback.
// An unknown state and a known state without an override behave the same.
func (r *Resolver) NextCrop(currentCrop, state string) string {
	crop := strings.ToLower(strings.TrimSpace(currentCrop))
	if next, ok := r.t.Overrides[Key{Crop: crop, State: region.Normalize(state)}]; ok && next != "" {
		return next
	}
	if next, ok := r.t.Defaults[crop]; ok && next != "" {
		return next
	}
	return Fallback
}

// Alternatives lists up to two other rotation options for currentCrop, excluding next.
func (r *Resolver) Alternatives(currentCrop, next string) []string {
	crop := strings.ToLower(strings.TrimSpace(currentCrop))
	out := make([]string, 0, maxAlternatives)
	for _, alt := range r.t.Alternatives[crop] {
		if alt == next {
			continue
		}
		if len(out) == maxAlternatives {
			break
		}
		out = append(out, alt)
	}
	return out
}

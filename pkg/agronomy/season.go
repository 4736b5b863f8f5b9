package agronomy

import (
	"slices"
	"strings"

	"agrosense/pkg/region"
)

// Family buckets crops by how many cropping seasons suit them.
type Family int

const (
	Dual Family = iota
	SingleKharif
	SingleRabi
	Triple
)

const (
	kharifWindow = "Kharif (Jun–Oct)"
	rabiWindow   = "Rabi (Oct–Feb)"
	zaidWindow   = "Zaid (Mar–Jun)"
)

// WindowOverride replaces the generic window text for a crop grown in one of States.
type WindowOverride struct {
	Crop   string
	States []string
	Text   string
}

func (f Family) season() Season {
	switch f {
	case SingleKharif:
		return Season{Preferred: []string{"Kharif"}, WindowText: kharifWindow}
	case SingleRabi:
		return Season{Preferred: []string{"Rabi"}, WindowText: rabiWindow}
	case Triple:
		return Season{
			Preferred:  []string{"Kharif", "Rabi", "Zaid"},
			WindowText: strings.Join([]string{kharifWindow, rabiWindow, zaidWindow}, " / "),
		}
	default:
		return Season{Preferred: []string{"Kharif", "Rabi"}, WindowText: kharifWindow + " / " + rabiWindow}
	}
}

// Season returns the sowing seasons for crop, with locale-specific window text where known.
// Unclassified crops get the Kharif/Rabi pair.
func (t Tables) Season(state, crop string) Season {
	c := key(crop)
	s := t.Families[c].season()

	st := region.Normalize(state)
	for _, w := range t.Windows {
		if w.Crop == c && slices.Contains(w.States, st) {
			s.WindowText = w.Text
		}
	}
	return s
}

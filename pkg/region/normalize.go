// Package region canonicalizes free-text state and district names.
package region

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var aliases = map[string]string{
	"tamil nadu":     "Tamil Nadu",
	"west bengal":    "West Bengal",
	"uttar pradesh":  "Uttar Pradesh",
	"andhra pradesh": "Andhra Pradesh",
	"madhya pradesh": "Madhya Pradesh",
	"delhi nct":      "Delhi",
	"nct delhi":      "Delhi",
}

// Normalize maps a free-text state name to its canonical form. Empty input yields "".
func Normalize(s string) string {
	key := collapse(strings.ToLower(s))
	if key == "" {
		return ""
	}
	if v, ok := aliases[key]; ok {
		return v
	}
	return title(key)
}

// Title trims s and title-cases it without touching inner whitespace.
func Title(s string) string {
	return title(strings.TrimSpace(s))
}

// Canonical collapses whitespace runs, lowercases and title-cases s.
func Canonical(s string) string {
	return title(collapse(strings.ToLower(s)))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// A Caser is stateful, so each call gets its own.
func title(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

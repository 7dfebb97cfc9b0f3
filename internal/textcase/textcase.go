// Package textcase normalizes free-form input typed into the dashboard forms
// before it is persisted, so that names and notes read consistently no matter
// how they were entered.
package textcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.AmericanEnglish)

// Title collapses whitespace and title-cases every word. Short all-caps words
// (LLC, TX, USA) and words containing digits (#57, 3/4) are kept as typed,
// unless the whole input is upper-case.
func Title(s string) string {
	shouting := strings.ToUpper(s) == s
	words := strings.Fields(s)
	for i, w := range words {
		if keepVerbatim(w, shouting) {
			continue
		}
		words[i] = titler.String(w)
	}
	return strings.Join(words, " ")
}

// Sentence collapses whitespace and upper-cases the first letter of every
// sentence. Everything else is left as typed.
func Sentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	out := []rune(s)
	capNext := true
	for i, r := range out {
		switch {
		case r == '.' || r == '!' || r == '?':
			capNext = true
		case capNext && unicode.IsLetter(r):
			out[i] = unicode.ToUpper(r)
			capNext = false
		case capNext && unicode.IsDigit(r):
			capNext = false
		}
	}
	return string(out)
}

// Upper trims and upper-cases (state codes, truck numbers).
func Upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// Email trims and lower-cases an address.
func Email(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Ptr applies fn to an optional field. Blank results become nil.
func Ptr(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := fn(*s)
	if v == "" {
		return nil
	}
	return &v
}

func keepVerbatim(w string, shouting bool) bool {
	letters := 0
	upper := true
	for _, r := range w {
		if unicode.IsDigit(r) {
			return true
		}
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				upper = false
			}
		}
	}
	return !shouting && upper && letters >= 2 && letters <= 4
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Cell type detector for the Tablesniff detector. Classifies a
single cell string into a closed set of semantic type labels using an ordered
list of pattern rules. The pattern registry is compiled once at startup and
never mutated, so concurrent reads need no synchronization.
*/

package typing

import (
	"regexp"
	"strings"
	"time"
)

// Label is a semantic type tag for a single cell.
type Label int

const (
	// LabelEmpty matches empty or whitespace-only cells.
	LabelEmpty Label = iota
	// LabelInteger matches signed integers, optionally with thousands separators.
	LabelInteger
	// LabelFloat matches decimal numbers with point or comma separators and
	// optional exponents.
	LabelFloat
	// LabelDate matches a fixed set of common date/time layouts.
	LabelDate
	// LabelURL matches strings with a recognizable URL scheme prefix.
	LabelURL
	// LabelText is the fallback label; it matches anything.
	LabelText
)

// String returns the lowercase name of the label.
func (l Label) String() string {
	switch l {
	case LabelEmpty:
		return "empty"
	case LabelInteger:
		return "integer"
	case LabelFloat:
		return "float"
	case LabelDate:
		return "date"
	case LabelURL:
		return "url"
	default:
		return "text"
	}
}

// IsTyped reports whether the label carries type information usable by the
// consistency scorer. Empty and plain text do not.
func (l Label) IsTyped() bool {
	return l != LabelEmpty && l != LabelText
}

// Registry holds the compiled classification patterns. Construct once with
// NewRegistry and share read-only; Classify never mutates the registry.
type Registry struct {
	integerPatterns []*regexp.Regexp
	floatPatterns   []*regexp.Regexp
	urlPattern      *regexp.Regexp
	dateLayouts     []string
}

// NewRegistry compiles the full pattern set. Rule priority is fixed by
// Classify, not by registry contents.
func NewRegistry() *Registry {
	return &Registry{
		integerPatterns: []*regexp.Regexp{
			// Plain signed digits.
			regexp.MustCompile(`^[+-]?[0-9]+$`),
			// Thousands groups with comma, period, or thin-space conventions.
			regexp.MustCompile(`^[+-]?[0-9]{1,3}(?:,[0-9]{3})+$`),
			regexp.MustCompile(`^[+-]?[0-9]{1,3}(?:\.[0-9]{3})+$`),
			regexp.MustCompile(`^[+-]?[0-9]{1,3}(?: [0-9]{3})+$`),
		},
		floatPatterns: []*regexp.Regexp{
			// Decimal point, optional exponent.
			regexp.MustCompile(`^[+-]?(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`),
			// Decimal comma, optional exponent.
			regexp.MustCompile(`^[+-]?(?:[0-9]+,[0-9]*|,[0-9]+)(?:[eE][+-]?[0-9]+)?$`),
			// Bare exponent form such as 1e6.
			regexp.MustCompile(`^[+-]?[0-9]+[eE][+-]?[0-9]+$`),
		},
		urlPattern: regexp.MustCompile(`^(?:(?:https?|ftp)://|www\.)[^\s]+$`),
		dateLayouts: []string{
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
			"2006/01/02",
			"02/01/2006",
			"02-01-2006",
			"02.01.2006",
			"January 2, 2006",
			"Jan 2, 2006",
			"15:04:05",
			"15:04",
		},
	}
}

// defaultRegistry is the process-wide read-only pattern registry.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Classify is shorthand for Default().Classify.
func Classify(cell string) Label {
	return defaultRegistry.Classify(cell)
}

// Classify assigns a type label to a cell. It is a pure, total function:
// rules are evaluated in the fixed priority order empty, integer, float,
// date, url, and the first match wins, with plain text as the fallback.
func (r *Registry) Classify(cell string) Label {
	s := strings.TrimSpace(cell)
	if s == "" {
		return LabelEmpty
	}
	for _, p := range r.integerPatterns {
		if p.MatchString(s) {
			return LabelInteger
		}
	}
	for _, p := range r.floatPatterns {
		if p.MatchString(s) {
			return LabelFloat
		}
	}
	if r.isDate(s) {
		return LabelDate
	}
	if r.urlPattern.MatchString(s) {
		return LabelURL
	}
	return LabelText
}

// isDate tries each registered layout. Length bounds skip the parse attempts
// for cells that cannot possibly be dates.
func (r *Registry) isDate(s string) bool {
	if len(s) < 4 || len(s) > 35 {
		return false
	}
	for _, layout := range r.dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Candidate dialect space generator for the Tablesniff detector.
Enumerates a bounded, deduplicated set of candidate dialects from the
characters actually observed in the input text, so exhaustive scoring stays
tractable while still covering unusual delimiters.
*/

package dialect

import (
	"sort"
	"unicode"
)

// delimiterUniverse lists the delimiters every input is tested against,
// provided they appear in the text. Ordering here fixes the enumeration
// order of candidates, which keeps detection fully deterministic.
var delimiterUniverse = []rune{',', ';', '\t', '|', ':', ' '}

// maxObservedDelimiters caps how many delimiters outside the universe may be
// picked up from the text itself. Keeps the Cartesian product in the tens to
// low hundreds even for noisy binary-ish inputs.
const maxObservedDelimiters = 16

// Candidates enumerates every candidate dialect for the given text.
//
// Delimiter candidates are the characters of delimiterUniverse that occur in
// the text, plus up to maxObservedDelimiters further non-alphanumeric,
// non-quote characters observed in the text. Quote candidates are none,
// double quote, and single quote, the latter two only when they occur in the
// text. The escape candidate backslash is likewise only included when
// observed. The result is the deduplicated Cartesian product, in a stable
// order, with internally inconsistent combinations filtered out.
func Candidates(text string) []Dialect {
	observed := make(map[rune]bool)
	for _, r := range text {
		observed[r] = true
	}

	delims := delimiterCandidates(observed)
	if len(delims) == 0 {
		return nil
	}

	quotes := []rune{None}
	if observed['"'] {
		quotes = append(quotes, '"')
	}
	if observed['\''] {
		quotes = append(quotes, '\'')
	}

	escapes := []rune{None}
	if observed['\\'] {
		escapes = append(escapes, '\\')
	}

	seen := make(map[Dialect]bool)
	out := make([]Dialect, 0, len(delims)*len(quotes)*len(escapes))
	for _, delim := range delims {
		for _, quote := range quotes {
			for _, escape := range escapes {
				d := Dialect{Delimiter: delim, Quote: quote, Escape: escape}
				if !d.Valid() || seen[d] {
					continue
				}
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

// delimiterCandidates collects delimiter candidates from the observed
// character set: universe members first, then other plausible delimiters in
// code point order.
func delimiterCandidates(observed map[rune]bool) []rune {
	inUniverse := make(map[rune]bool, len(delimiterUniverse))
	delims := make([]rune, 0, len(delimiterUniverse))
	for _, r := range delimiterUniverse {
		inUniverse[r] = true
		if observed[r] {
			delims = append(delims, r)
		}
	}

	extra := make([]rune, 0, maxObservedDelimiters)
	for r := range observed {
		if inUniverse[r] || !plausibleDelimiter(r) {
			continue
		}
		extra = append(extra, r)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	if len(extra) > maxObservedDelimiters {
		extra = extra[:maxObservedDelimiters]
	}

	return append(delims, extra...)
}

// plausibleDelimiter filters out characters that can never act as a
// delimiter: letters, digits, quotes, the escape character, and line breaks.
func plausibleDelimiter(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	switch r {
	case '"', '\'', '\\', '\n', '\r':
		return false
	}
	return !unicode.IsControl(r)
}

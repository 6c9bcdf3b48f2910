/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dialect.go
Description: Dialect value type for the Tablesniff detector. A dialect is the
(delimiter, quote, escape) triple describing how a delimited text file encodes
its structure. Dialects are immutable values compared by field equality.
*/

package dialect

import (
	"fmt"
	"strings"
)

// None marks an absent quote or escape character.
const None rune = 0

// Dialect describes how a delimited text file encodes its structure.
// A zero Quote or Escape means the dialect has no such character.
// Dialects are plain values: comparable, hashable, never mutated.
type Dialect struct {
	Delimiter rune
	Quote     rune
	Escape    rune
}

// Valid reports whether the dialect is internally consistent: a delimiter is
// present and no two roles share the same character.
func (d Dialect) Valid() bool {
	if d.Delimiter == None {
		return false
	}
	if d.Quote != None && d.Quote == d.Delimiter {
		return false
	}
	if d.Escape != None && (d.Escape == d.Delimiter || d.Escape == d.Quote) {
		return false
	}
	return true
}

// String renders the dialect in the detect output format:
// delimiter=<char> quotechar=<char or none> escapechar=<char or none>
func (d Dialect) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "delimiter=%s", FormatChar(d.Delimiter))
	fmt.Fprintf(&b, " quotechar=%s", FormatChar(d.Quote))
	fmt.Fprintf(&b, " escapechar=%s", FormatChar(d.Escape))
	return b.String()
}

// FormatChar renders a dialect character for display. Whitespace characters
// get symbolic names so the output stays readable on a terminal.
func FormatChar(r rune) string {
	switch r {
	case None:
		return "none"
	case '\t':
		return "\\t"
	case ' ':
		return "space"
	default:
		return string(r)
	}
}

// IsCommonDelimiter reports whether r is one of the four delimiters that
// dominate real-world delimited files. The tie-break rule prefers these over
// exotic delimiters when scores are equal.
func IsCommonDelimiter(r rune) bool {
	switch r {
	case ',', ';', '\t', '|':
		return true
	}
	return false
}

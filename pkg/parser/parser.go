/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Total, recovery-oriented parser for the Tablesniff detector.
Parses raw text under a candidate dialect into a fully materialized table
using a five-state character machine. The parser never fails: malformed input
such as an unterminated quote or a trailing escape is resolved by recovery
rules, so even wrong candidate dialects always yield a scoreable table.
*/

package parser

import (
	"github.com/kleascm/tablesniff/pkg/dialect"
)

// Table is an ordered sequence of rows, all produced under one dialect from
// one source text. Fully materialized before scoring.
type Table struct {
	Dialect dialect.Dialect
	Rows    [][]string
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// parser states
const (
	stateFieldStart = iota
	stateUnquoted
	stateQuoted
	stateAfterQuote
	stateEscape
)

// Parse parses text under the given dialect into a Table. It is total: any
// input combined with any dialect produces a table, never an error.
//
// The machine transitions exactly as follows. At field start a quote opens a
// quoted field, a delimiter emits an empty cell, and a newline emits an empty
// cell and closes the row. Inside an unquoted field the delimiter and newline
// close the cell (and row), while the escape character forces the next
// character to be taken literally. Inside a quoted field newlines are part of
// the cell; a closing quote moves to an intermediate state where a second
// quote is the standard doubled-quote escape. Any other character after a
// closing quote is treated as trailing garbage and merged into the cell.
func Parse(text string, d dialect.Dialect) *Table {
	t := &Table{Dialect: d}

	runes := []rune(text)
	state := stateFieldStart
	escapeReturn := stateUnquoted

	var cell []rune
	var row []string

	emitCell := func() {
		row = append(row, string(cell))
		cell = cell[:0]
	}
	emitRow := func() {
		t.Rows = append(t.Rows, row)
		row = nil
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Normalize CRLF and lone CR to a single newline outside quoted
		// fields. Inside quotes the bytes are kept verbatim.
		newline := false
		if state != stateQuoted && state != stateEscape {
			if r == '\r' {
				if i+1 < len(runes) && runes[i+1] == '\n' {
					i++
				}
				newline = true
			} else if r == '\n' {
				newline = true
			}
		}

		switch state {
		case stateFieldStart:
			switch {
			case newline:
				emitCell()
				emitRow()
			case d.Quote != dialect.None && r == d.Quote:
				state = stateQuoted
			case r == d.Delimiter:
				emitCell()
			case d.Escape != dialect.None && r == d.Escape:
				escapeReturn = stateUnquoted
				state = stateEscape
			default:
				cell = append(cell, r)
				state = stateUnquoted
			}

		case stateUnquoted:
			switch {
			case newline:
				emitCell()
				emitRow()
				state = stateFieldStart
			case r == d.Delimiter:
				emitCell()
				state = stateFieldStart
			case d.Escape != dialect.None && r == d.Escape:
				escapeReturn = stateUnquoted
				state = stateEscape
			default:
				cell = append(cell, r)
			}

		case stateQuoted:
			switch {
			case r == d.Quote:
				state = stateAfterQuote
			case d.Escape != dialect.None && r == d.Escape:
				escapeReturn = stateQuoted
				state = stateEscape
			default:
				cell = append(cell, r)
			}

		case stateAfterQuote:
			switch {
			case newline:
				emitCell()
				emitRow()
				state = stateFieldStart
			case r == d.Quote:
				// Doubled quote: literal quote character.
				cell = append(cell, r)
				state = stateQuoted
			case r == d.Delimiter:
				emitCell()
				state = stateFieldStart
			default:
				// Recovery: trailing garbage after the closing quote is
				// merged into the cell.
				cell = append(cell, r)
				state = stateUnquoted
			}

		case stateEscape:
			cell = append(cell, r)
			state = escapeReturn
		}
	}

	// A trailing escape at end of text is dropped; an unterminated quote
	// simply closes. Flush the final row when anything is pending.
	if len(cell) > 0 || len(row) > 0 {
		emitCell()
		emitRow()
	}

	return t
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Canonical CSV serializer for the Tablesniff detector. Re-emits a
parsed table under a configurable dialect with minimal quoting: cells are
quoted only when they contain the delimiter, the quote character, or a line
break, and embedded quotes use standard doubled-quote escaping.
*/

package writer

import (
	"bufio"
	"io"
	"strings"

	"github.com/kleascm/tablesniff/pkg/dialect"
)

// Writer emits rows of cells under one dialect. The zero value is not
// usable; construct with NewCanonical or fill the fields explicitly.
type Writer struct {
	// Dialect to serialize under. Quote None with a defined Escape falls
	// back to escape-based serialization; both None writes cells verbatim.
	Dialect dialect.Dialect

	// UseCRLF terminates rows with \r\n instead of \n.
	UseCRLF bool
	// AlwaysQuote forces quoting of every cell.
	AlwaysQuote bool
	// TrailingNewline controls whether the final row is terminated.
	TrailingNewline bool
}

// NewCanonical returns a writer for the canonical dialect: comma-delimited,
// double-quoted, doubled-quote escaping, \n termination.
func NewCanonical() *Writer {
	return &Writer{
		Dialect:         dialect.Dialect{Delimiter: ',', Quote: '"'},
		TrailingNewline: true,
	}
}

// WriteTable serializes rows to dst.
func (w *Writer) WriteTable(dst io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(dst)
	terminator := "\n"
	if w.UseCRLF {
		terminator = "\r\n"
	}
	for i, row := range rows {
		for j, cell := range row {
			if j > 0 {
				if _, err := bw.WriteRune(w.Dialect.Delimiter); err != nil {
					return err
				}
			}
			if err := w.writeCell(bw, cell); err != nil {
				return err
			}
		}
		if i < len(rows)-1 || w.TrailingNewline {
			if _, err := bw.WriteString(terminator); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Serialize renders rows to a string.
func (w *Writer) Serialize(rows [][]string) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = w.WriteTable(&b, rows)
	return b.String()
}

func (w *Writer) writeCell(bw *bufio.Writer, cell string) error {
	if w.Dialect.Quote == dialect.None {
		return w.writeEscaped(bw, cell)
	}
	if !w.AlwaysQuote && !w.cellNeedsQuote(cell) {
		_, err := bw.WriteString(cell)
		return err
	}
	if _, err := bw.WriteRune(w.Dialect.Quote); err != nil {
		return err
	}
	for _, r := range cell {
		switch {
		case r == w.Dialect.Quote:
			// Doubled-quote escaping.
			if _, err := bw.WriteRune(w.Dialect.Quote); err != nil {
				return err
			}
		case w.Dialect.Escape != dialect.None && r == w.Dialect.Escape:
			// An unescaped escape character inside quotes would swallow
			// the following character on re-parse.
			if _, err := bw.WriteRune(w.Dialect.Escape); err != nil {
				return err
			}
		}
		if _, err := bw.WriteRune(r); err != nil {
			return err
		}
	}
	_, err := bw.WriteRune(w.Dialect.Quote)
	return err
}

// writeEscaped serializes a cell for quoteless dialects by prefixing the
// escape character to any delimiter, escape, or line break in the cell.
// With neither quote nor escape defined the cell is written verbatim.
func (w *Writer) writeEscaped(bw *bufio.Writer, cell string) error {
	if w.Dialect.Escape == dialect.None {
		_, err := bw.WriteString(cell)
		return err
	}
	for _, r := range cell {
		if r == w.Dialect.Delimiter || r == w.Dialect.Escape || r == '\n' || r == '\r' {
			if _, err := bw.WriteRune(w.Dialect.Escape); err != nil {
				return err
			}
		}
		if _, err := bw.WriteRune(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) cellNeedsQuote(cell string) bool {
	for _, r := range cell {
		switch r {
		case w.Dialect.Delimiter, w.Dialect.Quote, '\n', '\r':
			return true
		}
		if w.Dialect.Escape != dialect.None && r == w.Dialect.Escape {
			return true
		}
	}
	return false
}

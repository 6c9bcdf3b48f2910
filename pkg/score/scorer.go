/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer.go
Description: Consistency scorer for the Tablesniff detector. Computes a
pattern score (row-length regularity) and a type score (per-column type
agreement) for a parsed table, combines them into a single deterministic
measure, and provides the documented tie-break ordering between candidate
dialects with equal scores.
*/

package score

import (
	"math"

	"github.com/kleascm/tablesniff/pkg/dialect"
	"github.com/kleascm/tablesniff/pkg/parser"
	"github.com/kleascm/tablesniff/pkg/typing"
)

const (
	// PatternWeight and TypeWeight fix the combination of the two signals.
	// Pattern regularity is the primary signal; the type score separates
	// candidates whose pattern scores are close.
	PatternWeight = 0.85
	TypeWeight    = 0.15

	// DegenerateThreshold is the combined score at or below which a best
	// candidate is rejected as no detection.
	DegenerateThreshold = 0.05

	// textBaseline is the contribution of an all-plain-text column.
	// Free-text columns are legitimate, so they contribute a smaller
	// positive amount rather than zero.
	textBaseline = 0.25

	// tieTolerance bounds the combined-score difference under which two
	// candidates are considered tied.
	tieTolerance = 1e-9
)

// Result holds the scores computed for one (dialect, table) pair.
type Result struct {
	PatternScore float64
	TypeScore    float64
	Combined     float64

	// Rows is the number of non-blank rows; Columns is the modal row length.
	Rows    int
	Columns int

	// Degenerate marks tables too unstructured to be a plausible match:
	// fewer than two rows, or a modal row length of one.
	Degenerate bool
}

// Score computes the consistency measure for a parsed table. Blank rows
// (a single empty cell, i.e. empty source lines) are excluded from the
// row-length multiset so they do not dilute the pattern score.
func Score(t *parser.Table, reg *typing.Registry) Result {
	if reg == nil {
		reg = typing.Default()
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "" {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) < 2 {
		return Result{Rows: len(rows), Degenerate: true}
	}

	modalLen, modalCount := modalRowLength(rows)
	if modalLen <= 1 {
		return Result{Rows: len(rows), Columns: modalLen, Degenerate: true}
	}

	pattern := float64(modalCount) / float64(len(rows))
	types := typeScore(rows, modalLen, reg)

	return Result{
		PatternScore: pattern,
		TypeScore:    types,
		Combined:     PatternWeight*pattern + TypeWeight*types,
		Rows:         len(rows),
		Columns:      modalLen,
	}
}

// modalRowLength returns the most common row length and its frequency.
// Length ties resolve to the larger length so that a dialect splitting rows
// into more structure is not penalized against its own under-split twin.
func modalRowLength(rows [][]string) (int, int) {
	counts := make(map[int]int)
	for _, row := range rows {
		counts[len(row)]++
	}
	bestLen, bestCount := 0, 0
	for length, count := range counts {
		if count > bestCount || (count == bestCount && length > bestLen) {
			bestLen, bestCount = length, count
		}
	}
	return bestLen, bestCount
}

// typeScore measures per-column type agreement over the rows of modal
// length. Each column scores the fraction of its non-empty cells sharing the
// single most common typed label; all-text columns score the baseline. The
// average is weighted by the per-column score itself, favoring columns with
// strong agreement.
func typeScore(rows [][]string, width int, reg *typing.Registry) float64 {
	colScores := make([]float64, 0, width)
	for col := 0; col < width; col++ {
		labelCounts := make(map[typing.Label]int)
		nonEmpty := 0
		for _, row := range rows {
			if len(row) != width {
				continue
			}
			label := reg.Classify(row[col])
			if label == typing.LabelEmpty {
				continue
			}
			nonEmpty++
			if label.IsTyped() {
				labelCounts[label]++
			}
		}

		if nonEmpty == 0 || len(labelCounts) == 0 {
			colScores = append(colScores, textBaseline)
			continue
		}
		best := 0
		for _, count := range labelCounts {
			if count > best {
				best = count
			}
		}
		colScores = append(colScores, float64(best)/float64(nonEmpty))
	}

	var weighted, weights float64
	for _, s := range colScores {
		weighted += s * s
		weights += s
	}
	if weights == 0 {
		return 0
	}
	return weighted / weights
}

// Better reports whether candidate a strictly beats candidate b. Outside the
// tie tolerance the higher combined score wins. Tied candidates resolve by
// the documented chain: common delimiter over uncommon, defined quote over
// none, then the smallest delimiter, quote, and escape code points. The
// ordering is total, so detection is deterministic for identical inputs.
func Better(a Result, da dialect.Dialect, b Result, db dialect.Dialect) bool {
	if math.Abs(a.Combined-b.Combined) > tieTolerance {
		return a.Combined > b.Combined
	}

	aCommon := dialect.IsCommonDelimiter(da.Delimiter)
	bCommon := dialect.IsCommonDelimiter(db.Delimiter)
	if aCommon != bCommon {
		return aCommon
	}

	aQuoted := da.Quote != dialect.None
	bQuoted := db.Quote != dialect.None
	if aQuoted != bQuoted {
		return aQuoted
	}

	if da.Delimiter != db.Delimiter {
		return da.Delimiter < db.Delimiter
	}
	if da.Quote != db.Quote {
		return da.Quote < db.Quote
	}
	return da.Escape < db.Escape
}

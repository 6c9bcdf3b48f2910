/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer_test.go
Description: Unit tests for the consistency scorer. Covers pattern and type
scoring, degenerate table rejection, blank-row exclusion, and the full
candidate tie-break ordering.
*/

package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/tablesniff/pkg/dialect"
	"github.com/kleascm/tablesniff/pkg/parser"
	"github.com/kleascm/tablesniff/pkg/score"
)

var comma = dialect.Dialect{Delimiter: ',', Quote: '"'}

func scoreText(t *testing.T, text string, d dialect.Dialect) score.Result {
	t.Helper()
	return score.Score(parser.Parse(text, d), nil)
}

// TestScorePerfectTable tests a fully regular typed table
func TestScorePerfectTable(t *testing.T) {
	result := scoreText(t, "1,2\n3,4\n5,6\n", comma)

	require.False(t, result.Degenerate)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 2, result.Columns)
	assert.InDelta(t, 1.0, result.PatternScore, 1e-12)
	assert.InDelta(t, 1.0, result.TypeScore, 1e-12)
	assert.InDelta(t, 1.0, result.Combined, 1e-12)
}

// TestScoreTextBaseline tests that all-text columns contribute the reduced
// baseline rather than zero
func TestScoreTextBaseline(t *testing.T) {
	result := scoreText(t, "a,b\nc,d\n", comma)

	require.False(t, result.Degenerate)
	assert.InDelta(t, 1.0, result.PatternScore, 1e-12)
	assert.InDelta(t, 0.25, result.TypeScore, 1e-12)
	assert.InDelta(t, score.PatternWeight+score.TypeWeight*0.25, result.Combined, 1e-12)
}

// TestScoreIrregularRows tests that off-modal rows reduce the pattern score
func TestScoreIrregularRows(t *testing.T) {
	result := scoreText(t, "1,2\n3,4\n5,6,7\n9,10\n", comma)

	require.False(t, result.Degenerate)
	assert.Equal(t, 2, result.Columns)
	assert.InDelta(t, 0.75, result.PatternScore, 1e-12)
}

// TestScoreBlankRowsExcluded tests that empty source lines do not dilute the
// pattern score
func TestScoreBlankRowsExcluded(t *testing.T) {
	withBlank := scoreText(t, "1,2\n\n3,4\n", comma)
	without := scoreText(t, "1,2\n3,4\n", comma)

	assert.Equal(t, 2, withBlank.Rows)
	assert.Equal(t, without.PatternScore, withBlank.PatternScore)
	assert.Equal(t, without.Combined, withBlank.Combined)
}

// TestScoreDegenerateSingleRow tests rejection of tables with fewer than two rows
func TestScoreDegenerateSingleRow(t *testing.T) {
	result := scoreText(t, "1,2,3\n", comma)

	assert.True(t, result.Degenerate)
	assert.Zero(t, result.Combined)
}

// TestScoreDegenerateSingleColumn tests rejection when the modal row length is one
func TestScoreDegenerateSingleColumn(t *testing.T) {
	result := scoreText(t, "hello\nworld\nagain\n", comma)

	assert.True(t, result.Degenerate)
	assert.Equal(t, 1, result.Columns)
	assert.Zero(t, result.Combined)
}

// TestScoreModalTiePrefersWiderRows tests that a row-length tie resolves to
// the larger length
func TestScoreModalTiePrefersWiderRows(t *testing.T) {
	result := scoreText(t, "1,2,3\n4,5\n6,7,8\n9,10\n", comma)

	require.False(t, result.Degenerate)
	assert.Equal(t, 3, result.Columns)
	assert.InDelta(t, 0.5, result.PatternScore, 1e-12)
}

// TestScoreMixedColumnAgreement tests the per-column majority fraction
func TestScoreMixedColumnAgreement(t *testing.T) {
	// First column: 3 integers, 1 float. Second column: all integers.
	result := scoreText(t, "1,2\n2,4\n3.5,6\n4,8\n", comma)

	require.False(t, result.Degenerate)
	// Columns score 0.75 and 1.0; self-weighted average favors agreement.
	assert.InDelta(t, (0.75*0.75+1.0)/(0.75+1.0), result.TypeScore, 1e-12)
}

// TestScoreEmptyCellsIgnoredForTyping tests that empty cells are excluded
// from type agreement
func TestScoreEmptyCellsIgnoredForTyping(t *testing.T) {
	result := scoreText(t, "1,\n2,\n3,4\n", comma)

	require.False(t, result.Degenerate)
	assert.InDelta(t, 1.0, result.TypeScore, 1e-12)
}

// TestBetterScoreWins tests that score dominates outside the tie tolerance
func TestBetterScoreWins(t *testing.T) {
	high := score.Result{Combined: 0.9}
	low := score.Result{Combined: 0.5}
	exotic := dialect.Dialect{Delimiter: '~'}
	common := dialect.Dialect{Delimiter: ','}

	assert.True(t, score.Better(high, exotic, low, common))
	assert.False(t, score.Better(low, common, high, exotic))
}

// TestBetterTieCommonDelimiter tests the common-delimiter preference on ties
func TestBetterTieCommonDelimiter(t *testing.T) {
	tied := score.Result{Combined: 0.85}
	semicolon := dialect.Dialect{Delimiter: ';'}
	bang := dialect.Dialect{Delimiter: '!'}

	assert.True(t, score.Better(tied, semicolon, tied, bang))
	assert.False(t, score.Better(tied, bang, tied, semicolon))
}

// TestBetterTieDefinedQuote tests that a defined quote beats none on ties
func TestBetterTieDefinedQuote(t *testing.T) {
	tied := score.Result{Combined: 0.85}
	quoted := dialect.Dialect{Delimiter: ',', Quote: '"'}
	bare := dialect.Dialect{Delimiter: ','}

	assert.True(t, score.Better(tied, quoted, tied, bare))
	assert.False(t, score.Better(tied, bare, tied, quoted))
}

// TestBetterTieLexicographic tests the final code-point ordering
func TestBetterTieLexicographic(t *testing.T) {
	tied := score.Result{Combined: 0.85}

	assert.True(t, score.Better(tied, dialect.Dialect{Delimiter: ','}, tied, dialect.Dialect{Delimiter: '|'}))
	assert.True(t, score.Better(tied,
		dialect.Dialect{Delimiter: ',', Quote: '"'},
		tied,
		dialect.Dialect{Delimiter: ',', Quote: '\''}))
	assert.True(t, score.Better(tied,
		dialect.Dialect{Delimiter: ',', Quote: '"'},
		tied,
		dialect.Dialect{Delimiter: ',', Quote: '"', Escape: '\\'}))
}

// TestBetterIsTotal tests that Better never reports both orders
func TestBetterIsTotal(t *testing.T) {
	results := []score.Result{{Combined: 0.85}, {Combined: 0.85 + 1e-12}}
	dialects := []dialect.Dialect{
		{Delimiter: ','},
		{Delimiter: ',', Quote: '"'},
		{Delimiter: ';'},
		{Delimiter: '~', Escape: '\\'},
	}

	for _, ra := range results {
		for _, rb := range results {
			for _, da := range dialects {
				for _, db := range dialects {
					if da == db && ra == rb {
						continue
					}
					ab := score.Better(ra, da, rb, db)
					ba := score.Better(rb, db, ra, da)
					assert.False(t, ab && ba, "both %s and %s report better", da, db)
				}
			}
		}
	}
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dialect_test.go
Description: Unit tests for the dialect value type and the candidate space
generator. Covers candidate bounding, deduplication, observation-driven quote
and escape inclusion, and deterministic enumeration order.
*/

package dialect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/tablesniff/pkg/dialect"
)

// TestDialectValid tests internal consistency checking
func TestDialectValid(t *testing.T) {
	assert.True(t, dialect.Dialect{Delimiter: ','}.Valid())
	assert.True(t, dialect.Dialect{Delimiter: ',', Quote: '"', Escape: '\\'}.Valid())

	assert.False(t, dialect.Dialect{}.Valid(), "missing delimiter")
	assert.False(t, dialect.Dialect{Delimiter: ',', Quote: ','}.Valid(), "quote equals delimiter")
	assert.False(t, dialect.Dialect{Delimiter: ',', Quote: '"', Escape: '"'}.Valid(), "escape equals quote")
}

// TestDialectString tests the detect output format
func TestDialectString(t *testing.T) {
	d := dialect.Dialect{Delimiter: ',', Quote: '"'}
	assert.Equal(t, `delimiter=, quotechar=" escapechar=none`, d.String())

	tab := dialect.Dialect{Delimiter: '\t'}
	assert.Equal(t, `delimiter=\t quotechar=none escapechar=none`, tab.String())
}

// TestCandidatesObservedOnly tests that only observed characters generate candidates
func TestCandidatesObservedOnly(t *testing.T) {
	cands := dialect.Candidates("a,b\n1,2\n")

	require.Len(t, cands, 1)
	assert.Equal(t, dialect.Dialect{Delimiter: ','}, cands[0])
}

// TestCandidatesQuotesRequirePresence tests that quote candidates appear only
// when the quote character occurs in the text
func TestCandidatesQuotesRequirePresence(t *testing.T) {
	withQuotes := dialect.Candidates("a,\"b\"\n")
	withoutQuotes := dialect.Candidates("a,b\n")

	assert.Len(t, withoutQuotes, 1)
	require.Len(t, withQuotes, 2)
	assert.Contains(t, withQuotes, dialect.Dialect{Delimiter: ',', Quote: '"'})
}

// TestCandidatesEscapeRequiresPresence tests backslash-driven escape candidates
func TestCandidatesEscapeRequiresPresence(t *testing.T) {
	cands := dialect.Candidates("a,b\\c\n")

	assert.Contains(t, cands, dialect.Dialect{Delimiter: ','})
	assert.Contains(t, cands, dialect.Dialect{Delimiter: ',', Escape: '\\'})
}

// TestCandidatesUnusualDelimiter tests that delimiters outside the common
// universe are still picked up from the text
func TestCandidatesUnusualDelimiter(t *testing.T) {
	cands := dialect.Candidates("a~b~c\n1~2~3\n")

	assert.Contains(t, cands, dialect.Dialect{Delimiter: '~'})
}

// TestCandidatesExcludeAlphanumerics tests that letters and digits never
// become delimiter candidates
func TestCandidatesExcludeAlphanumerics(t *testing.T) {
	for _, c := range dialect.Candidates("axbxc\n1x2x3\n,") {
		assert.NotEqual(t, 'x', c.Delimiter)
		assert.NotEqual(t, '1', c.Delimiter)
	}
}

// TestCandidatesBounded tests the cap on exotic delimiters
func TestCandidatesBounded(t *testing.T) {
	// Far more exotic punctuation than the observation cap.
	text := "!#$%&()*+-./<=>?@[]^_`{}~¡¢£¤¥¦§¨©ª«¬,"
	cands := dialect.Candidates(text)

	delims := make(map[rune]bool)
	for _, c := range cands {
		delims[c.Delimiter] = true
	}
	assert.LessOrEqual(t, len(delims), 6+16)
}

// TestCandidatesDeterministic tests that enumeration order is stable
func TestCandidatesDeterministic(t *testing.T) {
	text := "a;b|c\t\"d\"\\e\n1;2|3\t4\n"

	first := dialect.Candidates(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, dialect.Candidates(text))
	}
}

// TestCandidatesNoneForPlainText tests that text without any plausible
// delimiter yields no candidates
func TestCandidatesNoneForPlainText(t *testing.T) {
	assert.Empty(t, dialect.Candidates("abc123"))
	assert.Empty(t, dialect.Candidates(""))
}

// TestCandidatesAllValid tests that no internally inconsistent combination
// is ever emitted
func TestCandidatesAllValid(t *testing.T) {
	text := "a,'b';\"c\"\\|\n"
	for _, c := range dialect.Candidates(text) {
		assert.True(t, c.Valid(), "invalid candidate %s", c)
	}
}

// TestFormatChar tests display names for special characters
func TestFormatChar(t *testing.T) {
	assert.Equal(t, "none", dialect.FormatChar(dialect.None))
	assert.Equal(t, "\\t", dialect.FormatChar('\t'))
	assert.Equal(t, "space", dialect.FormatChar(' '))
	assert.Equal(t, ";", dialect.FormatChar(';'))
}

// TestIsCommonDelimiter tests the tie-break preference set
func TestIsCommonDelimiter(t *testing.T) {
	for _, r := range []rune{',', ';', '\t', '|'} {
		assert.True(t, dialect.IsCommonDelimiter(r), "expected %q common", r)
	}
	for _, r := range ":~# " {
		if strings.ContainsRune(",;\t|", r) {
			continue
		}
		assert.False(t, dialect.IsCommonDelimiter(r), "expected %q uncommon", r)
	}
}

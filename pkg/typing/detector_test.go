/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector_test.go
Description: Unit tests for the cell type detector. Covers the fixed rule
priority order, each label's pattern family, and purity of classification.
*/

package typing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/tablesniff/pkg/typing"
)

// TestClassifyPriorityOrder tests representative values for every label in
// the fixed priority order
func TestClassifyPriorityOrder(t *testing.T) {
	cases := []struct {
		cell string
		want typing.Label
	}{
		// empty
		{"", typing.LabelEmpty},
		{"   ", typing.LabelEmpty},
		{"\t", typing.LabelEmpty},

		// integer
		{"0", typing.LabelInteger},
		{"42", typing.LabelInteger},
		{"+7", typing.LabelInteger},
		{"-13", typing.LabelInteger},
		{"1,234,567", typing.LabelInteger},
		{"1.234.567", typing.LabelInteger},
		{"12 345", typing.LabelInteger},

		// float
		{"3.14", typing.LabelFloat},
		{"-0.5", typing.LabelFloat},
		{".5", typing.LabelFloat},
		{"3,14", typing.LabelFloat},
		{"1e6", typing.LabelFloat},
		{"6.02e23", typing.LabelFloat},
		{"-2.5E-3", typing.LabelFloat},

		// date/time
		{"2021-03-01", typing.LabelDate},
		{"2021/03/01", typing.LabelDate},
		{"01/03/2021", typing.LabelDate},
		{"2021-03-01 12:30:00", typing.LabelDate},
		{"2021-03-01T12:30:00", typing.LabelDate},
		{"12:30:05", typing.LabelDate},
		{"Jan 2, 2021", typing.LabelDate},

		// url
		{"https://example.com", typing.LabelURL},
		{"http://example.com/a?b=c", typing.LabelURL},
		{"ftp://host/file", typing.LabelURL},
		{"www.example.com/x", typing.LabelURL},

		// plain text fallback
		{"hello", typing.LabelText},
		{"12abc", typing.LabelText},
		{"a b c", typing.LabelText},
		{"1.2.3.4", typing.LabelText},
		{"--", typing.LabelText},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, typing.Classify(tc.cell), "cell %q", tc.cell)
	}
}

// TestClassifyIntegerBeatsFloat tests that thousands-separated integers are
// not misread as decimal-comma floats
func TestClassifyIntegerBeatsFloat(t *testing.T) {
	assert.Equal(t, typing.LabelInteger, typing.Classify("1,234"))
	assert.Equal(t, typing.LabelFloat, typing.Classify("1,23"))
}

// TestClassifyWhitespaceTrimmed tests that surrounding whitespace does not
// change the label
func TestClassifyWhitespaceTrimmed(t *testing.T) {
	assert.Equal(t, typing.LabelInteger, typing.Classify("  42  "))
	assert.Equal(t, typing.LabelDate, typing.Classify(" 2021-03-01 "))
}

// TestClassifyDeterministic tests that classification is pure
func TestClassifyDeterministic(t *testing.T) {
	reg := typing.NewRegistry()
	for i := 0; i < 10; i++ {
		assert.Equal(t, typing.LabelFloat, reg.Classify("2.71828"))
	}
}

// TestLabelString tests label names
func TestLabelString(t *testing.T) {
	assert.Equal(t, "integer", typing.LabelInteger.String())
	assert.Equal(t, "text", typing.LabelText.String())
}

// TestIsTyped tests which labels count toward type agreement
func TestIsTyped(t *testing.T) {
	assert.True(t, typing.LabelInteger.IsTyped())
	assert.True(t, typing.LabelDate.IsTyped())
	assert.False(t, typing.LabelEmpty.IsTyped())
	assert.False(t, typing.LabelText.IsTyped())
}

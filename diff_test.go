package dmp

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffMainScenario(t *testing.T) {
	e := &DiffEngine{Timeout: time.Second, EditCost: 4}
	diffs := e.Main("Apples are a fruit.", "Bananas are also fruit.", false)

	want := []Diff{
		diffDel("Apple"),
		diffIns("Banana"),
		diffEq("s are a"),
		diffIns("lso"),
		diffEq(" fruit."),
	}
	assert.Equal(t, want, diffs)
}

func TestDiffScriptFidelity(t *testing.T) {
	e := &DiffEngine{Timeout: time.Second, EditCost: 4}
	cases := []struct{ a, b string }{
		{"The quick brown fox jumps over the lazy dog.", "That quick brown fox jumped over a lazy dog."},
		{"", "hello"},
		{"hello", ""},
		{"same", "same"},
		{"café naïve", "cafe naive"},
	}
	for _, c := range cases {
		diffs := e.Main(c.a, c.b, true)
		assert.Equal(t, c.a, Text1(diffs))
		assert.Equal(t, c.b, Text2(diffs))
	}
}

func TestCleanupMergeCanonicalForm(t *testing.T) {
	diffs := []Diff{
		diffEq("a"),
		diffDel("b"),
		diffIns("c"),
		diffIns("d"),
		diffEq(""),
		diffEq("e"),
	}
	merged := CleanupMerge(diffs)
	for i := range merged {
		require.NotEmpty(t, merged[i].Text)
		if i > 0 {
			assert.NotEqual(t, merged[i-1].Op, merged[i].Op)
		}
	}
}

func TestCommonPrefixAndOverlap(t *testing.T) {
	assert.Equal(t, 4, commonPrefixLength([]rune("1234abcdef"), []rune("1234xyz")))
	assert.Equal(t, 3, commonOverlap("123456xxx", "xxxabcd"))
	assert.Equal(t, 0, commonOverlap("fi", "ﬁi"))
}

func TestDeltaRoundTrip(t *testing.T) {
	e := &DiffEngine{Timeout: time.Second, EditCost: 4}
	diffs := e.Main("The quick brown fox jumps over the lazy dog.", "That quick brown fox jumped over a lazy dog.", true)
	delta := ToDelta(diffs)
	roundTripped, err := FromDelta(Text1(diffs), delta)
	require.NoError(t, err)
	assert.Equal(t, diffs, roundTripped)
}

func TestToDeltaScenario(t *testing.T) {
	diffs := []Diff{
		diffEq("jump"),
		diffDel("s"),
		diffIns("ed"),
		diffEq(" over "),
		diffDel("the"),
		diffIns("a"),
		diffEq(" lazy"),
		diffIns("old dog"),
	}
	assert.Equal(t, "=4\t-1\t+ed\t=6\t-3\t+a\t=5\t+old dog", ToDelta(diffs))
}

func TestLinesToCharsScalesPastDictionaryLimit(t *testing.T) {
	enc := newLineEncoder()
	var text1 strings.Builder
	for i := 0; i < 70000; i++ {
		text1.WriteString("line" + strconv.Itoa(i) + "\n")
	}
	chars := enc.encode(text1.String(), maxLinesText2)
	for _, c := range chars {
		assert.NotEqual(t, rune(0), c)
	}
}

package dmp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchMakeToTextScenario(t *testing.T) {
	e := New()
	patches := e.Patch.MakeFromTexts(
		"The quick brown fox jumps over the lazy dog.",
		"That quick brown fox jumped over a lazy dog.",
	)
	want := "@@ -1,11 +1,12 @@\n Th\n-e\n+at\n  quick b\n@@ -22,18 +22,17 @@\n jump\n-s\n+ed\n  over \n-the\n+a\n  laz\n"
	assert.Equal(t, want, ToText(patches))
}

func TestPatchApplyExactAndFuzzyMatch(t *testing.T) {
	e := New()
	a := "The quick brown fox jumps over the lazy dog."
	b := "That quick brown fox jumped over a lazy dog."
	patches := e.Patch.MakeFromTexts(a, b)

	result, applied := e.Patch.Apply(patches, a)
	assert.Equal(t, b, result)
	assert.Equal(t, []bool{true, true}, applied)

	result, applied = e.Patch.Apply(patches, "The quick red rabbit jumps over the tired tiger.")
	assert.Equal(t, "That quick red rabbit jumped over a tired tiger.", result)
	assert.Equal(t, []bool{true, true}, applied)
}

func TestPatchApplyFailedMatch(t *testing.T) {
	e := New()
	patches := e.Patch.MakeFromTexts(
		"The quick brown fox jumps over the lazy dog.",
		"That quick brown fox jumped over a lazy dog.",
	)
	result, applied := e.Patch.Apply(patches, "I am the very model of a modern major general.")
	assert.Equal(t, "I am the very model of a modern major general.", result)
	assert.Equal(t, []bool{false, false}, applied)
}

func TestPatchApplyIdempotentOnEmpty(t *testing.T) {
	e := New()
	result, applied := e.Patch.Apply(nil, "Hello world.")
	assert.Equal(t, "Hello world.", result)
	assert.Empty(t, applied)
}

func TestPatchApplyNonDestructiveOnInput(t *testing.T) {
	e := New()
	patches := e.Patch.MakeFromTexts("alpha beta gamma", "alpha delta gamma")
	before := ToText(patches)
	_, _ = e.Patch.Apply(patches, "alpha beta gamma")
	assert.Equal(t, before, ToText(patches))
}

func TestPatchApplyDeleteThresholdGating(t *testing.T) {
	digits70 := strings.Repeat("1234567890", 7)
	digits20 := strings.Repeat("12345678901234567890", 1)
	bigChange := "---------------++++++++++---------------"

	a := "x" + digits70 + "Y"
	b := "xabcY"
	observed := "x" + digits20 + bigChange + digits20 + "Y"

	e := New(WithDeleteThreshold(0.5))
	patches := e.Patch.MakeFromTexts(a, b)
	result, applied := e.Patch.Apply(patches, observed)
	assert.Equal(t, "xabc"+observed[1:], result)
	assert.Equal(t, []bool{false, true}, applied)

	e2 := New(WithDeleteThreshold(0.6))
	patches2 := e2.Patch.MakeFromTexts(a, b)
	result2, applied2 := e2.Patch.Apply(patches2, observed)
	assert.Equal(t, "xabcY", result2)
	assert.Equal(t, []bool{true, true}, applied2)
}

func TestPatchRoundTrip(t *testing.T) {
	e := New()
	patches := e.Patch.MakeFromTexts(
		"The quick brown fox jumps over the lazy dog.",
		"That quick brown fox jumped over a lazy dog.",
	)
	roundTripped, err := FromText(ToText(patches))
	require.NoError(t, err)
	require.Len(t, roundTripped, len(patches))
	for i := range patches {
		assert.Equal(t, *patches[i].Start1, *roundTripped[i].Start1)
		assert.Equal(t, *patches[i].Start2, *roundTripped[i].Start2)
		assert.Equal(t, patches[i].Length1, roundTripped[i].Length1)
		assert.Equal(t, patches[i].Length2, roundTripped[i].Length2)
		assert.Equal(t, patches[i].Diffs, roundTripped[i].Diffs)
	}
}

func TestPatchToTextEmptyList(t *testing.T) {
	assert.Equal(t, "", ToText(nil))
}

func TestFromTextRejectsMalformedHeader(t *testing.T) {
	_, err := FromText("not a header\n")
	assert.ErrorIs(t, err, ErrInvalidPatchText)
}

func TestAddContextRequiresAnchoredHunk(t *testing.T) {
	e := New()
	_, err := e.Patch.AddContext(&Hunk{}, "some text")
	assert.ErrorIs(t, err, ErrPatchNotInitialized)
}

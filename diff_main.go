package dmp

import (
	"time"
)

// Main computes the edit script transforming text1 into text2. checkLines
// enables the line-mode speedup for large inputs.
//
// Equal inputs return a single EQUAL tuple (or an empty script if both are
// empty). Otherwise the common prefix and suffix are stripped, the middle
// is handed to compute, and the stripped pieces are re-wrapped as
// equalities before the whole script is merged.
func (e *DiffEngine) Main(text1, text2 string, checkLines bool) []Diff {
	return e.mainRunes([]rune(text1), []rune(text2), checkLines, deadline(e.Timeout))
}

func (e *DiffEngine) mainRunes(text1, text2 []rune, checkLines bool, dl time.Time) []Diff {
	if runesEqual(text1, text2) {
		if len(text1) == 0 {
			return nil
		}
		return []Diff{diffEq(string(text1))}
	}

	n := commonPrefixLength(text1, text2)
	prefix := text1[:n]
	text1 = text1[n:]
	text2 = text2[n:]

	n = commonSuffixLength(text1, text2)
	suffix := text1[len(text1)-n:]
	text1 = text1[:len(text1)-n]
	text2 = text2[:len(text2)-n]

	diffs := e.compute(text1, text2, checkLines, dl)

	if len(prefix) != 0 {
		diffs = diffPrepend(diffEq(string(prefix)), diffs)
	}
	if len(suffix) != 0 {
		diffs = diffAppend(diffs, diffEq(string(suffix)))
	}
	return CleanupMerge(diffs)
}

// compute finds the differences between two rune slices assumed to share
// no common prefix or suffix.
func (e *DiffEngine) compute(text1, text2 []rune, checkLines bool, dl time.Time) []Diff {
	if len(text1) == 0 {
		return []Diff{diffIns(string(text2))}
	}
	if len(text2) == 0 {
		return []Diff{diffDel(string(text1))}
	}

	longText, shortText := text2, text1
	if len(text1) > len(text2) {
		longText, shortText = text1, text2
	}

	if i := runesIndex(longText, shortText); i != -1 {
		// Shorter text is inside the longer text (substring speedup).
		op := OpInsert
		if len(text1) > len(text2) {
			op = OpDelete
		}
		return []Diff{
			{op, string(longText[:i])},
			diffEq(string(shortText)),
			{op, string(longText[i+len(shortText):])},
		}
	}

	if len(shortText) == 1 {
		// After the substring speedup, a single character can't be an
		// equality.
		return []Diff{diffDel(string(text1)), diffIns(string(text2))}
	}

	if hm := e.halfMatch(text1, text2, dl.IsZero()); hm != nil {
		diffsA := e.mainRunes(hm.text1A, hm.text2A, checkLines, dl)
		diffsB := e.mainRunes(hm.text1B, hm.text2B, checkLines, dl)
		diffs := make([]Diff, 0, len(diffsA)+1+len(diffsB))
		diffs = append(diffs, diffsA...)
		diffs = append(diffs, diffEq(string(hm.commonMid)))
		diffs = append(diffs, diffsB...)
		return diffs
	}

	if checkLines && len(text1) > 100 && len(text2) > 100 {
		return e.lineMode(text1, text2, dl)
	}

	return e.bisect(text1, text2, dl)
}

func runesEqual(a, b []rune) bool {
	return string(a) == string(b)
}

// runesIndex reports the rune index of the first occurrence of needle in
// haystack, or -1 if needle is not present.
func runesIndex(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

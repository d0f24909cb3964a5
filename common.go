package dmp

import (
	"strings"
)

// commonPrefixLength returns the length, in runes, of the common prefix of
// two rune slices.
func commonPrefixLength(text1, text2 []rune) int {
	short, long := text1, text2
	if len(short) > len(long) {
		short, long = long, short
	}
	for i, r := range short {
		if r != long[i] {
			return i
		}
	}
	return len(short)
}

// commonSuffixLength returns the length, in runes, of the common suffix of
// two rune slices.
func commonSuffixLength(text1, text2 []rune) int {
	n := len(text1)
	if len(text2) < n {
		n = len(text2)
	}
	for i := 0; i < n; i++ {
		if text1[len(text1)-i-1] != text2[len(text2)-i-1] {
			return i
		}
	}
	return n
}

// commonOverlap determines the length of the longest suffix of text1 that
// is also a prefix of text2. No ligature folding or normalization is
// performed: "fi" and "ﬁi" overlap by zero.
func commonOverlap(text1, text2 string) int {
	len1, len2 := len(text1), len(text2)
	if len1 == 0 || len2 == 0 {
		return 0
	}
	if len1 > len2 {
		text1 = text1[len1-len2:]
	} else if len1 < len2 {
		text2 = text2[:len1]
	}
	textLength := min(len1, len2)
	if text1 == text2 {
		return textLength
	}

	// Start by looking for a single character match and increase length
	// until no match is found.
	best := 0
	length := 1
	for {
		pattern := text1[textLength-length:]
		found := strings.Index(text2, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || text1[textLength-length:] == text2[:length] {
			best = length
			length++
		}
	}
}

// splice removes amount elements from slice at index and replaces them with
// elements, returning a freshly built slice per the builder convention
// (design note: prefer a builder over in-place index juggling).
func splice(slice []Diff, index int, amount int, elements ...Diff) []Diff {
	out := make([]Diff, 0, len(slice)-amount+len(elements))
	out = append(out, slice[:index]...)
	out = append(out, elements...)
	out = append(out, slice[index+amount:]...)
	return out
}

// cleanAppend concatenates multiple strings, leaving the originals
// untouched. Kept for parity with the concatenation-heavy cleanup passes,
// where repeated "a = a + b" would otherwise alias and copy the same bytes
// many times over a long sweep.
func cleanAppend(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

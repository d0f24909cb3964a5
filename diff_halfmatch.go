package dmp

// halfMatchResult is the four surrounding fragments and common middle found
// by halfMatch, oriented so that text1A/text1B come from text1 and
// text2A/text2B come from text2 regardless of which side was longer.
type halfMatchResult struct {
	text1A, text1B []rune
	text2A, text2B []rune
	commonMid      []rune
}

// halfMatch checks whether text1 and text2 share a substring at least half
// the length of the longer of the two. unlimitedTime disables the check
// entirely: with no deadline, skipping this speedup keeps the diff
// provably minimal.
func (e *DiffEngine) halfMatch(text1, text2 []rune, unlimitedTime bool) *halfMatchResult {
	if unlimitedTime {
		return nil
	}

	longText, shortText := text2, text1
	longIsText1 := false
	if len(text1) > len(text2) {
		longText, shortText = text1, text2
		longIsText1 = true
	}

	if len(longText) < 4 || len(shortText)*2 < len(longText) {
		return nil // Pointless.
	}

	hm1 := halfMatchI(longText, shortText, (len(longText)+3)/4)
	hm2 := halfMatchI(longText, shortText, (len(longText)+1)/2)

	var hm *halfMatchResult
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	default:
		if len(hm1.commonMid) > len(hm2.commonMid) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	if longIsText1 {
		return hm
	}
	// hm was computed with longText==text2, shortText==text1; swap back.
	return &halfMatchResult{
		text1A:    hm.text2A,
		text1B:    hm.text2B,
		text2A:    hm.text1A,
		text2B:    hm.text1B,
		commonMid: hm.commonMid,
	}
}

// halfMatchI checks whether a substring of short exists within long, seeded
// at position i, such that the substring is at least half the length of
// long. Returns nil if no such match exists.
func halfMatchI(long, short []rune, i int) *halfMatchResult {
	seed := long[i : i+len(long)/4]

	var best halfMatchResult
	bestCommonLen := 0

	for j := runesIndexFrom(short, seed, 0); j != -1; j = runesIndexFrom(short, seed, j+1) {
		prefixLen := commonPrefixLength(long[i:], short[j:])
		suffixLen := commonSuffixLength(long[:i], short[:j])

		if bestCommonLen < suffixLen+prefixLen {
			bestCommonLen = suffixLen + prefixLen
			best.text1A = long[:i-suffixLen]
			best.text1B = long[i+prefixLen:]
			best.text2A = short[:j-suffixLen]
			best.text2B = short[j+prefixLen:]
			mid := make([]rune, 0, bestCommonLen)
			mid = append(mid, short[j-suffixLen:j]...)
			mid = append(mid, short[j:j+prefixLen]...)
			best.commonMid = mid
		}
	}

	if bestCommonLen*2 < len(long) {
		return nil
	}
	return &best
}

// runesIndexFrom reports the rune index, at or after from, of the first
// occurrence of needle in haystack.
func runesIndexFrom(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(haystack)-len(needle) {
		return -1
	}
	rel := runesIndex(haystack[from:], needle)
	if rel == -1 {
		return -1
	}
	return from + rel
}

package dmp

import "strings"

// AddContext grows a hunk's surrounding equality context from text (the
// pre-patch text the hunk was cut against) until the hunk's pattern is
// locally unique, then rolls that context into the hunk's leading/trailing
// Diffs and adjusts Start1/Start2/Length1/Length2 to match. It returns
// ErrPatchNotInitialized if hunk has not been anchored with a Start1/Start2
// pair (e.g. constructed by hand rather than by a Make function or FromText).
func (p *PatchEngine) AddContext(hunk *Hunk, text string) (*Hunk, error) {
	if len(text) == 0 {
		return hunk, nil
	}
	if hunk.Start1 == nil || hunk.Start2 == nil {
		return nil, ErrPatchNotInitialized
	}

	runes := []rune(text)
	start2 := *hunk.Start2
	pattern := string(runes[start2 : start2+hunk.Length1])
	padding := 0

	maxBits := p.match.MaxBits
	if maxBits == 0 {
		maxBits = 32
	}

	for strings.Index(text, pattern) != strings.LastIndex(text, pattern) &&
		len([]rune(pattern)) < maxBits-2*p.Margin {
		padding += p.Margin
		lo := max(0, start2-padding)
		hi := min(len(runes), start2+hunk.Length1+padding)
		pattern = string(runes[lo:hi])
	}
	padding += p.Margin

	prefixLo := max(0, start2-padding)
	prefix := string(runes[prefixLo:start2])
	if len(prefix) != 0 {
		hunk.Diffs = append([]Diff{diffEq(prefix)}, hunk.Diffs...)
	}

	suffixHi := min(len(runes), start2+hunk.Length1+padding)
	suffix := string(runes[start2+hunk.Length1 : suffixHi])
	if len(suffix) != 0 {
		hunk.Diffs = append(hunk.Diffs, diffEq(suffix))
	}

	prefixLen := len([]rune(prefix))
	suffixLen := len([]rune(suffix))
	*hunk.Start1 -= prefixLen
	*hunk.Start2 -= prefixLen
	hunk.Length1 += prefixLen + suffixLen
	hunk.Length2 += prefixLen + suffixLen

	return hunk, nil
}

// AddPadding bookends every hunk's pre/post text with a string of unlikely
// control code points (1..Margin), shifting every hunk's Start1/Start2
// forward by Margin and extending the first and last hunk's edge
// equalities so that Apply always has Margin runes of real padding to
// anchor against, even at the boundaries of the text. It returns the
// padding string that was added, which the caller must strip from the
// result of Apply.
func (p *PatchEngine) AddPadding(patches Patches) string {
	paddingLength := p.Margin
	pad := make([]rune, paddingLength)
	for i := 1; i <= paddingLength; i++ {
		pad[i-1] = rune(i)
	}
	nullPadding := string(pad)

	if len(patches) == 0 {
		return nullPadding
	}

	for _, hunk := range patches {
		*hunk.Start1 += paddingLength
		*hunk.Start2 += paddingLength
	}

	first := patches[0]
	if len(first.Diffs) == 0 || first.Diffs[0].Op != OpEqual {
		first.Diffs = append([]Diff{diffEq(nullPadding)}, first.Diffs...)
		*first.Start1 -= paddingLength
		*first.Start2 -= paddingLength
		first.Length1 += paddingLength
		first.Length2 += paddingLength
	} else if firstLen := len([]rune(first.Diffs[0].Text)); paddingLength > firstLen {
		extra := paddingLength - firstLen
		first.Diffs[0].Text = nullPadding[firstLen:] + first.Diffs[0].Text
		*first.Start1 -= extra
		*first.Start2 -= extra
		first.Length1 += extra
		first.Length2 += extra
	}

	last := patches[len(patches)-1]
	if len(last.Diffs) == 0 || last.Diffs[len(last.Diffs)-1].Op != OpEqual {
		last.Diffs = append(last.Diffs, diffEq(nullPadding))
		last.Length1 += paddingLength
		last.Length2 += paddingLength
	} else if lastLen := len([]rune(last.Diffs[len(last.Diffs)-1].Text)); paddingLength > lastLen {
		extra := paddingLength - lastLen
		last.Diffs[len(last.Diffs)-1].Text += nullPadding[:extra]
		last.Length1 += extra
		last.Length2 += extra
	}

	return nullPadding
}

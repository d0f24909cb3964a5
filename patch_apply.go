package dmp

// Apply merges patches onto text and reports which hunks matched. It never
// mutates the caller's Patches: hunks are deep-copied, then null-padded at
// both ends of text and split with SplitMax before any matching happens.
//
// For each hunk, the engine locates the hunk's pre-text within the
// (possibly shifted) working text using Match, tracking delta — the
// running offset between where a hunk was expected and where the previous
// hunk actually landed — so that drift from one successful hunk carries
// forward into the next hunk's expected location. An exact match at the
// endpoints is spliced in directly; an inexact match is reconciled with a
// fresh diff between the hunk's expected and observed text. For a pattern
// longer than MaxBits, the hunk is rejected if that diff's Levenshtein
// distance exceeds DeleteThreshold of the pattern length; otherwise it is
// spliced in insert/delete by insert/delete using XIndex to translate each
// edit's offset into the observed text.
func (p *PatchEngine) Apply(patches Patches, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, nil
	}

	patches = patches.DeepCopy()
	nullPadding := p.AddPadding(patches)
	s := []rune(nullPadding + text + nullPadding)
	patches = p.SplitMax(patches)

	maxBits := p.match.MaxBits
	if maxBits == 0 {
		maxBits = 32
	}

	results := make([]bool, len(patches))
	delta := 0

	for i, hunk := range patches {
		expectedLoc := *hunk.Start2 + delta
		text1 := []rune(Text1(hunk.Diffs))

		var startLoc, endLoc int
		endLoc = -1

		if len(text1) > maxBits {
			// SplitMax only leaves an oversized pattern for a monster
			// delete; anchor on its first and last chunks instead.
			head := string(text1[:maxBits])
			startLoc, _ = p.match.Main(string(s), head, expectedLoc)
			if startLoc != -1 {
				tail := string(text1[len(text1)-maxBits:])
				endLoc, _ = p.match.Main(string(s), tail, expectedLoc+len(text1)-maxBits)
				if endLoc == -1 || startLoc >= endLoc {
					startLoc = -1
				}
			}
		} else {
			startLoc, _ = p.match.Main(string(s), string(text1), expectedLoc)
		}

		if startLoc == -1 {
			results[i] = false
			delta -= hunk.Length2 - hunk.Length1
			continue
		}

		results[i] = true
		delta = startLoc - expectedLoc

		var observedEnd int
		if endLoc == -1 {
			observedEnd = min(startLoc+len(text1), len(s))
		} else {
			observedEnd = min(endLoc+maxBits, len(s))
		}
		text2 := s[startLoc:observedEnd]

		if runesEqual(text1, text2) {
			s = spliceRunes(s, startLoc, len(text1), []rune(Text2(hunk.Diffs)))
			continue
		}

		diffs := p.diff.Main(string(text1), string(text2), false)
		if len(text1) > maxBits &&
			float64(Levenshtein(diffs))/float64(len(text1)) > p.DeleteThreshold {
			results[i] = false
			continue
		}

		diffs = CleanupSemanticLossless(diffs)
		index1 := 0
		for _, d := range hunk.Diffs {
			if d.Op != OpEqual {
				index2 := XIndex(diffs, index1)
				switch d.Op {
				case OpInsert:
					s = spliceRunes(s, startLoc+index2, 0, []rune(d.Text))
				case OpDelete:
					from := startLoc + index2
					to := startLoc + XIndex(diffs, index1+len([]rune(d.Text)))
					s = spliceRunes(s, from, to-from, nil)
				}
			}
			if d.Op != OpDelete {
				index1 += len([]rune(d.Text))
			}
		}
	}

	paddingLen := len([]rune(nullPadding))
	out := s[paddingLen : len(s)-paddingLen]
	return string(out), results
}

func spliceRunes(s []rune, at, deleteCount int, insert []rune) []rune {
	out := make([]rune, 0, len(s)-deleteCount+len(insert))
	out = append(out, s[:at]...)
	out = append(out, insert...)
	out = append(out, s[at+deleteCount:]...)
	return out
}

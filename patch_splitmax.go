package dmp

// SplitMax decomposes any hunk whose pattern length (Length1) exceeds the
// match engine's MaxBits into a run of smaller hunks, each carrying Margin
// runes of overlap context into its neighbor so Apply can still anchor
// them independently. A deletion longer than twice MaxBits that directly
// follows a sub-hunk's leading context equality ("monster delete") is
// passed through whole in one chunk, so that sub-hunk's pattern exceeds
// MaxBits; Apply anchors such a hunk on its first and last MaxBits runes.
func (p *PatchEngine) SplitMax(patches Patches) Patches {
	patchSize := p.match.MaxBits
	if patchSize == 0 {
		patchSize = 32
	}

	var out Patches
	for _, hunk := range patches {
		if hunk.Length1 <= patchSize {
			out = append(out, hunk)
			continue
		}

		big := hunk
		start1 := *big.Start1
		start2 := *big.Start2
		var precontext []rune

		for len(big.Diffs) != 0 {
			sub := &Hunk{Start1: intPtr(start1 - len(precontext)), Start2: intPtr(start2 - len(precontext))}
			empty := true

			if len(precontext) != 0 {
				sub.Length1 = len(precontext)
				sub.Length2 = len(precontext)
				sub.Diffs = append(sub.Diffs, diffEq(string(precontext)))
			}

			for len(big.Diffs) != 0 && sub.Length1 < patchSize-p.Margin {
				diffType := big.Diffs[0].Op
				diffR := []rune(big.Diffs[0].Text)

				switch {
				case diffType == OpInsert:
					sub.Length2 += len(diffR)
					start2 += len(diffR)
					sub.Diffs = append(sub.Diffs, big.Diffs[0])
					big.Diffs = big.Diffs[1:]
					empty = false

				case diffType == OpDelete && len(sub.Diffs) == 1 && sub.Diffs[0].Op == OpEqual && len(diffR) > 2*patchSize:
					sub.Length1 += len(diffR)
					start1 += len(diffR)
					empty = false
					sub.Diffs = append(sub.Diffs, Diff{Op: diffType, Text: string(diffR)})
					big.Diffs = big.Diffs[1:]

				default:
					n := min(len(diffR), patchSize-sub.Length1-p.Margin)
					if n < 0 {
						n = 0
					}
					chunk := diffR[:n]

					sub.Length1 += len(chunk)
					start1 += len(chunk)
					if diffType == OpEqual {
						sub.Length2 += len(chunk)
						start2 += len(chunk)
					} else {
						empty = false
					}
					sub.Diffs = append(sub.Diffs, Diff{Op: diffType, Text: string(chunk)})

					if n == len(diffR) {
						big.Diffs = big.Diffs[1:]
					} else {
						big.Diffs[0] = Diff{Op: diffType, Text: string(diffR[n:])}
					}
				}
			}

			text2 := []rune(Text2(sub.Diffs))
			if len(text2) > p.Margin {
				precontext = text2[len(text2)-p.Margin:]
			} else {
				precontext = text2
			}

			text1 := []rune(Text1(big.Diffs))
			var postcontext []rune
			if len(text1) > p.Margin {
				postcontext = text1[:p.Margin]
			} else {
				postcontext = text1
			}

			if len(postcontext) != 0 {
				sub.Length1 += len(postcontext)
				sub.Length2 += len(postcontext)
				if len(sub.Diffs) != 0 && sub.Diffs[len(sub.Diffs)-1].Op == OpEqual {
					sub.Diffs[len(sub.Diffs)-1].Text += string(postcontext)
				} else {
					sub.Diffs = append(sub.Diffs, diffEq(string(postcontext)))
				}
			}

			if !empty {
				out = append(out, sub)
			}
		}
	}
	return out
}

package dmp

// MakeFromTexts computes the script between text1 and text2 (running
// CleanupSemantic + CleanupEfficiency when the raw script has more than two
// tuples, mirroring the spec's "four overloads" collapsed to explicit Go
// entry points) and builds a patch list from it.
func (p *PatchEngine) MakeFromTexts(text1, text2 string) Patches {
	diffs := p.diff.Main(text1, text2, true)
	if len(diffs) > 2 {
		diffs = p.diff.CleanupSemantic(diffs)
		diffs = p.diff.CleanupEfficiency(diffs)
	}
	return p.MakeFromText1AndScript(text1, diffs)
}

// MakeFromScript builds a patch list from a pre-computed script, deriving
// text1 by reconstructing it from the script itself.
func (p *PatchEngine) MakeFromScript(diffs []Diff) Patches {
	return p.MakeFromText1AndScript(Text1(diffs), diffs)
}

// MakeFromText1AndScript builds a patch list given the pre-text and a
// script that rewrites it. This is the core builder; MakeFromTexts and
// MakeFromScript both delegate to it. The spec's fourth overload,
// (text1, text2, script), ignores text2 and so is exactly this function.
// Every hunk this function opens is anchored with Start1/Start2 before
// AddContext ever sees it, so the ErrPatchNotInitialized path can't
// trigger here; the error AddContext returns is discarded.
func (p *PatchEngine) MakeFromText1AndScript(text1 string, diffs []Diff) Patches {
	if len(diffs) == 0 {
		return nil
	}

	var patches Patches
	var cur *Hunk
	charCount1, charCount2 := 0, 0
	prepatchText := text1
	postpatchText := text1

	openHunk := func() {
		cur = &Hunk{Start1: intPtr(charCount1), Start2: intPtr(charCount2)}
	}

	for i, d := range diffs {
		if cur == nil && d.Op != OpEqual {
			openHunk()
		}

		switch d.Op {
		case OpInsert:
			cur.Diffs = append(cur.Diffs, d)
			cur.Length2 += len([]rune(d.Text))
			postpatchText = insertAt(postpatchText, charCount2, d.Text)
		case OpDelete:
			cur.Diffs = append(cur.Diffs, d)
			cur.Length1 += len([]rune(d.Text))
			postpatchText = deleteAt(postpatchText, charCount2, len([]rune(d.Text)))
		case OpEqual:
			n := len([]rune(d.Text))
			if cur != nil && n <= 2*p.Margin && n != 0 && i != len(diffs)-1 {
				cur.Diffs = append(cur.Diffs, d)
				cur.Length1 += n
				cur.Length2 += n
			} else if n >= 2*p.Margin && cur != nil {
				cur, _ = p.AddContext(cur, prepatchText)
				patches = append(patches, cur)
				cur = nil
				prepatchText = postpatchText
				charCount1 = charCount2
			}
		}

		if d.Op != OpInsert {
			charCount1 += len([]rune(d.Text))
		}
		if d.Op != OpDelete {
			charCount2 += len([]rune(d.Text))
		}
	}

	if cur != nil {
		cur, _ = p.AddContext(cur, prepatchText)
		patches = append(patches, cur)
	}

	return patches
}

func insertAt(s string, at int, insert string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r)+len([]rune(insert)))
	out = append(out, r[:at]...)
	out = append(out, []rune(insert)...)
	out = append(out, r[at:]...)
	return string(out)
}

func deleteAt(s string, at, n int) string {
	r := []rune(s)
	out := make([]rune, 0, len(r)-n)
	out = append(out, r[:at]...)
	out = append(out, r[at+n:]...)
	return string(out)
}

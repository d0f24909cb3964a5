package dmp

import "strings"

// CleanupMerge reorders and merges same-op runs. It factors out common
// prefix/suffix between adjacent delete/insert pairs into the surrounding
// equalities, drops empty tuples, and then runs a second sweep that shifts
// single edits sideways when possible, repeating until no further shift is
// found.
func CleanupMerge(diffs []Diff) []Diff {
	// Add a dummy trailing equality so the final run gets flushed too.
	ds := diffAppend(diffs, diffEq(""))

	i := 0
	countDelete, countInsert := 0, 0
	var textDelete, textInsert string

	for i < len(ds) {
		switch ds[i].Op {
		case OpInsert:
			countInsert++
			textInsert = cleanAppend(textInsert, ds[i].Text)
			i++
		case OpDelete:
			countDelete++
			textDelete = cleanAppend(textDelete, ds[i].Text)
			i++
		case OpEqual:
			if countDelete+countInsert > 1 {
				if countDelete != 0 && countInsert != 0 {
					// Factor out any common prefix.
					if n := commonPrefixLength([]rune(textInsert), []rune(textDelete)); n > 0 {
						insRunes := []rune(textInsert)
						prefix := string(insRunes[:n])
						x := i - countDelete - countInsert
						if x > 0 && ds[x-1].Op == OpEqual {
							ds[x-1].Text = cleanAppend(ds[x-1].Text, prefix)
						} else {
							ds = diffPrepend(diffEq(prefix), ds)
							i++
						}
						textInsert = string(insRunes[n:])
						textDelete = string([]rune(textDelete)[n:])
					}
					// Factor out any common suffix.
					if n := commonSuffixLength([]rune(textInsert), []rune(textDelete)); n > 0 {
						insRunes := []rune(textInsert)
						suffix := string(insRunes[len(insRunes)-n:])
						ds[i].Text = cleanAppend(suffix, ds[i].Text)
						textInsert = string(insRunes[:len(insRunes)-n])
						delRunes := []rune(textDelete)
						textDelete = string(delRunes[:len(delRunes)-n])
					}
				}
				// Replace the offending run with the merged delete/insert.
				switch {
				case countDelete == 0:
					ds = splice(ds, i-countInsert, countDelete+countInsert, diffIns(textInsert))
				case countInsert == 0:
					ds = splice(ds, i-countDelete, countDelete+countInsert, diffDel(textDelete))
				default:
					ds = splice(ds, i-countDelete-countInsert, countDelete+countInsert,
						diffDel(textDelete), diffIns(textInsert))
				}

				i = i - countDelete - countInsert + 1
				if countDelete != 0 {
					i++
				}
				if countInsert != 0 {
					i++
				}
			} else if i != 0 && ds[i-1].Op == OpEqual {
				// Merge this equality with the previous one.
				ds[i-1].Text = cleanAppend(ds[i-1].Text, ds[i].Text)
				ds = splice(ds, i, 1)
			} else {
				i++
			}
			countInsert, countDelete = 0, 0
			textDelete, textInsert = "", ""
		}
	}

	if len(ds) > 0 && ds[len(ds)-1].Text == "" {
		ds = ds[:len(ds)-1] // Remove the dummy entry.
	}

	// Factoring can empty one side of a delete/insert pair. Drop empty
	// tuples and merge again, since a removal can leave same-op neighbors.
	kept := make([]Diff, 0, len(ds))
	for _, d := range ds {
		if d.Text != "" {
			kept = append(kept, d)
		}
	}
	if len(kept) != len(ds) {
		return CleanupMerge(kept)
	}

	return shiftSweep(ds)
}

// shiftSweep looks for single edits surrounded on both sides by equalities
// that can be shifted sideways to eliminate an equality, e.g.
// A<ins>BA</ins>C -> <ins>AB</ins>AC. A shift triggers another full
// CleanupMerge pass so the result re-stabilizes.
func shiftSweep(diffs []Diff) []Diff {
	changed := false
	out := make([]Diff, len(diffs))
	copy(out, diffs)

	i := 1
	for i < len(out)-1 {
		if out[i-1].Op == OpEqual && out[i+1].Op == OpEqual {
			switch {
			case strings.HasSuffix(out[i].Text, out[i-1].Text):
				prev := out[i-1].Text
				out[i].Text = cleanAppend(prev, out[i].Text[:len(out[i].Text)-len(prev)])
				out[i+1].Text = cleanAppend(prev, out[i+1].Text)
				out = splice(out, i-1, 1)
				changed = true
			case strings.HasPrefix(out[i].Text, out[i+1].Text):
				next := out[i+1].Text
				out[i-1].Text = cleanAppend(out[i-1].Text, next)
				out[i].Text = cleanAppend(out[i].Text[len(next):], next)
				out = splice(out, i+1, 1)
				changed = true
			}
		}
		i++
	}

	if changed {
		return CleanupMerge(out)
	}
	return out
}

package dmp

// CleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities: a small equality flanked on both sides
// by edits of both kinds, or flanked by edits totaling three of the four
// surrounding-edit flags when its length is below EditCost/2, is split the
// same way CleanupSemantic splits a coincidental equality.
func (e *DiffEngine) CleanupEfficiency(diffs []Diff) []Diff {
	changed := false
	var equalities []int
	lastEquality := ""
	i := 0
	preIns, preDel := false, false
	postIns, postDel := false, false

	for i < len(diffs) {
		if diffs[i].Op == OpEqual {
			if len(diffs[i].Text) < e.EditCost && (postIns || postDel) {
				equalities = append(equalities, i)
				preIns, preDel = postIns, postDel
				lastEquality = diffs[i].Text
			} else {
				equalities = nil
				lastEquality = ""
			}
			postIns, postDel = false, false
		} else {
			if diffs[i].Op == OpDelete {
				postDel = true
			} else {
				postIns = true
			}

			// Five shapes get split:
			//  <ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
			//  <ins>A</ins>X<ins>C</ins><del>D</del>
			//  <ins>A</ins><del>B</del>X<ins>C</ins>
			//  <ins>A</ins>X<ins>C</ins><del>D</del>
			//  <ins>A</ins><del>B</del>X<del>C</del>
			sum := 0
			for _, v := range []bool{preIns, preDel, postIns, postDel} {
				if v {
					sum++
				}
			}
			if lastEquality != "" &&
				((preIns && preDel && postIns && postDel) ||
					(len(lastEquality) < e.EditCost/2 && sum == 3)) {

				insPoint := equalities[len(equalities)-1]
				diffs = splice(diffs, insPoint, 0, diffDel(lastEquality))
				diffs[insPoint+1].Op = OpInsert
				equalities = equalities[:len(equalities)-1]
				lastEquality = ""

				if preIns && preDel {
					// No changes that could affect the previous entry;
					// keep going.
					postIns, postDel = true, true
					equalities = nil
				} else {
					if len(equalities) > 0 {
						equalities = equalities[:len(equalities)-1]
					}
					if len(equalities) > 0 {
						i = equalities[len(equalities)-1]
					} else {
						i = -1
					}
					postIns, postDel = false, false
				}
				changed = true
			}
		}
		i++
	}

	if changed {
		diffs = CleanupMerge(diffs)
	}
	return diffs
}

package dmp

import "time"

// bisectFrontier holds the forward and reverse Myers frontiers (the "v"
// arrays of Myers's paper) for one bisect call, plus the bookkeeping
// needed to prune k-values that have run off the edit graph. Packaging
// this as a receiver, rather than a flat handful of loop-local slices,
// is what lets stepForward/stepReverse each read as a single bounded
// operation instead of one long function body.
type bisectFrontier struct {
	n1, n2       int // rune lengths of the two texts being bisected
	mid          int // index of k=0 within fwd/rev
	width        int
	fwd          []int
	rev          []int
	diag         int  // n1-n2: the diagonal the reverse path's k is measured against
	oddSum       bool // n1+n2 odd => the two paths are guaranteed to cross
	fwdLo, fwdHi int
	revLo, revHi int
}

func newBisectFrontier(n1, n2 int) *bisectFrontier {
	maxD := (n1 + n2 + 1) / 2
	width := 2 * maxD
	f := &bisectFrontier{
		n1: n1, n2: n2,
		mid:   maxD,
		width: width,
		fwd:   make([]int, width),
		rev:   make([]int, width),
		diag:  n1 - n2,
	}
	for i := range f.fwd {
		f.fwd[i] = -1
		f.rev[i] = -1
	}
	f.fwd[f.mid+1] = 0
	f.rev[f.mid+1] = 0
	f.oddSum = f.diag%2 != 0
	return f
}

// stepForward advances the forward frontier by one d-step over the given
// k-range, probing each new endpoint against the reverse frontier for a
// crossing. ok reports whether a crossing point (x, y) was found.
func (f *bisectFrontier) stepForward(text1, text2 []rune, d int) (x, y int, ok bool) {
	for k := -d + f.fwdLo; k <= d-f.fwdHi; k += 2 {
		idx := f.mid + k
		var px int
		if k == -d || (k != d && f.fwd[idx-1] < f.fwd[idx+1]) {
			px = f.fwd[idx+1]
		} else {
			px = f.fwd[idx-1] + 1
		}
		py := px - k
		for px < f.n1 && py < f.n2 && text1[px] == text2[py] {
			px++
			py++
		}
		f.fwd[idx] = px

		switch {
		case px > f.n1:
			f.fwdHi += 2
		case py > f.n2:
			f.fwdLo += 2
		case f.oddSum:
			mirror := f.mid + f.diag - k
			if mirror >= 0 && mirror < f.width && f.rev[mirror] != -1 {
				rx := f.n1 - f.rev[mirror]
				if px >= rx {
					return px, py, true
				}
			}
		}
	}
	return 0, 0, false
}

// stepReverse is stepForward's mirror image, walking both texts from
// their ends.
func (f *bisectFrontier) stepReverse(text1, text2 []rune, d int) (x, y int, ok bool) {
	for k := -d + f.revLo; k <= d-f.revHi; k += 2 {
		idx := f.mid + k
		var px int
		if k == -d || (k != d && f.rev[idx-1] < f.rev[idx+1]) {
			px = f.rev[idx+1]
		} else {
			px = f.rev[idx-1] + 1
		}
		py := px - k
		for px < f.n1 && py < f.n2 && text1[f.n1-px-1] == text2[f.n2-py-1] {
			px++
			py++
		}
		f.rev[idx] = px

		switch {
		case px > f.n1:
			f.revHi += 2
		case py > f.n2:
			f.revLo += 2
		case !f.oddSum:
			mirror := f.mid + f.diag - k
			if mirror >= 0 && mirror < f.width && f.fwd[mirror] != -1 {
				fx := f.fwd[mirror]
				fy := f.mid + fx - mirror
				if fx >= f.n1-px {
					return fx, fy, true
				}
			}
		}
	}
	return 0, 0, false
}

// bisect finds a middle snake of the edit graph between text1 and text2
// via Myers's bidirectional search, splits the problem there, and
// recurses on each half. See Myers, "An O(ND) Difference Algorithm and
// Its Variations" (1986). Every dmp-lineage port in the example pack
// shares this exact two-frontier shape (forward search racing a reverse
// search along the same diagonal); what varies here is the bookkeeping
// structure (bisectFrontier + stepForward/stepReverse) rather than one
// long function mutating eight loop-local variables.
func (e *DiffEngine) bisect(text1, text2 []rune, dl time.Time) []Diff {
	n1, n2 := len(text1), len(text2)
	f := newBisectFrontier(n1, n2)
	maxD := f.mid

	for d := 0; d < maxD; d++ {
		if !dl.IsZero() && d%16 == 0 && time.Now().After(dl) {
			break
		}
		if x, y, ok := f.stepForward(text1, text2, d); ok {
			return e.bisectSplit(text1, text2, x, y, dl)
		}
		if x, y, ok := f.stepReverse(text1, text2, d); ok {
			return e.bisectSplit(text1, text2, x, y, dl)
		}
	}

	// Deadline expired, or there is no commonality at all: fall back to a
	// coarse, still-valid but possibly non-minimal script.
	return []Diff{diffDel(string(text1)), diffIns(string(text2))}
}

func (e *DiffEngine) bisectSplit(text1, text2 []rune, x, y int, dl time.Time) []Diff {
	diffsA := e.mainRunes(text1[:x], text2[:y], false, dl)
	diffsB := e.mainRunes(text1[x:], text2[y:], false, dl)
	diffs := make([]Diff, 0, len(diffsA)+len(diffsB))
	diffs = append(diffs, diffsA...)
	diffs = append(diffs, diffsB...)
	return diffs
}

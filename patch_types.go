package dmp

// Hunk is a localized edit with absolute source/destination coordinates and
// rolling context. Start1/Start2 are nil until the hunk has been anchored
// by one of the Make functions or by FromText — a well-formed serialized
// hunk always has both set.
type Hunk struct {
	Diffs   []Diff
	Start1  *int
	Start2  *int
	Length1 int
	Length2 int
}

// Patches is an ordered sequence of hunks covering disjoint, increasing
// regions of the pre-text.
type Patches []*Hunk

func intPtr(v int) *int {
	return &v
}

// DeepCopy returns independent copies of every hunk and diff tuple so that
// Apply never mutates the caller's patch list.
func (ps Patches) DeepCopy() Patches {
	out := make(Patches, len(ps))
	for i, p := range ps {
		cp := &Hunk{
			Diffs:   make([]Diff, len(p.Diffs)),
			Length1: p.Length1,
			Length2: p.Length2,
		}
		copy(cp.Diffs, p.Diffs)
		if p.Start1 != nil {
			cp.Start1 = intPtr(*p.Start1)
		}
		if p.Start2 != nil {
			cp.Start2 = intPtr(*p.Start2)
		}
		out[i] = cp
	}
	return out
}

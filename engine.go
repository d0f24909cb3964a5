package dmp

import "time"

// DiffEngine holds the Diff component's configuration: how long a diff is
// allowed to run before falling back to a coarse script, and the cost (in
// edit characters) an empty operation is assumed to carry during efficiency
// cleanup.
type DiffEngine struct {
	Timeout  time.Duration
	EditCost int
}

// MatchEngine holds the Match component's configuration for the Bitap
// fuzzy search.
type MatchEngine struct {
	Threshold float64
	Distance  int
	MaxBits   int
}

// PatchEngine holds the Patch component's configuration plus the Diff and
// Match engines it was wired to by New. MakeFromTexts delegates diff
// computation to diff; Apply delegates location search to match.
type PatchEngine struct {
	DeleteThreshold float64
	Margin          int

	diff  *DiffEngine
	match *MatchEngine
}

// DMP is the façade binding one Diff, Match, and Patch engine together, as
// described by the data model's closing sentence: "A façade constructs one
// of each and wires Patch to the other two."
type DMP struct {
	Diff  *DiffEngine
	Match *MatchEngine
	Patch *PatchEngine
}

// Option configures a DMP built by New.
type Option func(*DMP)

// WithDiffTimeout overrides the Diff engine's timeout. A timeout of zero
// means infinite (and disables the half-match speedup, per spec).
func WithDiffTimeout(d time.Duration) Option {
	return func(dmp *DMP) { dmp.Diff.Timeout = d }
}

// WithEditCost overrides the Diff engine's edit cost used by
// CleanupEfficiency.
func WithEditCost(cost int) Option {
	return func(dmp *DMP) { dmp.Diff.EditCost = cost }
}

// WithMatchThreshold overrides the Match engine's acceptance threshold.
func WithMatchThreshold(threshold float64) Option {
	return func(dmp *DMP) { dmp.Match.Threshold = threshold }
}

// WithMatchDistance overrides the Match engine's locational drift scale.
func WithMatchDistance(distance int) Option {
	return func(dmp *DMP) { dmp.Match.Distance = distance }
}

// WithMatchMaxBits overrides the Match engine's pattern length cap, which
// also bounds the Patch engine's hunk pattern size.
func WithMatchMaxBits(maxBits int) Option {
	return func(dmp *DMP) { dmp.Match.MaxBits = maxBits }
}

// WithDeleteThreshold overrides the Patch engine's tolerance for large
// deletion hunks whose content has locally diverged.
func WithDeleteThreshold(threshold float64) Option {
	return func(dmp *DMP) { dmp.Patch.DeleteThreshold = threshold }
}

// WithPatchMargin overrides the Patch engine's context chunk size.
func WithPatchMargin(margin int) Option {
	return func(dmp *DMP) { dmp.Patch.Margin = margin }
}

// New builds a façade with the library's documented defaults and applies
// opts on top.
func New(opts ...Option) *DMP {
	diffEngine := &DiffEngine{
		Timeout:  time.Second,
		EditCost: 4,
	}
	matchEngine := &MatchEngine{
		Threshold: 0.5,
		Distance:  1000,
		MaxBits:   32,
	}
	patchEngine := &PatchEngine{
		DeleteThreshold: 0.5,
		Margin:          4,
		diff:            diffEngine,
		match:           matchEngine,
	}

	dmp := &DMP{
		Diff:  diffEngine,
		Match: matchEngine,
		Patch: patchEngine,
	}

	for _, opt := range opts {
		opt(dmp)
	}

	return dmp
}

// deadline converts a relative timeout into an absolute monotonic deadline.
// A non-positive timeout means no deadline (the zero Time).
func deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(timeout)
}

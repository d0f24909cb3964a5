package dmp

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for a
// specific kind; call sites wrap these with additional context via
// fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidInput is returned when a required argument is nil or
	// otherwise absent.
	ErrInvalidInput = errors.New("dmp: invalid input")

	// ErrPatternTooLong is returned by the match engine when a pattern
	// exceeds MaxBits.
	ErrPatternTooLong = errors.New("dmp: pattern too long for bitap")

	// ErrInvalidDelta is returned by FromDelta when the encoded length
	// does not match the source text, or an unknown token is seen.
	ErrInvalidDelta = errors.New("dmp: invalid delta")

	// ErrInvalidEscape is returned by FromDelta when a +TEXT token
	// contains a malformed percent-escape sequence.
	ErrInvalidEscape = errors.New("dmp: invalid percent-escape in delta")

	// ErrInvalidPatchText is returned by FromText when a hunk header
	// doesn't match the expected shape, or a body line has an unknown
	// leading character.
	ErrInvalidPatchText = errors.New("dmp: invalid patch text")

	// ErrPatchNotInitialized is returned by AddContext when called on a
	// hunk whose Start1/Start2 are not yet anchored.
	ErrPatchNotInitialized = errors.New("dmp: patch hunk not initialized")
)

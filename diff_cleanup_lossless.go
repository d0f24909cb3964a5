package dmp

import (
	"regexp"
	"unicode/utf8"
)

var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blanklineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
	blanklineStartRegex  = regexp.MustCompile(`^\r?\n\r?\n`)
)

// boundaryScore scores, from 0 (worst) to 6 (best), whether the boundary
// between one and two falls on a logical boundary: blank line (5), line
// break (4), end of sentence (3), whitespace (2), non-alphanumeric (1), or
// the edge of the string (6). It takes its inputs explicitly rather than
// closing over mutable state (design note 9).
func boundaryScore(one, two string) int {
	if len(one) == 0 || len(two) == 0 {
		return 6
	}

	r1, _ := utf8.DecodeLastRuneInString(one)
	r2, _ := utf8.DecodeRuneInString(two)
	c1, c2 := string(r1), string(r2)

	nonAlnum1 := nonAlphaNumericRegex.MatchString(c1)
	nonAlnum2 := nonAlphaNumericRegex.MatchString(c2)
	whitespace1 := nonAlnum1 && whitespaceRegex.MatchString(c1)
	whitespace2 := nonAlnum2 && whitespaceRegex.MatchString(c2)
	lineBreak1 := whitespace1 && linebreakRegex.MatchString(c1)
	lineBreak2 := whitespace2 && linebreakRegex.MatchString(c2)
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineStartRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlnum1 && !whitespace1 && whitespace2:
		return 3
	case whitespace1 || whitespace2:
		return 2
	case nonAlnum1 || nonAlnum2:
		return 1
	default:
		return 0
	}
}

// CleanupSemanticLossless shifts single edits bounded on both sides by
// equalities toward the nearest logical boundary, so that an edit like
// "The c<ins>at c</ins>ame." becomes "The <ins>cat </ins>came." Ties favor
// trailing whitespace on the edit.
func CleanupSemanticLossless(diffs []Diff) []Diff {
	i := 1
	for i < len(diffs)-1 {
		if diffs[i-1].Op == OpEqual && diffs[i+1].Op == OpEqual {
			equality1 := diffs[i-1].Text
			edit := diffs[i].Text
			equality2 := diffs[i+1].Text

			// Shift the edit as far left as possible first.
			if n := commonSuffixLength([]rune(equality1), []rune(edit)); n > 0 {
				eq1R, editR := []rune(equality1), []rune(edit)
				common := string(editR[len(editR)-n:])
				equality1 = string(eq1R[:len(eq1R)-n])
				edit = common + string(editR[:len(editR)-n])
				equality2 = common + equality2
			}

			// Then step right one rune at a time, tracking the best score.
			bestEquality1, bestEdit, bestEquality2 := equality1, edit, equality2
			bestScore := boundaryScore(equality1, edit) + boundaryScore(edit, equality2)

			for len(edit) != 0 && len(equality2) != 0 {
				r, sz := utf8.DecodeRuneInString(edit)
				if len(equality2) < sz || equality2[:sz] != string(r) {
					break
				}
				equality1 += edit[:sz]
				edit = edit[sz:] + equality2[:sz]
				equality2 = equality2[sz:]
				score := boundaryScore(equality1, edit) + boundaryScore(edit, equality2)
				if score >= bestScore {
					bestScore = score
					bestEquality1, bestEdit, bestEquality2 = equality1, edit, equality2
				}
			}

			if diffs[i-1].Text != bestEquality1 {
				if bestEquality1 != "" {
					diffs[i-1].Text = bestEquality1
				} else {
					diffs = splice(diffs, i-1, 1)
					i--
				}
				diffs[i].Text = bestEdit
				if bestEquality2 != "" {
					diffs[i+1].Text = bestEquality2
				} else {
					diffs = splice(diffs, i+1, 1)
					i--
				}
			}
		}
		i++
	}
	return diffs
}

package dmp

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var patchHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@$`)

// ToText serializes a hunk list to the patch text format: each hunk is a
// "@@ -s1[,l1] +s2[,l2] @@" header followed by one percent-escaped body
// line per diff tuple, prefixed with ' ' (equal), '-' (delete), or '+'
// (insert). Hunks are joined with no separator; each hunk's own trailing
// newline is what puts the next header on its own line, so an empty
// Patches serializes to "" while any non-empty list ends in "\n".
func ToText(patches Patches) string {
	var b strings.Builder
	for _, hunk := range patches {
		b.WriteString(hunkHeader(hunk))
		b.WriteByte('\n')
		for _, d := range hunk.Diffs {
			switch d.Op {
			case OpInsert:
				b.WriteByte('+')
			case OpDelete:
				b.WriteByte('-')
			case OpEqual:
				b.WriteByte(' ')
			}
			b.WriteString(deltaEscape(d.Text))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hunkHeader(h *Hunk) string {
	coords1 := coordPair(valueOr(h.Start1, 0), h.Length1)
	coords2 := coordPair(valueOr(h.Start2, 0), h.Length2)
	return "@@ -" + coords1 + " +" + coords2 + " @@"
}

func coordPair(start, length int) string {
	switch length {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return strconv.Itoa(start+1) + "," + strconv.Itoa(length)
	}
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// FromText parses a hunk list out of patch text in the format produced by
// ToText. It returns ErrInvalidPatchText if a header is malformed, a body
// line has no recognized prefix, or escaping is invalid.
func FromText(text string) (Patches, error) {
	if text == "" {
		return nil, nil
	}

	var patches Patches
	lines := strings.Split(text, "\n")
	// ToText always terminates the last body line with a trailing "\n",
	// which Split turns into one final "" element; drop it.
	if len(lines) != 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	i := 0
	for i < len(lines) {
		m := patchHeaderRegex.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, fmt.Errorf("%w: bad header %q", ErrInvalidPatchText, lines[i])
		}
		i++

		start1, length1, err := parseCoord(m[1], m[2])
		if err != nil {
			return nil, err
		}
		start2, length2, err := parseCoord(m[3], m[4])
		if err != nil {
			return nil, err
		}

		hunk := &Hunk{Start1: intPtr(start1), Start2: intPtr(start2), Length1: length1, Length2: length2}

		for i < len(lines) && !patchHeaderRegex.MatchString(lines[i]) {
			line := lines[i]
			if line == "" {
				return nil, fmt.Errorf("%w: empty body line", ErrInvalidPatchText)
			}

			op := line[0]
			protected := strings.ReplaceAll(line[1:], "+", "%2B")
			decoded, err := url.QueryUnescape(protected)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidPatchText, err)
			}

			switch op {
			case '+':
				hunk.Diffs = append(hunk.Diffs, diffIns(decoded))
			case '-':
				hunk.Diffs = append(hunk.Diffs, diffDel(decoded))
			case ' ':
				hunk.Diffs = append(hunk.Diffs, diffEq(decoded))
			default:
				return nil, fmt.Errorf("%w: bad line prefix %q", ErrInvalidPatchText, string(op))
			}
			i++
		}

		patches = append(patches, hunk)
	}

	return patches, nil
}

// parseCoord decodes one "start[,length]" header field: a missing length
// means length 1 and internal start is parsed-1; length 0 means the start
// is used unchanged; any other length means internal start is parsed-1.
func parseCoord(startField, lengthField string) (start, length int, err error) {
	parsed, err := strconv.Atoi(startField)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad coordinate %q", ErrInvalidPatchText, startField)
	}

	if lengthField == "" {
		return parsed - 1, 1, nil
	}

	length, err = strconv.Atoi(lengthField)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad length %q", ErrInvalidPatchText, lengthField)
	}
	if length == 0 {
		return parsed, 0, nil
	}
	return parsed - 1, length, nil
}

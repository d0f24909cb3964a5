package dmp

import (
	"strings"
	"time"
)

// maxLinesText1 and maxLinesText2 cap the number of distinct lines each
// side of a line-mode diff may be assigned before an oversize "line"
// swallows the remainder, per spec (40,000 / 65,535).
const (
	maxLinesText1 = 40000
	maxLinesText2 = 65535
)

// lineEncoder hashes lines into a shared dictionary of monotonically
// increasing rune values. It is an explicit scratch object rather than a
// closure over mutable outer state (design note 9).
type lineEncoder struct {
	lines []string       // index -> line text; index 0 is reserved blank
	hash  map[string]int // line text -> index
}

func newLineEncoder() *lineEncoder {
	// Reserve slot 0 so that no encoded rune is zero.
	return &lineEncoder{
		lines: []string{""},
		hash:  map[string]int{"": 0},
	}
}

// encode splits text into lines and returns the encoded rune sequence,
// capped at maxLines distinct lines for this side.
func (le *lineEncoder) encode(text string, maxLines int) []rune {
	if text == "" {
		return nil
	}
	var out []rune
	lineStart := 0
	for lineStart < len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		var line string
		if lineEnd == -1 {
			line = text[lineStart:]
			lineStart = len(text)
		} else {
			line = text[lineStart : lineStart+lineEnd+1]
			lineStart += lineEnd + 1
		}

		if idx, ok := le.hash[line]; ok {
			out = append(out, rune(idx))
			continue
		}
		if len(le.lines) == maxLines {
			// Out of room: the remainder of the text becomes one giant
			// line so that behavior stays deterministic.
			line = text[lineStart-len(line):]
			idx := len(le.lines)
			le.lines = append(le.lines, line)
			le.hash[line] = idx
			out = append(out, rune(idx))
			break
		}
		idx := len(le.lines)
		le.lines = append(le.lines, line)
		le.hash[line] = idx
		out = append(out, rune(idx))
	}
	return out
}

// linesToChars encodes text1 and text2 into code-unit sequences where each
// code unit represents one line, plus the dictionary needed to decode them
// back.
func linesToChars(text1, text2 string) (chars1, chars2 []rune, lines []string) {
	le := newLineEncoder()
	chars1 = le.encode(text1, maxLinesText1)
	chars2 = le.encode(text2, maxLinesText2)
	return chars1, chars2, le.lines
}

// charsToLines decodes a script produced over an encoded (line-as-rune)
// alphabet back into one over real line text.
func charsToLines(diffs []Diff, lines []string) []Diff {
	out := make([]Diff, len(diffs))
	for i, d := range diffs {
		var b strings.Builder
		for _, r := range d.Text {
			b.WriteString(lines[int(r)])
		}
		out[i] = Diff{d.Op, b.String()}
	}
	return out
}

// lineMode does a quick line-level diff, then re-diffs adjacent
// delete/insert blocks character-by-character for precision. This speedup
// can itself produce non-minimal diffs, traded for speed on large inputs.
func (e *DiffEngine) lineMode(text1, text2 []rune, dl time.Time) []Diff {
	encText1, encText2, lines := linesToChars(string(text1), string(text2))

	diffs := e.mainRunes(encText1, encText2, false, dl)
	diffs = charsToLines(diffs, lines)
	diffs = e.CleanupSemantic(diffs)

	// Rediff any replacement blocks, this time character-by-character.
	diffs = diffAppend(diffs, diffEq(""))

	var rebuilt []Diff
	var textDelete, textInsert strings.Builder

	flush := func() {
		if textDelete.Len() > 0 && textInsert.Len() > 0 {
			rebuilt = append(rebuilt, e.mainRunes([]rune(textDelete.String()), []rune(textInsert.String()), false, dl)...)
		} else {
			if textDelete.Len() > 0 {
				rebuilt = append(rebuilt, diffDel(textDelete.String()))
			}
			if textInsert.Len() > 0 {
				rebuilt = append(rebuilt, diffIns(textInsert.String()))
			}
		}
		textDelete.Reset()
		textInsert.Reset()
	}

	for _, d := range diffs {
		switch d.Op {
		case OpInsert:
			textInsert.WriteString(d.Text)
		case OpDelete:
			textDelete.WriteString(d.Text)
		case OpEqual:
			flush()
			if d.Text != "" {
				rebuilt = append(rebuilt, d)
			}
		}
	}

	return rebuilt
}

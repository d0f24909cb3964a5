package dmp

import "strings"

// Text1 reconstructs the source string (all equalities and deletions).
func Text1(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != OpInsert {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Text2 reconstructs the destination string (all equalities and
// insertions).
func Text2(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != OpDelete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// XIndex maps a rune offset in the source text to the corresponding offset
// in the destination text. If loc falls inside a deletion, it returns the
// offset where that deletion began in the destination.
func XIndex(diffs []Diff, loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var lastOp Operation = OpEqual
	found := false

	for _, d := range diffs {
		if d.Op != OpInsert {
			chars1 += len([]rune(d.Text))
		}
		if d.Op != OpDelete {
			chars2 += len([]rune(d.Text))
		}
		if chars1 > loc {
			lastOp = d.Op
			found = true
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}

	if found && lastOp == OpDelete {
		return lastChars2
	}
	return lastChars2 + (loc - lastChars1)
}

// Levenshtein computes the edit distance of a script: the number of
// inserted, deleted, or substituted characters, where a delete-then-insert
// pair counts once as max(|del|, |ins|) substitutions.
func Levenshtein(diffs []Diff) int {
	levenshtein := 0
	insertions, deletions := 0, 0

	for _, d := range diffs {
		switch d.Op {
		case OpInsert:
			insertions += len([]rune(d.Text))
		case OpDelete:
			deletions += len([]rune(d.Text))
		case OpEqual:
			levenshtein += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	}
	levenshtein += max(insertions, deletions)
	return levenshtein
}

// PrettyHTML renders a script as an HTML fragment for visual inspection.
// It is a trivial convenience, not exercised by the core algorithms.
func PrettyHTML(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.ReplaceAll(htmlEscape(d.Text), "\n", "&para;<br>")
		switch d.Op {
		case OpInsert:
			b.WriteString(`<ins style="background:#e6ffe6;">`)
			b.WriteString(text)
			b.WriteString("</ins>")
		case OpDelete:
			b.WriteString(`<del style="background:#ffe6e6;">`)
			b.WriteString(text)
			b.WriteString("</del>")
		case OpEqual:
			b.WriteString("<span>")
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}

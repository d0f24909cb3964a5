package dmp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ToDelta emits a compact, tab-separated encoding of a script relative to
// text1: "=N" keeps N runes, "-N" deletes N runes, "+TEXT" inserts TEXT,
// percent-escaped per RFC 3986 except that a space is written as a literal
// space rather than escaped.
func ToDelta(diffs []Diff) string {
	tokens := make([]string, 0, len(diffs))
	for _, d := range diffs {
		switch d.Op {
		case OpInsert:
			tokens = append(tokens, "+"+deltaEscape(d.Text))
		case OpDelete:
			tokens = append(tokens, fmt.Sprintf("-%d", len([]rune(d.Text))))
		case OpEqual:
			tokens = append(tokens, fmt.Sprintf("=%d", len([]rune(d.Text))))
		}
	}
	return strings.Join(tokens, "\t")
}

// deltaEscape percent-escapes s per RFC 3986, then restores the literal
// space character that url.QueryEscape would otherwise encode as '+', then
// restores the handful of sub-delimiters and unreserved punctuation that
// QueryEscape over-escapes for query-string safety but that are perfectly
// legible in a delta or patch body. That set includes '+', so a '+' in the
// output is always a literal plus, never an encoded space.
func deltaEscape(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", " ")
	return deltaUnescaper.Replace(escaped)
}

// deltaUnescaper restores characters QueryEscape escapes unnecessarily for
// this format's purposes, matching the reference encoder's output byte for
// byte. url.QueryUnescape passes each of these characters through
// unchanged except '+', which it reads as a space; the decoders therefore
// re-escape '+' to %2B before unescaping.
var deltaUnescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'", "%28", "(", "%29", ")",
	"%3B", ";", "%2F", "/", "%3F", "?", "%3A", ":", "%40", "@",
	"%26", "&", "%3D", "=", "%2B", "+", "%24", "$", "%2C", ",",
	"%23", "#", "%2A", "*",
)

// FromDelta reconstructs a script from text1 and a delta produced by
// ToDelta. It returns ErrInvalidDelta if the total of the "="/"-" token
// lengths does not equal the rune length of text1, or if a token's
// operation or count is malformed, and ErrInvalidEscape if a "+" token
// contains a malformed percent-escape.
func FromDelta(text1, delta string) ([]Diff, error) {
	runes := []rune(text1)
	var diffs []Diff
	pointer := 0

	tokens := strings.Split(delta, "\t")
	for _, token := range tokens {
		if token == "" {
			continue
		}
		param := token[1:]
		switch token[0] {
		case '+':
			// The encoder writes '+' literally (see deltaUnescaper); escape
			// it before handing off to QueryUnescape, which otherwise
			// treats '+' as a space.
			protected := strings.ReplaceAll(param, "+", "%2B")
			text, err := url.QueryUnescape(protected)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidEscape, err)
			}
			diffs = append(diffs, diffIns(text))
		case '=', '-':
			n, err := strconv.Atoi(param)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad count %q", ErrInvalidDelta, param)
			}
			if pointer+n > len(runes) {
				return nil, fmt.Errorf("%w: delta exceeds source length", ErrInvalidDelta)
			}
			text := string(runes[pointer : pointer+n])
			pointer += n
			if token[0] == '=' {
				diffs = append(diffs, diffEq(text))
			} else {
				diffs = append(diffs, diffDel(text))
			}
		default:
			return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidDelta, string(token[0]))
		}
	}

	if pointer != len(runes) {
		return nil, fmt.Errorf("%w: delta covers %d runes, source has %d", ErrInvalidDelta, pointer, len(runes))
	}
	return diffs, nil
}

// The algorithms in this package were largely adapted from the go-diff
// library, which in turn was derived from the Diff-Match-Patch library. The
// original copyright is retained:
//
// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package dmp computes Myers diffs between Unicode strings, locates a
// pattern fuzzily near an expected offset with a bit-parallel Bitap search,
// and builds, serializes, and applies drift-tolerant patch hunks built from
// those two primitives.
//
// Offsets throughout this package are rune offsets, not UTF-16 code-unit
// offsets or byte offsets. A string containing runes outside the Basic
// Multilingual Plane will therefore disagree on offsets with a UTF-16-based
// port of the same algorithm (see SPEC_FULL.md's note on character-unit
// semantics).
package dmp

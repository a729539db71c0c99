package textstore

import (
	"unicode/utf8"

	"github.com/iw2rmb/eminent/internal/grapheme"
)

// NextGrapheme returns the offset of the next grapheme-cluster boundary after
// off, stepping across line breaks. Returns false at the document end.
func (s *Store) NextGrapheme(off int) (int, bool) {
	if off < 0 {
		off = 0
	}
	if off >= s.Len() {
		return 0, false
	}

	line := s.LineOfOffset(off)
	start := s.OffsetOfLine(line)
	text := s.LineText(line)
	rel := off - start
	if rel >= len(text) {
		// At the line's end: the next boundary is past the '\n'.
		return off + 1, true
	}
	next, ok := grapheme.NextBoundary(text, rel)
	if !ok {
		return off + 1, true
	}
	return start + next, true
}

// PrevGrapheme returns the offset of the previous grapheme-cluster boundary
// before off, stepping across line breaks. Returns false at the document
// start.
func (s *Store) PrevGrapheme(off int) (int, bool) {
	if off > s.Len() {
		off = s.Len()
	}
	if off <= 0 {
		return 0, false
	}

	line := s.LineOfOffset(off)
	start := s.OffsetOfLine(line)
	if off == start {
		// At the line's start: the previous boundary is before the '\n'.
		return off - 1, true
	}
	prev, ok := grapheme.PrevBoundary(s.LineText(line), off-start)
	if !ok {
		return start, true
	}
	return start + prev, true
}

// AtOrPrevCodepoint realigns off to the nearest codepoint boundary at or
// before it. Used to round a byte column clamped against a line length.
func (s *Store) AtOrPrevCodepoint(off int) int {
	if off <= 0 {
		return 0
	}
	if off >= s.Len() {
		return s.Len()
	}
	for off > 0 && !utf8.RuneStart(s.byteAt(off)) {
		off--
	}
	return off
}

// AtOrNextCodepoint realigns off to the nearest codepoint boundary at or
// after it.
func (s *Store) AtOrNextCodepoint(off int) int {
	if off <= 0 {
		return 0
	}
	if off >= s.Len() {
		return s.Len()
	}
	for off < s.Len() && !utf8.RuneStart(s.byteAt(off)) {
		off++
	}
	return off
}

package textstore

import (
	"iter"
	"sort"
)

// LineCount returns the number of logical lines: line breaks plus one. An
// empty document has 1 line.
func (s *Store) LineCount() int {
	s.index()
	return len(s.cacheStarts)
}

// OffsetOfLine returns the byte offset where line begins. A line past the
// last returns Len().
func (s *Store) OffsetOfLine(line int) int {
	s.index()
	if line < 0 {
		return 0
	}
	if line >= len(s.cacheStarts) {
		return s.Len()
	}
	return s.cacheStarts[line]
}

// LineOfOffset returns the index of the line containing off. An offset
// exactly at a line boundary maps to that line's index.
func (s *Store) LineOfOffset(off int) int {
	s.index()
	if off < 0 {
		return 0
	}
	if off > s.Len() {
		off = s.Len()
	}
	// Largest line whose start is <= off.
	i := sort.Search(len(s.cacheStarts), func(i int) bool {
		return s.cacheStarts[i] > off
	})
	return i - 1
}

// LineLength returns the byte length of the line's content, excluding its
// terminating break. Lines past the last have length 0.
func (s *Store) LineLength(line int) int {
	s.index()
	if line < 0 || line >= len(s.cacheStarts) {
		return 0
	}
	start := s.cacheStarts[line]
	if line == len(s.cacheStarts)-1 {
		return s.Len() - start
	}
	return s.cacheStarts[line+1] - 1 - start
}

// LineText returns the line's content without its terminating break.
func (s *Store) LineText(line int) string {
	start := s.OffsetOfLine(line)
	return s.Slice(start, start+s.LineLength(line))
}

// Lines returns a lazy, restartable sequence of the document's lines without
// their terminators, for rendering.
func (s *Store) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := 0; line < s.LineCount(); line++ {
			if !yield(s.LineText(line)) {
				return
			}
		}
	}
}

package textstore

import (
	"fmt"
	"unicode/utf8"
)

const minCapacity = 128

// Store is a gap buffer over UTF-8 bytes. The underlying slice stores the
// document with a gap between gapStart and gapEnd.
type Store struct {
	buf      []byte
	gapStart int
	gapEnd   int

	cacheText   string
	cacheStarts []int
	cacheValid  bool
}

// New creates an empty Store.
func New() *Store {
	buf := make([]byte, minCapacity)
	return &Store{buf: buf, gapStart: 0, gapEnd: len(buf)}
}

// NewFromString initializes a Store with the provided text.
func NewFromString(text string) *Store {
	buf := make([]byte, len(text)+minCapacity)
	copy(buf, text)
	return &Store{buf: buf, gapStart: len(text), gapEnd: len(buf)}
}

// Len returns the document length in bytes.
func (s *Store) Len() int {
	return len(s.buf) - (s.gapEnd - s.gapStart)
}

// Insert inserts text at byte offset off. off must be a valid UTF-8 boundary
// in [0, Len()].
func (s *Store) Insert(off int, text string) {
	if off < 0 || off > s.Len() || !s.isBoundary(off) {
		panic(fmt.Sprintf("textstore: insert offset %d is not a boundary (len %d)", off, s.Len()))
	}
	if text == "" {
		return
	}
	s.moveGap(off)
	s.ensureGap(len(text))
	copy(s.buf[s.gapStart:], text)
	s.gapStart += len(text)
	s.cacheValid = false
}

// Delete removes bytes in [start, end). Both must be valid UTF-8 boundaries
// with start <= end <= Len().
func (s *Store) Delete(start, end int) {
	if start < 0 || end < start || end > s.Len() || !s.isBoundary(start) || !s.isBoundary(end) {
		panic(fmt.Sprintf("textstore: delete range [%d,%d) is not boundary-aligned (len %d)", start, end, s.Len()))
	}
	if start == end {
		return
	}
	s.moveGap(start)
	s.gapEnd += end - start
	s.cacheValid = false
}

// Slice returns the bytes in [start, end) as a string. Out-of-range bounds
// are clamped.
func (s *Store) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > s.Len() {
		end = s.Len()
	}
	if start >= end {
		return ""
	}

	// Fast paths: the range sits entirely on one side of the gap.
	if end <= s.gapStart {
		return string(s.buf[start:end])
	}
	gap := s.gapEnd - s.gapStart
	if start >= s.gapStart {
		return string(s.buf[start+gap : end+gap])
	}

	out := make([]byte, 0, end-start)
	out = append(out, s.buf[start:s.gapStart]...)
	out = append(out, s.buf[s.gapEnd:end+gap]...)
	return string(out)
}

// Text returns the full document content. The result is cached until the
// next mutation.
func (s *Store) Text() string {
	s.index()
	return s.cacheText
}

func (s *Store) byteAt(i int) byte {
	if i < s.gapStart {
		return s.buf[i]
	}
	return s.buf[s.gapEnd+(i-s.gapStart)]
}

func (s *Store) isBoundary(off int) bool {
	if off == 0 || off == s.Len() {
		return true
	}
	return utf8.RuneStart(s.byteAt(off))
}

func (s *Store) ensureGap(n int) {
	gap := s.gapEnd - s.gapStart
	if gap >= n {
		return
	}
	needed := n - gap
	newCap := len(s.buf)*2 + needed
	newBuf := make([]byte, newCap)
	copy(newBuf, s.buf[:s.gapStart])
	suffixLen := len(s.buf) - s.gapEnd
	copy(newBuf[newCap-suffixLen:], s.buf[s.gapEnd:])
	s.gapEnd = newCap - suffixLen
	s.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos.
func (s *Store) moveGap(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > s.Len() {
		pos = s.Len()
	}
	if pos == s.gapStart {
		return
	}
	if pos < s.gapStart {
		d := s.gapStart - pos
		copy(s.buf[s.gapEnd-d:s.gapEnd], s.buf[pos:s.gapStart])
		s.gapStart = pos
		s.gapEnd -= d
		return
	}
	d := pos - s.gapStart
	copy(s.buf[s.gapStart:], s.buf[s.gapEnd:s.gapEnd+d])
	s.gapStart += d
	s.gapEnd += d
}

// index rebuilds the cached text and line-start table after a mutation.
func (s *Store) index() {
	if s.cacheValid {
		return
	}

	n := s.Len()
	out := make([]byte, 0, n)
	out = append(out, s.buf[:s.gapStart]...)
	out = append(out, s.buf[s.gapEnd:]...)
	s.cacheText = string(out)

	starts := []int{0}
	for i := 0; i < n; i++ {
		if s.cacheText[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	s.cacheStarts = starts
	s.cacheValid = true
}

package textstore

import "testing"

func TestStore_InsertDelete_RoundTrip(t *testing.T) {
	s := New()
	if got := s.Text(); got != "" {
		t.Fatalf("empty store text=%q, want empty", got)
	}

	s.Insert(0, "hello")
	s.Insert(5, " world")
	if got := s.Text(); got != "hello world" {
		t.Fatalf("text=%q, want %q", got, "hello world")
	}

	s.Insert(5, ",")
	if got := s.Text(); got != "hello, world" {
		t.Fatalf("text=%q, want %q", got, "hello, world")
	}

	s.Delete(5, 6)
	if got := s.Text(); got != "hello world" {
		t.Fatalf("text=%q, want %q", got, "hello world")
	}

	s.Delete(0, s.Len())
	if got := s.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestStore_Insert_GrowsPastInitialCapacity(t *testing.T) {
	s := New()
	for i := 0; i < 100; i++ {
		s.Insert(s.Len(), "abcdefghij")
	}
	if got, want := s.Len(), 1000; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := s.Slice(990, 1000); got != "abcdefghij" {
		t.Fatalf("tail slice=%q, want %q", got, "abcdefghij")
	}
}

func TestStore_Insert_PanicsOffBoundary(t *testing.T) {
	s := NewFromString("e\u0301") // e + combining acute, 3 bytes

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for mid-codepoint insert")
		}
	}()
	s.Insert(2, "x")
}

func TestStore_Delete_PanicsOnInvalidRange(t *testing.T) {
	s := NewFromString("abc")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for end past len")
		}
	}()
	s.Delete(1, 4)
}

func TestStore_Slice_AcrossGap(t *testing.T) {
	s := NewFromString("abcdef")
	s.Insert(3, "XY") // gap now sits after offset 5
	if got := s.Text(); got != "abcXYdef" {
		t.Fatalf("text=%q, want %q", got, "abcXYdef")
	}
	if got := s.Slice(2, 7); got != "cXYde" {
		t.Fatalf("slice=%q, want %q", got, "cXYde")
	}
	if got := s.Slice(-2, 100); got != "abcXYdef" {
		t.Fatalf("clamped slice=%q, want full text", got)
	}
}

func TestStore_LineQueries(t *testing.T) {
	s := NewFromString("hello\nwi\nworld")

	if got := s.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}

	cases := []struct {
		line         int
		wantOffset   int
		wantLength   int
		wantLineText string
	}{
		{line: 0, wantOffset: 0, wantLength: 5, wantLineText: "hello"},
		{line: 1, wantOffset: 6, wantLength: 2, wantLineText: "wi"},
		{line: 2, wantOffset: 9, wantLength: 5, wantLineText: "world"},
		{line: 3, wantOffset: 14, wantLength: 0, wantLineText: ""},
	}
	for _, tc := range cases {
		if got := s.OffsetOfLine(tc.line); got != tc.wantOffset {
			t.Fatalf("OffsetOfLine(%d)=%d, want %d", tc.line, got, tc.wantOffset)
		}
		if got := s.LineLength(tc.line); got != tc.wantLength {
			t.Fatalf("LineLength(%d)=%d, want %d", tc.line, got, tc.wantLength)
		}
		if got := s.LineText(tc.line); got != tc.wantLineText {
			t.Fatalf("LineText(%d)=%q, want %q", tc.line, got, tc.wantLineText)
		}
	}
}

func TestStore_LineOfOffset_BoundaryMapsToLineStart(t *testing.T) {
	s := NewFromString("ab\ncd")

	cases := []struct {
		off  int
		want int
	}{
		{off: 0, want: 0},
		{off: 2, want: 0}, // at the newline, still line 0
		{off: 3, want: 1}, // line boundary maps to the new line
		{off: 5, want: 1},
		{off: 99, want: 1},
	}
	for _, tc := range cases {
		if got := s.LineOfOffset(tc.off); got != tc.want {
			t.Fatalf("LineOfOffset(%d)=%d, want %d", tc.off, got, tc.want)
		}
	}
}

func TestStore_EmptyDocument_HasOneLine(t *testing.T) {
	s := New()
	if got := s.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := s.OffsetOfLine(0); got != 0 {
		t.Fatalf("OffsetOfLine(0)=%d, want 0", got)
	}
	if got := s.OffsetOfLine(5); got != 0 {
		t.Fatalf("OffsetOfLine past end=%d, want Len()=0", got)
	}
}

func TestStore_TrailingNewline_YieldsEmptyLastLine(t *testing.T) {
	s := NewFromString("a\n")
	if got := s.LineCount(); got != 2 {
		t.Fatalf("line count=%d, want 2", got)
	}
	if got := s.LineText(1); got != "" {
		t.Fatalf("last line=%q, want empty", got)
	}
}

func TestStore_Lines_IsRestartable(t *testing.T) {
	s := NewFromString("one\ntwo\nthree")

	collect := func() []string {
		var out []string
		for line := range s.Lines() {
			out = append(out, line)
		}
		return out
	}

	first := collect()
	second := collect()
	want := []string{"one", "two", "three"}
	for _, got := range [][]string{first, second} {
		if len(got) != len(want) {
			t.Fatalf("lines=%v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("lines=%v, want %v", got, want)
			}
		}
	}

	// Early break must not poison later iterations.
	for range s.Lines() {
		break
	}
	if got := collect(); len(got) != 3 {
		t.Fatalf("lines after break=%v, want 3 lines", got)
	}
}

func TestStore_GraphemeSteps_DocumentWide(t *testing.T) {
	s := NewFromString("ae\u0301\nb") // a, combining cluster (3 bytes), newline, b

	next, ok := s.NextGrapheme(0)
	if !ok || next != 1 {
		t.Fatalf("next from 0: got (%d,%v), want (1,true)", next, ok)
	}
	next, ok = s.NextGrapheme(1)
	if !ok || next != 4 {
		t.Fatalf("next over cluster: got (%d,%v), want (4,true)", next, ok)
	}
	next, ok = s.NextGrapheme(4)
	if !ok || next != 5 {
		t.Fatalf("next over newline: got (%d,%v), want (5,true)", next, ok)
	}
	if _, ok := s.NextGrapheme(s.Len()); ok {
		t.Fatalf("next at document end should report false")
	}

	prev, ok := s.PrevGrapheme(5)
	if !ok || prev != 4 {
		t.Fatalf("prev into newline: got (%d,%v), want (4,true)", prev, ok)
	}
	prev, ok = s.PrevGrapheme(4)
	if !ok || prev != 1 {
		t.Fatalf("prev over cluster: got (%d,%v), want (1,true)", prev, ok)
	}
	if _, ok := s.PrevGrapheme(0); ok {
		t.Fatalf("prev at document start should report false")
	}
}

func TestStore_CodepointRealign(t *testing.T) {
	s := NewFromString("e\u0301") // codepoint boundaries at 0, 1, 3

	if got := s.AtOrPrevCodepoint(2); got != 1 {
		t.Fatalf("AtOrPrevCodepoint(2)=%d, want 1", got)
	}
	if got := s.AtOrNextCodepoint(2); got != 3 {
		t.Fatalf("AtOrNextCodepoint(2)=%d, want 3", got)
	}
	if got := s.AtOrPrevCodepoint(-1); got != 0 {
		t.Fatalf("AtOrPrevCodepoint(-1)=%d, want 0", got)
	}
	if got := s.AtOrNextCodepoint(99); got != s.Len() {
		t.Fatalf("AtOrNextCodepoint past end=%d, want Len()", got)
	}
}

package grapheme

import "github.com/rivo/uniseg"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// NextBoundary returns the byte offset of the first cluster boundary strictly
// after off. For off inside a cluster, that is the end of the containing
// cluster. Returns false when off is at or past the end of text.
func NextBoundary(text string, off int) (int, bool) {
	if off < 0 {
		off = 0
	}
	if off >= len(text) {
		return 0, false
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, end := g.Positions()
		if start <= off && off < end {
			return end, true
		}
	}
	return len(text), true
}

// PrevBoundary returns the byte offset of the last cluster boundary strictly
// before off. For off inside a cluster, that is the start of the containing
// cluster. Returns false when off is at or before the start of text.
func PrevBoundary(text string, off int) (int, bool) {
	if off <= 0 {
		return 0, false
	}
	if off > len(text) {
		off = len(text)
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, end := g.Positions()
		if start < off && off <= end {
			return start, true
		}
	}
	return 0, false
}

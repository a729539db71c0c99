// Package cursor implements the editing command interpreter for eminent.
//
// A Controller owns the logical insertion point as (column, line), where the
// column is a byte offset relative to its line start, and turns discrete
// editing commands into textstore mutations plus cursor updates. Horizontal
// movement steps grapheme clusters; vertical movement clamps the byte column
// to the target line and realigns it to a codepoint boundary.
package cursor

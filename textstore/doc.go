// Package textstore implements the editable document storage for eminent.
//
// A Store holds the full document as UTF-8 bytes in a gap buffer and is
// addressed by byte offset. Line boundaries are '\n' characters; line 0 is
// the first line, offset 0 the document start, and offset Len() the document
// end. Mutation offsets must be valid UTF-8 boundaries; violating that is a
// programming error and panics.
package textstore

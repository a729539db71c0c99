package cursor

import (
	"unicode/utf8"

	"github.com/iw2rmb/eminent/textstore"
)

// Position is the logical insertion point. Col is a byte offset relative to
// the start of its line; Line is a 0-based line index.
type Position struct {
	Col  int
	Line int
}

// Controller interprets editing commands against a textstore.Store and keeps
// the cursor consistent with every mutation. It does not own the store.
type Controller struct {
	store *textstore.Store
	cur   Position
}

// New creates a Controller positioned at (0, 0).
func New(store *textstore.Store) *Controller {
	return &Controller{store: store}
}

// Store returns the underlying document store.
func (c *Controller) Store() *textstore.Store { return c.store }

// Cursor returns the logical (byte column, line) position.
func (c *Controller) Cursor() Position { return c.cur }

// Process applies one editing command. Every transition is total: the cursor
// is left at a valid position for every reachable state.
func (c *Controller) Process(cmd Command) {
	switch cmd.Kind {
	case MoveLeft:
		off := c.offset()
		if prev, ok := c.store.PrevGrapheme(off); ok {
			c.cur = c.positionOf(prev)
		} else {
			c.cur.Col = 0
		}

	case MoveRight:
		off := c.offset()
		if next, ok := c.store.NextGrapheme(off); ok {
			c.cur = c.positionOf(next)
		}

	case MoveUp:
		if c.cur.Line == 0 {
			c.cur = Position{}
			return
		}
		c.cur = c.verticalTarget(c.cur.Line - 1)

	case MoveDown:
		if c.cur.Line >= c.store.LineCount()-1 {
			c.cur = c.positionOf(c.store.AtOrNextCodepoint(c.store.Len()))
			return
		}
		c.cur = c.verticalTarget(c.cur.Line + 1)

	case Insert:
		c.store.Insert(c.offset(), string(cmd.Rune))
		c.cur.Col += utf8.RuneLen(cmd.Rune)

	case InsertNewline:
		c.store.Insert(c.offset(), "\n")
		c.cur = Position{Col: 0, Line: c.cur.Line + 1}

	case Remove:
		off := c.offset()
		if off == 0 {
			return
		}
		start, ok := c.store.PrevGrapheme(off)
		if !ok {
			start = 0
		}
		c.store.Delete(start, off)
		c.cur = c.positionOf(start)
	}
}

// verticalTarget carries the current byte column onto line, clamped to that
// line's byte length and realigned to a codepoint boundary at or before it.
func (c *Controller) verticalTarget(line int) Position {
	start := c.store.OffsetOfLine(line)
	length := c.store.LineLength(line)

	col := c.cur.Col
	if col > length {
		col = length
	}
	return c.positionOf(c.store.AtOrPrevCodepoint(start + col))
}

func (c *Controller) offset() int {
	return c.store.OffsetOfLine(c.cur.Line) + c.cur.Col
}

func (c *Controller) positionOf(off int) Position {
	line := c.store.LineOfOffset(off)
	return Position{Col: off - c.store.OffsetOfLine(line), Line: line}
}

// DisplayCursor returns the cursor position with the column expressed in
// characters, as required by terminal cell addressing. A byte column that is
// not a character boundary saturates at the line's character count + 1.
func (c *Controller) DisplayCursor() (col, line int) {
	text := c.store.LineText(c.cur.Line)

	chars := 0
	for off := range text {
		if off == c.cur.Col {
			return chars, c.cur.Line
		}
		chars++
	}
	if c.cur.Col == len(text) {
		return chars, c.cur.Line
	}
	return chars + 1, c.cur.Line
}

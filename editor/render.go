package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/eminent/internal/grapheme"
)

func (m *Model) renderContent() string {
	st := m.cfg.Style
	cur := m.ctl.Cursor()
	store := m.ctl.Store()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(store.LineCount())
	}

	rows := make([]string, 0, store.LineCount())
	line := 0
	for text := range store.Lines() {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && line == cur.Line {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, line+1)))
			sb.WriteByte(' ')
		}

		if m.focused && line == cur.Line {
			sb.WriteString(renderCursorLine(st, text, cur.Col))
		} else {
			sb.WriteString(st.Text.Render(text))
		}

		rows = append(rows, sb.String())
		line++
	}
	return strings.Join(rows, "\n")
}

// renderCursorLine renders text with the cluster at byte column col shown in
// the cursor style. A cursor at EOL is rendered as a 1-cell placeholder
// space.
func renderCursorLine(st Style, text string, col int) string {
	if col >= len(text) {
		return st.Text.Render(text) + st.Cursor.Render(" ")
	}

	start := 0
	for _, g := range grapheme.Split(text) {
		end := start + len(g)
		if col < end {
			return st.Text.Render(text[:start]) + st.Cursor.Render(g) + st.Text.Render(text[end:])
		}
		start = end
	}
	return st.Text.Render(text) + st.Cursor.Render(" ")
}

func gutterDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Frame characters match the classic double-line box.
const (
	frameTopLeft     = "╔"
	frameTopRight    = "╗"
	frameBottomLeft  = "╚"
	frameBottomRight = "╝"
	frameHorizontal  = "═"
	frameVertical    = "║"
)

// renderFrame draws a double-line border of the given outer size around the
// content rows, with title centered on the top edge. Rows are padded to the
// inner width; extra rows are dropped, missing rows filled blank.
func renderFrame(st Style, title string, rows []string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerWidth := width - 2
	innerHeight := height - 2

	var sb strings.Builder
	sb.WriteString(st.Frame.Render(frameTopLeft))
	sb.WriteString(topEdge(st, title, innerWidth))
	sb.WriteString(st.Frame.Render(frameTopRight))

	for y := 0; y < innerHeight; y++ {
		row := ""
		if y < len(rows) {
			row = rows[y]
		}
		if pad := innerWidth - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		sb.WriteByte('\n')
		sb.WriteString(st.Frame.Render(frameVertical))
		sb.WriteString(row)
		sb.WriteString(st.Frame.Render(frameVertical))
	}

	sb.WriteByte('\n')
	sb.WriteString(st.Frame.Render(frameBottomLeft + strings.Repeat(frameHorizontal, innerWidth) + frameBottomRight))
	return sb.String()
}

// topEdge renders the top border between the corners, with title centered.
func topEdge(st Style, title string, innerWidth int) string {
	if innerWidth <= 0 {
		return ""
	}
	if title == "" {
		return st.Frame.Render(strings.Repeat(frameHorizontal, innerWidth))
	}

	tw := runewidth.StringWidth(title)
	if tw > innerWidth {
		title = runewidth.Truncate(title, innerWidth, "")
		tw = runewidth.StringWidth(title)
	}
	left := (innerWidth - tw) / 2
	right := innerWidth - tw - left
	return st.Frame.Render(strings.Repeat(frameHorizontal, left)) +
		st.Title.Render(title) +
		st.Frame.Render(strings.Repeat(frameHorizontal, right))
}

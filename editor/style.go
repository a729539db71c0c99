package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Frame lipgloss.Style
	Title lipgloss.Style

	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		LineNum:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

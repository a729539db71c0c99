package main

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eminent/editor"
	"github.com/iw2rmb/eminent/internal/logs"
)

type model struct {
	editor editor.Model
	keys   editor.KeyMap
	log    *logs.Logger
}

func newModel(log *logs.Logger) model {
	cfg := editor.Config{
		Title: " eminent ",
		Style: editor.DefaultStyle(),
	}
	return model{
		editor: editor.New(cfg),
		keys:   editor.DefaultKeyMap(),
		log:    log,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		col, line := m.editor.Controller().DisplayCursor()
		m.log.Event("key", map[string]any{
			"key":     keyMsg.String(),
			"col":     col,
			"line":    line,
			"doc_len": m.editor.Controller().Store().Len(),
		})
	}
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	log := logs.NewFromEnv()
	defer log.Close()

	p := tea.NewProgram(newModel(log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

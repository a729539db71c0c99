package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eminent/cursor"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.ctl.Process(cursor.Command{Kind: cursor.MoveLeft})
	case key.Matches(msg, km.Right):
		m.ctl.Process(cursor.Command{Kind: cursor.MoveRight})
	case key.Matches(msg, km.Up):
		m.ctl.Process(cursor.Command{Kind: cursor.MoveUp})
	case key.Matches(msg, km.Down):
		m.ctl.Process(cursor.Command{Kind: cursor.MoveDown})

	case key.Matches(msg, km.Backspace):
		m.ctl.Process(cursor.Command{Kind: cursor.Remove})
	case key.Matches(msg, km.Enter):
		m.ctl.Process(cursor.Command{Kind: cursor.InsertNewline})

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.ctl.Process(cursor.InsertRune(' '))
		case msg.Type == tea.KeyTab:
			m.ctl.Process(cursor.InsertRune('\t'))
		case msg.Type == tea.KeyRunes && !msg.Alt:
			for _, r := range msg.Runes {
				m.ctl.Process(cursor.InsertRune(r))
			}
		}
	}

	m.rebuildContent()
	m.followCursor()
	return m, nil
}

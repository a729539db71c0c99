package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eminent/cursor"
	"github.com/iw2rmb/eminent/textstore"
)

// Model is a Bubble Tea component that renders and edits a single document.
type Model struct {
	cfg Config
	ctl *cursor.Controller

	focused bool
	width   int
	height  int

	viewport viewport.Model
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		ctl:      cursor.New(textstore.NewFromString(cfg.Text)),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

// Controller returns the command interpreter driving this editor.
func (m Model) Controller() *cursor.Controller { return m.ctl }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size of the editor, frame included.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 0)
	m.viewport.Height = max(height-2, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.width < 2 || m.height < 2 {
		return m.viewport.View()
	}
	rows := strings.Split(m.viewport.View(), "\n")
	return renderFrame(m.cfg.Style, m.cfg.Title, rows, m.width, m.height)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	_, line := m.ctl.DisplayCursor()

	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}

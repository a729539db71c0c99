package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the document store.
	Text string

	// Title is drawn centered on the frame's top border; empty hides it.
	Title string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap
}

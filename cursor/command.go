package cursor

// CommandKind identifies the editing intent carried by a Command.
type CommandKind uint8

const (
	MoveLeft CommandKind = iota
	MoveRight
	MoveUp
	MoveDown
	Insert
	InsertNewline
	Remove
)

// Command is a single editing intent. Rune is the payload for Insert and is
// ignored by every other kind.
type Command struct {
	Kind CommandKind
	Rune rune
}

// InsertRune builds an Insert command for r.
func InsertRune(r rune) Command {
	return Command{Kind: Insert, Rune: r}
}

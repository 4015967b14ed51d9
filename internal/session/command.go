package session

import "fmt"

// CommandKind names a user intent.
type CommandKind string

const (
	KindAddPlayer   CommandKind = "add"
	KindRename      CommandKind = "rename"
	KindAdjustScore CommandKind = "adjust"
	KindResetAll    CommandKind = "reset"
	KindUndo        CommandKind = "undo"
	KindRedo        CommandKind = "redo"
)

// Command is one UI event. Only the fields relevant to Kind are read.
type Command struct {
	Kind  CommandKind `json:"kind"`
	Index int         `json:"index,omitempty"`
	Name  string      `json:"name,omitempty"`
	Delta int         `json:"delta,omitempty"`
}

func AddPlayer(name string) Command { return Command{Kind: KindAddPlayer, Name: name} }

func Rename(index int, newName string) Command {
	return Command{Kind: KindRename, Index: index, Name: newName}
}

func AdjustScore(index, delta int) Command {
	return Command{Kind: KindAdjustScore, Index: index, Delta: delta}
}

func ResetAll() Command { return Command{Kind: KindResetAll} }

func Undo() Command { return Command{Kind: KindUndo} }

func Redo() Command { return Command{Kind: KindRedo} }

// String renders the command for logs and notifications.
func (c Command) String() string {
	switch c.Kind {
	case KindAddPlayer:
		return fmt.Sprintf("added %s", c.Name)
	case KindRename:
		return fmt.Sprintf("renamed player %d to %s", c.Index, c.Name)
	case KindAdjustScore:
		return fmt.Sprintf("adjusted player %d by %+d", c.Index, c.Delta)
	case KindResetAll:
		return "reset all scores"
	case KindUndo:
		return "undo"
	case KindRedo:
		return "redo"
	default:
		return string(c.Kind)
	}
}

package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventBoardChanged EventType = "board-changed"
)

// BoardChangedEvent is published after every change to a board.
type BoardChangedEvent struct {
	ID        string        `msgpack:"id"`
	Type      EventType     `msgpack:"type"`
	Board     string        `msgpack:"board"`
	Command   string        `msgpack:"command"`
	Timestamp int64         `msgpack:"ts"`
	Players   []PlayerScore `msgpack:"players"`
	Leaders   []string      `msgpack:"leaders"`
}

// PlayerScore is one roster entry inside an event.
type PlayerScore struct {
	Name  string `msgpack:"name"`
	Score int    `msgpack:"score"`
}

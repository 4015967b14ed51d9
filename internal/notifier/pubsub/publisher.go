package pubsub

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreboard/internal/metrics"
	"github.com/mauv0809/scoreboard/internal/notifier"
	"github.com/mauv0809/scoreboard/internal/pubsub"
)

const channelName = "pubsub"

var _ notifier.Notifier = (*Publisher)(nil)

// Publisher emits a BoardChangedEvent for every board change.
type Publisher struct {
	client  pubsub.PubSubClient
	topic   string
	metrics metrics.Metrics
}

// NewPublisher creates a Publisher writing to topic.
func NewPublisher(client pubsub.PubSubClient, topic string, metrics metrics.Metrics) *Publisher {
	return &Publisher{client: client, topic: topic, metrics: metrics}
}

func (p *Publisher) BoardChanged(ctx context.Context, change notifier.Change) error {
	event := NewEvent(change)
	if notifier.IsDryRun(ctx) {
		log.Info("[Dry Run] Would publish board event", "topic", p.topic, "board", event.Board, "id", event.ID)
		return nil
	}
	if err := p.client.SendMessage(ctx, p.topic, pubsub.EventBoardChanged, event); err != nil {
		p.metrics.IncNotifFailed(channelName)
		return err
	}
	p.metrics.IncNotifSent(channelName)
	return nil
}

// NewEvent converts a change into its wire event.
func NewEvent(change notifier.Change) pubsub.BoardChangedEvent {
	event := pubsub.BoardChangedEvent{
		ID:        change.ID,
		Type:      pubsub.EventBoardChanged,
		Board:     change.Board.Name,
		Command:   change.Command,
		Timestamp: change.At.Unix(),
		Players:   make([]pubsub.PlayerScore, 0, len(change.Board.Roster)),
	}
	for _, entry := range change.Board.Roster {
		event.Players = append(event.Players, pubsub.PlayerScore{Name: entry.Name, Score: entry.Score})
	}
	for _, entry := range change.Board.Leaderboard.Entries {
		if entry.Leader {
			event.Leaders = append(event.Leaders, entry.Name)
		}
	}
	return event
}

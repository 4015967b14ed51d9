package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreboard/internal/metrics"
	"github.com/mauv0809/scoreboard/internal/notifier"
	"github.com/mauv0809/scoreboard/internal/view"
	"github.com/slack-go/slack"
)

const channelName = "slack"

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts the leaderboard to a Slack channel whenever a board changes.
type Notifier struct {
	api       slackClient
	channelID string
	dryRun    bool
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. With dryRun set, messages are only logged.
func NewNotifier(token, channelID string, dryRun bool, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		dryRun:    dryRun,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, dryRun bool, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		dryRun:    dryRun,
		metrics:   metrics,
	}
}

// BoardChanged posts the refreshed leaderboard.
func (s *Notifier) BoardChanged(ctx context.Context, change notifier.Change) error {
	msg := FormatLeaderboard(change.Board, change.Command)
	_, _, err := s.sendMessage(ctx, msg, s.dryRun || notifier.IsDryRun(ctx))
	return err
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotifFailed(channelName)
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent(channelName)
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// FormatLeaderboard renders a board's leaderboard as a Block Kit message.
func FormatLeaderboard(board view.Board, command string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s Leaderboard 🏆", board.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if board.Leaderboard.NoPlayers {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players yet. Add someone to get started!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, entry := range board.Leaderboard.Entries {
		marker := tierMarker(entry.Tier)
		if entry.Leader {
			marker = "👑"
		}
		playerText := fmt.Sprintf("%d. %s %s\n> %d points (%.0f%%)", entry.Rank, marker, entry.Name, entry.Score, entry.Percent*100)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	if command != "" {
		contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Last change: %s", command), true, false)
		blocks = append(blocks, slack.NewContextBlock("", contextText))
	}

	return slack.NewBlockMessage(blocks...)
}

func tierMarker(tier view.Tier) string {
	switch tier {
	case view.TierHigh:
		return "🟩"
	case view.TierMedium:
		return "🟧"
	case view.TierLow:
		return "🟨"
	default:
		return "⬜"
	}
}

package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/ports"
)

// Client is the slice of *slack.Client the notifier needs.
type Client interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier posts the digest text into the channel it summarizes. The
// returned message timestamp is Slack's opaque reference for the post.
type Notifier struct {
	client Client
	log    *zap.Logger
}

func NewNotifier(client Client, log *zap.Logger) *Notifier {
	return &Notifier{client: client, log: log}
}

var _ ports.NotifierPort = (*Notifier)(nil)

func (n *Notifier) PostSummary(ctx context.Context, s *domain.DailySummary) (string, error) {
	_, ts, err := n.client.PostMessageContext(ctx, s.ChannelID,
		slack.MsgOptionText(FormatSummary(s), false))
	if err != nil {
		return "", fmt.Errorf("failed to post digest to %s: %w", s.ChannelID, err)
	}

	n.log.Info("digest posted",
		zap.String("channel", s.ChannelID),
		zap.String("date", s.Date),
		zap.String("message_ts", ts))

	return ts, nil
}

// FormatSummary renders the digest message body.
func FormatSummary(s *domain.DailySummary) string {
	return fmt.Sprintf(
		":bar_chart: *Channel activity for %s*\n"+
			"• Messages: %d\n"+
			"• Reactions: %d\n"+
			"• Members joined: %d\n"+
			"• Members left: %d\n"+
			"• Files shared: %d",
		s.Date,
		s.MessageCount,
		s.ReactionCount,
		s.MemberJoinedCount,
		s.MemberLeftCount,
		s.FileCount,
	)
}

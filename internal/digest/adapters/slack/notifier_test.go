package slack

import (
	"context"
	"errors"
	"strings"
	"testing"

	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
)

type fakeClient struct {
	PostFn      func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	LastChannel string
	Calls       int
}

func (f *fakeClient) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.Calls++
	f.LastChannel = channelID
	if f.PostFn != nil {
		return f.PostFn(ctx, channelID, options...)
	}
	return channelID, "1705.4242", nil
}

var summary = &domain.DailySummary{
	ChannelID:         "C1",
	Date:              "2024-01-15",
	ReactionCount:     2,
	MemberJoinedCount: 1,
	MessageCount:      42,
	FileCount:         3,
}

func TestPostSummary_ReturnsMessageTS(t *testing.T) {
	client := &fakeClient{}
	n := NewNotifier(client, zap.NewNop())

	ref, err := n.PostSummary(context.Background(), summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "1705.4242" {
		t.Fatalf("expected message ts as ref, got %q", ref)
	}
	if client.LastChannel != "C1" {
		t.Fatalf("expected post to C1, got %s", client.LastChannel)
	}
}

func TestPostSummary_Error(t *testing.T) {
	client := &fakeClient{
		PostFn: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", errors.New("channel_not_found")
		},
	}
	n := NewNotifier(client, zap.NewNop())

	ref, err := n.PostSummary(context.Background(), summary)
	if err == nil {
		t.Fatalf("expected error")
	}
	if ref != "" {
		t.Fatalf("expected empty ref on failure, got %q", ref)
	}
}

func TestFormatSummary(t *testing.T) {
	text := FormatSummary(summary)

	if !strings.Contains(text, "2024-01-15") {
		t.Fatalf("digest must include the date: %s", text)
	}
	if !strings.Contains(text, "Messages: 42") {
		t.Fatalf("digest must include the message count: %s", text)
	}
	if !strings.Contains(text, "Files shared: 3") {
		t.Fatalf("digest must include the file count: %s", text)
	}
}

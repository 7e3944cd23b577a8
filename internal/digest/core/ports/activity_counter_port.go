package ports

import (
	"context"
	"time"
)

// ActivityCounterPort exposes read-only range counts over the event tables.
// Bounds are inclusive on both ends. Membership is split into two logical
// counters rather than parameterized by an enum.
type ActivityCounterPort interface {
	CountReactions(ctx context.Context, channelID string, from, to time.Time) (int64, error)
	CountJoins(ctx context.Context, channelID string, from, to time.Time) (int64, error)
	CountLeaves(ctx context.Context, channelID string, from, to time.Time) (int64, error)
	CountMessages(ctx context.Context, channelID string, from, to time.Time) (int64, error)
	CountFiles(ctx context.Context, channelID string, from, to time.Time) (int64, error)
}

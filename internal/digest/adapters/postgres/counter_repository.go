package postgres

import (
	"context"
	"time"

	"slack-digest-service/internal/digest/core/ports"
)

// CounterRepository reads the event tables owned by the ingestion side.
// Counts are computed by the database; rows are never materialized.
type CounterRepository struct {
	db DB
}

func NewCounterRepository(db DB) *CounterRepository {
	return &CounterRepository{db: db}
}

var _ ports.ActivityCounterPort = (*CounterRepository)(nil)

// BETWEEN is inclusive on both ends, matching the aggregation window.
const (
	countReactionsSQL = `
SELECT COUNT(*) FROM reaction_events
WHERE channel_id = $1 AND event_ts BETWEEN $2 AND $3;
`

	countMembershipSQL = `
SELECT COUNT(*) FROM membership_events
WHERE channel_id = $1 AND event_ts BETWEEN $2 AND $3 AND action = $4;
`

	countMessagesSQL = `
SELECT COUNT(*) FROM message_events
WHERE channel_id = $1 AND event_ts BETWEEN $2 AND $3;
`

	countFilesSQL = `
SELECT COUNT(*) FROM file_events
WHERE channel_id = $1 AND event_ts BETWEEN $2 AND $3;
`
)

func (r *CounterRepository) CountReactions(ctx context.Context, channelID string, from, to time.Time) (int64, error) {
	return r.count(ctx, countReactionsSQL, channelID, from, to)
}

func (r *CounterRepository) CountJoins(ctx context.Context, channelID string, from, to time.Time) (int64, error) {
	return r.count(ctx, countMembershipSQL, channelID, from, to, "joined")
}

func (r *CounterRepository) CountLeaves(ctx context.Context, channelID string, from, to time.Time) (int64, error) {
	return r.count(ctx, countMembershipSQL, channelID, from, to, "left")
}

func (r *CounterRepository) CountMessages(ctx context.Context, channelID string, from, to time.Time) (int64, error) {
	return r.count(ctx, countMessagesSQL, channelID, from, to)
}

func (r *CounterRepository) CountFiles(ctx context.Context, channelID string, from, to time.Time) (int64, error) {
	return r.count(ctx, countFilesSQL, channelID, from, to)
}

func (r *CounterRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

package postgres

import (
	"context"
	"errors"

	"slack-digest-service/internal/events/core/domain"
	"slack-digest-service/internal/events/core/ports"
)

// ErrEmptyEventID guards the dedup key: a row without an external event id
// could never be deduplicated.
var ErrEmptyEventID = errors.New("external event id is empty")

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// ON CONFLICT DO NOTHING on event_id is the whole dedup mechanism:
// concurrent redeliveries race safely into the same silent no-op.
const insertReactionSQL = `
INSERT INTO reaction_events (event_id, channel_id, user_id, reaction, event_ts, raw)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_id) DO NOTHING;
`

const insertMembershipSQL = `
INSERT INTO membership_events (event_id, channel_id, user_id, action, event_ts, raw)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_id) DO NOTHING;
`

const insertMessageSQL = `
INSERT INTO message_events (event_id, channel_id, user_id, event_ts, raw)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (event_id) DO NOTHING;
`

const insertFileSQL = `
INSERT INTO file_events (event_id, channel_id, user_id, file_id, file_name, event_ts, raw)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (event_id) DO NOTHING;
`

func (r *EventRepository) SaveReaction(ctx context.Context, e *domain.ReactionEvent) (bool, error) {
	return r.insert(ctx, e.EventID, insertReactionSQL,
		e.EventID, e.ChannelID, e.UserID, e.Reaction, e.EventTS, rawJSON(e.Raw))
}

func (r *EventRepository) SaveMembership(ctx context.Context, e *domain.MembershipEvent) (bool, error) {
	return r.insert(ctx, e.EventID, insertMembershipSQL,
		e.EventID, e.ChannelID, e.UserID, string(e.Action), e.EventTS, rawJSON(e.Raw))
}

func (r *EventRepository) SaveMessage(ctx context.Context, e *domain.MessageEvent) (bool, error) {
	return r.insert(ctx, e.EventID, insertMessageSQL,
		e.EventID, e.ChannelID, e.UserID, e.EventTS, rawJSON(e.Raw))
}

func (r *EventRepository) SaveFile(ctx context.Context, e *domain.FileEvent) (bool, error) {
	return r.insert(ctx, e.EventID, insertFileSQL,
		e.EventID, e.ChannelID, e.UserID, e.FileID, e.FileName, e.EventTS, rawJSON(e.Raw))
}

func (r *EventRepository) insert(ctx context.Context, eventID, query string, args ...any) (bool, error) {
	if eventID == "" {
		return false, ErrEmptyEventID
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1 -> new record
	// rows == 0 -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func rawJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

package postgres

import (
	"context"
	"time"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/ports"
)

type SummaryRepository struct {
	db DB
}

func NewSummaryRepository(db DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

var _ ports.SummaryRepositoryPort = (*SummaryRepository)(nil)

// Counts are replaced wholesale on conflict: re-aggregation recomputes from
// source events, so replace is idempotent where increment would not be.
// COALESCE keeps the previously recorded message ref when the new run has
// none.
const upsertSummarySQL = `
INSERT INTO daily_summaries (
    channel_id,
    summary_date,
    reaction_count,
    member_joined_count,
    member_left_count,
    message_count,
    file_count,
    message_ref
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
ON CONFLICT (channel_id, summary_date) DO UPDATE SET
    reaction_count      = EXCLUDED.reaction_count,
    member_joined_count = EXCLUDED.member_joined_count,
    member_left_count   = EXCLUDED.member_left_count,
    message_count       = EXCLUDED.message_count,
    file_count          = EXCLUDED.file_count,
    message_ref         = COALESCE(EXCLUDED.message_ref, daily_summaries.message_ref)
RETURNING
    channel_id,
    summary_date,
    reaction_count,
    member_joined_count,
    member_left_count,
    message_count,
    file_count,
    COALESCE(message_ref, ''),
    created_at;
`

func (r *SummaryRepository) Upsert(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error) {
	var messageRef any
	if s.MessageRef == "" {
		messageRef = nil
	} else {
		messageRef = s.MessageRef
	}

	row := r.db.QueryRowContext(ctx, upsertSummarySQL,
		s.ChannelID,
		s.Date,
		s.ReactionCount,
		s.MemberJoinedCount,
		s.MemberLeftCount,
		s.MessageCount,
		s.FileCount,
		messageRef,
	)

	var (
		stored      domain.DailySummary
		summaryDate time.Time
	)
	if err := row.Scan(
		&stored.ChannelID,
		&summaryDate,
		&stored.ReactionCount,
		&stored.MemberJoinedCount,
		&stored.MemberLeftCount,
		&stored.MessageCount,
		&stored.FileCount,
		&stored.MessageRef,
		&stored.CreatedAt,
	); err != nil {
		return nil, err
	}

	stored.Date = summaryDate.Format("2006-01-02")

	return &stored, nil
}

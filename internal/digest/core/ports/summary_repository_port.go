package ports

import (
	"context"

	"slack-digest-service/internal/digest/core/domain"
)

// SummaryRepositoryPort upserts summaries by (channel, date). Counts are
// replaced wholesale; an existing message reference is preserved when the
// incoming summary carries none.
type SummaryRepositoryPort interface {
	Upsert(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error)
}

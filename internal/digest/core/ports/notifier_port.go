package ports

import (
	"context"

	"slack-digest-service/internal/digest/core/domain"
)

// NotifierPort posts a digest to the channel and returns the platform's
// opaque message reference. A single best-effort attempt; no retries.
type NotifierPort interface {
	PostSummary(ctx context.Context, s *domain.DailySummary) (ref string, err error)
}

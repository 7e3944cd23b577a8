package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/ports"
)

// StatsCollector is the aggregation step of the job body.
type StatsCollector interface {
	Execute(ctx context.Context, channelID string, target time.Time) (*domain.DailySummary, error)
}

// RunInput controls date resolution for one digest run. An empty or
// unparseable Date falls back to yesterday (or today when Today is set)
// in the configured timezone.
type RunInput struct {
	Date  string
	Today bool
}

// RunDigestUseCase is the job body shared by the cron trigger and the
// manual endpoint: collect, best-effort outbound post, then persist. The
// summary is persisted even when the outbound post fails, so a broken
// Slack connection never loses computed stats.
type RunDigestUseCase struct {
	collector StatsCollector
	repo      ports.SummaryRepositoryPort
	notifier  ports.NotifierPort
	channelID string
	loc       *time.Location
	log       *zap.Logger
	now       func() time.Time
}

func NewRunDigestUseCase(
	collector StatsCollector,
	repo ports.SummaryRepositoryPort,
	notifier ports.NotifierPort,
	channelID string,
	loc *time.Location,
	log *zap.Logger,
	now func() time.Time,
) *RunDigestUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &RunDigestUseCase{
		collector: collector,
		repo:      repo,
		notifier:  notifier,
		channelID: channelID,
		loc:       loc,
		log:       log,
		now:       now,
	}
}

func (uc *RunDigestUseCase) Execute(ctx context.Context, in RunInput) (*domain.DailySummary, error) {
	target := uc.resolveDate(in)

	summary, err := uc.collector.Execute(ctx, uc.channelID, target)
	if err != nil {
		return nil, err
	}

	ref, postErr := uc.notifier.PostSummary(ctx, summary)
	if postErr != nil {
		uc.log.Warn("digest post failed, persisting summary anyway",
			zap.String("channel", summary.ChannelID),
			zap.String("date", summary.Date),
			zap.Error(postErr))
		ref = ""
	}
	summary.MessageRef = ref

	stored, err := uc.repo.Upsert(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to persist summary for %s: %w", summary.Date, err)
	}

	uc.log.Info("digest run complete",
		zap.String("channel", stored.ChannelID),
		zap.String("date", stored.Date),
		zap.Int64("reactions", stored.ReactionCount),
		zap.Int64("joined", stored.MemberJoinedCount),
		zap.Int64("left", stored.MemberLeftCount),
		zap.Int64("messages", stored.MessageCount),
		zap.Int64("files", stored.FileCount),
		zap.Bool("posted", stored.MessageRef != ""))

	return stored, nil
}

func (uc *RunDigestUseCase) resolveDate(in RunInput) time.Time {
	if in.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc); err == nil {
			return t
		}
		uc.log.Warn("invalid date override, using default policy", zap.String("date", in.Date))
	}

	now := uc.now().In(uc.loc)
	if in.Today {
		return now
	}
	return now.AddDate(0, 0, -1)
}

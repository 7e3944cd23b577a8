package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/ports"
)

var ErrNoChannelConfigured = errors.New("no channel configured for aggregation")

// CollectStatsUseCase computes one channel's counts for one calendar day.
// Day boundaries are derived with calendar math in the configured zone, so
// offsets like UTC+5:30 resolve correctly; naive hour arithmetic would not.
type CollectStatsUseCase struct {
	counter ports.ActivityCounterPort
	loc     *time.Location
}

func NewCollectStatsUseCase(counter ports.ActivityCounterPort, loc *time.Location) *CollectStatsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CollectStatsUseCase{counter: counter, loc: loc}
}

// DayBounds returns the inclusive [start, end] instants of target's
// calendar date in the configured zone: local midnight through
// 23:59:59.999 local.
func (uc *CollectStatsUseCase) DayBounds(target time.Time) (start, end time.Time, date string) {
	day := target.In(uc.loc)
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), uc.loc)
	return start, end, day.Format("2006-01-02")
}

// Execute issues the five range counts concurrently and assembles the
// summary. It never persists.
func (uc *CollectStatsUseCase) Execute(ctx context.Context, channelID string, target time.Time) (*domain.DailySummary, error) {
	if channelID == "" {
		return nil, ErrNoChannelConfigured
	}

	start, end, date := uc.DayBounds(target)

	summary := &domain.DailySummary{
		ChannelID: channelID,
		Date:      date,
	}

	// Each goroutine writes a distinct field; no shared mutable state.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.counter.CountReactions(gctx, channelID, start, end)
		summary.ReactionCount = n
		return err
	})
	g.Go(func() error {
		n, err := uc.counter.CountJoins(gctx, channelID, start, end)
		summary.MemberJoinedCount = n
		return err
	})
	g.Go(func() error {
		n, err := uc.counter.CountLeaves(gctx, channelID, start, end)
		summary.MemberLeftCount = n
		return err
	})
	g.Go(func() error {
		n, err := uc.counter.CountMessages(gctx, channelID, start, end)
		summary.MessageCount = n
		return err
	})
	g.Go(func() error {
		n, err := uc.counter.CountFiles(gctx, channelID, start, end)
		summary.FileCount = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect stats for %s: %w", date, err)
	}

	return summary, nil
}

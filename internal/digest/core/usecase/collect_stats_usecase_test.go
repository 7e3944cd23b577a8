package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"slack-digest-service/internal/digest/core/usecase"
)

// Fake counter implementing ActivityCounterPort. Captures the window each
// counter was queried with.
type fakeCounter struct {
	mu     sync.Mutex
	ranges map[string][2]time.Time

	reactions, joins, leaves, messages, files int64
	err                                       error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{ranges: make(map[string][2]time.Time)}
}

func (f *fakeCounter) record(name string, from, to time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ranges[name] = [2]time.Time{from, to}
}

func (f *fakeCounter) CountReactions(ctx context.Context, ch string, from, to time.Time) (int64, error) {
	f.record("reactions", from, to)
	return f.reactions, f.err
}

func (f *fakeCounter) CountJoins(ctx context.Context, ch string, from, to time.Time) (int64, error) {
	f.record("joins", from, to)
	return f.joins, f.err
}

func (f *fakeCounter) CountLeaves(ctx context.Context, ch string, from, to time.Time) (int64, error) {
	f.record("leaves", from, to)
	return f.leaves, f.err
}

func (f *fakeCounter) CountMessages(ctx context.Context, ch string, from, to time.Time) (int64, error) {
	f.record("messages", from, to)
	return f.messages, f.err
}

func (f *fakeCounter) CountFiles(ctx context.Context, ch string, from, to time.Time) (int64, error) {
	f.record("files", from, to)
	return f.files, f.err
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	return loc
}

// ------------------------------------------------------------
// DAY BOUNDS AT UTC+5:30
// ------------------------------------------------------------

func TestCollectStats_KolkataDayBounds(t *testing.T) {
	counter := newFakeCounter()
	uc := usecase.NewCollectStatsUseCase(counter, kolkata(t))

	target := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	summary, err := uc.Execute(context.Background(), "C1", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Date != "2024-01-15" {
		t.Fatalf("expected date 2024-01-15, got %s", summary.Date)
	}

	// Local midnight of Jan 15 IST is 2024-01-14T18:30:00Z; the window
	// closes at 2024-01-15T18:29:59.999Z.
	wantFrom := time.Date(2024, 1, 14, 18, 30, 0, 0, time.UTC)
	wantTo := time.Date(2024, 1, 15, 18, 29, 59, 999_000_000, time.UTC)

	for name, window := range counter.ranges {
		if !window[0].Equal(wantFrom) {
			t.Fatalf("%s: expected from %s, got %s", name, wantFrom, window[0])
		}
		if !window[1].Equal(wantTo) {
			t.Fatalf("%s: expected to %s, got %s", name, wantTo, window[1])
		}
	}
	if len(counter.ranges) != 5 {
		t.Fatalf("expected 5 count queries, got %d", len(counter.ranges))
	}
}

func TestCollectStats_BoundaryClassification(t *testing.T) {
	uc := usecase.NewCollectStatsUseCase(newFakeCounter(), kolkata(t))

	target := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	from, to, _ := uc.DayBounds(target)

	instants := []struct {
		ts     time.Time
		inside bool
	}{
		{time.Date(2024, 1, 14, 19, 0, 0, 0, time.UTC), true},   // after local midnight
		{time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), true},   // mid-day
		{time.Date(2024, 1, 15, 18, 29, 59, 0, time.UTC), true}, // just before local midnight
		{time.Date(2024, 1, 14, 18, 30, 0, 0, time.UTC), true},  // boundary start, inclusive
		{time.Date(2024, 1, 14, 18, 29, 59, 0, time.UTC), false},
		{time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC), false},
	}

	inCount := 0
	for _, in := range instants {
		inside := !in.ts.Before(from) && !in.ts.After(to)
		if inside != in.inside {
			t.Fatalf("instant %s: expected inside=%v", in.ts, in.inside)
		}
		if inside {
			inCount++
		}
	}
	if inCount != 4 {
		t.Fatalf("expected 4 instants inside the window, got %d", inCount)
	}
}

// ------------------------------------------------------------
// ASSEMBLY AND ERRORS
// ------------------------------------------------------------

func TestCollectStats_AssemblesAllCounts(t *testing.T) {
	counter := newFakeCounter()
	counter.reactions = 7
	counter.joins = 2
	counter.leaves = 1
	counter.messages = 42
	counter.files = 3

	uc := usecase.NewCollectStatsUseCase(counter, time.UTC)

	summary, err := uc.Execute(context.Background(), "C1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ChannelID != "C1" {
		t.Fatalf("expected channel C1, got %s", summary.ChannelID)
	}
	if summary.ReactionCount != 7 || summary.MemberJoinedCount != 2 || summary.MemberLeftCount != 1 ||
		summary.MessageCount != 42 || summary.FileCount != 3 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.MessageRef != "" {
		t.Fatalf("collector must not set a message ref")
	}
}

func TestCollectStats_NoChannel(t *testing.T) {
	uc := usecase.NewCollectStatsUseCase(newFakeCounter(), time.UTC)

	_, err := uc.Execute(context.Background(), "", time.Now())
	if !errors.Is(err, usecase.ErrNoChannelConfigured) {
		t.Fatalf("expected ErrNoChannelConfigured, got %v", err)
	}
}

func TestCollectStats_CounterError(t *testing.T) {
	counter := newFakeCounter()
	counter.err = errors.New("query timeout")

	uc := usecase.NewCollectStatsUseCase(counter, time.UTC)

	_, err := uc.Execute(context.Background(), "C1", time.Now())
	if err == nil {
		t.Fatalf("expected error from failing counter")
	}
	if !errors.Is(err, counter.err) {
		t.Fatalf("expected wrapped counter error, got %v", err)
	}
}

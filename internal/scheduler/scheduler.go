package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/usecase"
)

// DigestJob is the shared job body; the cron trigger always runs it with
// the default date policy (yesterday in the configured timezone).
type DigestJob interface {
	Execute(ctx context.Context, in usecase.RunInput) (*domain.DailySummary, error)
}

// Scheduler holds no state beyond the timer. A failed or panicking run is
// logged and swallowed; the next scheduled run is unaffected.
type Scheduler struct {
	cron *cron.Cron
	job  DigestJob
	log  *zap.Logger
}

func New(spec string, loc *time.Location, job DigestJob, log *zap.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		job:  job,
		log:  log,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the timer; the returned context is done once any in-flight
// run has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("scheduled digest run panicked", zap.Any("panic", r))
		}
	}()

	log.Info("scheduled digest run starting")

	if _, err := s.job.Execute(context.Background(), usecase.RunInput{}); err != nil {
		log.Error("scheduled digest run failed", zap.Error(err))
	}
}

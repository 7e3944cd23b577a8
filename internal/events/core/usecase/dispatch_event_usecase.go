package usecase

import (
	"context"

	"go.uber.org/zap"

	"slack-digest-service/internal/events/core/domain"
	"slack-digest-service/internal/events/core/normalizer"
	"slack-digest-service/internal/events/core/ports"
)

// Outcome is the dispatcher's explicit verdict for one delivery. "skipped"
// and "duplicate" are expected outcomes, not errors; "failed" carries the
// store error but the inbound boundary still acknowledges receipt.
type Outcome string

const (
	OutcomeStored    Outcome = "stored"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeFailed    Outcome = "failed"
)

// DispatchEventUseCase routes a webhook envelope by event kind through the
// normalizer into the store. A failure for one event never propagates past
// this boundary, so one bad event cannot block its siblings.
type DispatchEventUseCase struct {
	norm *normalizer.Normalizer
	repo ports.EventRepositoryPort
	log  *zap.Logger
}

func NewDispatchEventUseCase(norm *normalizer.Normalizer, repo ports.EventRepositoryPort, log *zap.Logger) *DispatchEventUseCase {
	return &DispatchEventUseCase{norm: norm, repo: repo, log: log}
}

func (uc *DispatchEventUseCase) Execute(ctx context.Context, env domain.RawEnvelope) (Outcome, error) {
	if env.EventID == "" && len(env.Body) == 0 {
		return OutcomeIgnored, nil
	}
	if env.EventID == "" {
		uc.log.Warn("envelope without event id ignored", zap.String("kind", string(env.Kind)))
		return OutcomeIgnored, nil
	}

	switch env.Kind {
	case domain.KindReaction:
		return uc.handleReaction(ctx, env)
	case domain.KindMemberJoined:
		return uc.handleMembership(ctx, env, domain.ActionJoined)
	case domain.KindMemberLeft:
		return uc.handleMembership(ctx, env, domain.ActionLeft)
	case domain.KindMessage:
		return uc.handleMessage(ctx, env)
	case domain.KindFileShared:
		return uc.handleFile(ctx, env)
	default:
		uc.log.Info("unrecognized event kind ignored",
			zap.String("event_id", env.EventID),
			zap.String("kind", string(env.Kind)))
		return OutcomeIgnored, nil
	}
}

func (uc *DispatchEventUseCase) handleReaction(ctx context.Context, env domain.RawEnvelope) (Outcome, error) {
	rec, err := uc.norm.Reaction(env)
	if err != nil {
		return uc.skip(env, err), nil
	}
	return uc.persist(env, func() (bool, error) { return uc.repo.SaveReaction(ctx, rec) })
}

func (uc *DispatchEventUseCase) handleMembership(ctx context.Context, env domain.RawEnvelope, action domain.MembershipAction) (Outcome, error) {
	rec, err := uc.norm.Membership(env, action)
	if err != nil {
		return uc.skip(env, err), nil
	}
	return uc.persist(env, func() (bool, error) { return uc.repo.SaveMembership(ctx, rec) })
}

func (uc *DispatchEventUseCase) handleMessage(ctx context.Context, env domain.RawEnvelope) (Outcome, error) {
	rec, err := uc.norm.Message(env)
	if err != nil {
		return uc.skip(env, err), nil
	}
	return uc.persist(env, func() (bool, error) { return uc.repo.SaveMessage(ctx, rec) })
}

func (uc *DispatchEventUseCase) handleFile(ctx context.Context, env domain.RawEnvelope) (Outcome, error) {
	rec, err := uc.norm.File(env)
	if err != nil {
		return uc.skip(env, err), nil
	}
	return uc.persist(env, func() (bool, error) { return uc.repo.SaveFile(ctx, rec) })
}

// skip covers both deliberate filters and malformed payloads: neither is
// surfaced to the caller, the platform gets its ack either way.
func (uc *DispatchEventUseCase) skip(env domain.RawEnvelope, err error) Outcome {
	if normalizer.IsSkip(err) {
		uc.log.Debug("event skipped",
			zap.String("event_id", env.EventID),
			zap.String("kind", string(env.Kind)),
			zap.String("reason", err.Error()))
	} else {
		uc.log.Warn("malformed event skipped",
			zap.String("event_id", env.EventID),
			zap.String("kind", string(env.Kind)),
			zap.Error(err))
	}
	return OutcomeSkipped
}

func (uc *DispatchEventUseCase) persist(env domain.RawEnvelope, save func() (bool, error)) (Outcome, error) {
	created, err := save()
	if err != nil {
		uc.log.Error("failed to persist event",
			zap.String("event_id", env.EventID),
			zap.String("kind", string(env.Kind)),
			zap.Error(err))
		return OutcomeFailed, err
	}

	if !created {
		uc.log.Debug("duplicate delivery absorbed", zap.String("event_id", env.EventID))
		return OutcomeDuplicate, nil
	}

	return OutcomeStored, nil
}

package ports

import (
	"context"

	"slack-digest-service/internal/events/core/domain"
)

// EventRepositoryPort persists canonical events with insert-if-absent
// semantics keyed on the external event id:
//
//	created = true,  err = nil  -> new record
//	created = false, err = nil  -> duplicate delivery (idempotent no-op)
//	created = false, err != nil -> store error
type EventRepositoryPort interface {
	SaveReaction(ctx context.Context, e *domain.ReactionEvent) (created bool, err error)
	SaveMembership(ctx context.Context, e *domain.MembershipEvent) (created bool, err error)
	SaveMessage(ctx context.Context, e *domain.MessageEvent) (created bool, err error)
	SaveFile(ctx context.Context, e *domain.FileEvent) (created bool, err error)
}

// Package audit attaches write provenance (actor + timestamp) to records.
// The acting identity travels as a context value set by the transport layer,
// never as global state, so it can vary per caller.
package audit

import (
	"context"
	"time"

	"reservation-management/internal/pkg/clock"
)

type actorKey struct{}

// WithActor returns a context carrying the identity performing the write.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey{}).(string)
	return actor, ok && actor != ""
}

// Stamp is the provenance block carried by every persisted entity.
// CreatedBy/CreatedAt are immutable after the first write.
type Stamp struct {
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy string
	UpdatedAt time.Time
}

type Stamper struct {
	clock        clock.Clock
	defaultActor string
}

func NewStamper(clk clock.Clock, defaultActor string) *Stamper {
	return &Stamper{clock: clk, defaultActor: defaultActor}
}

// NewStamp builds the provenance block for a freshly created record.
func (s *Stamper) NewStamp(ctx context.Context) Stamp {
	actor := s.actor(ctx)
	now := s.clock.Now()
	return Stamp{
		CreatedBy: actor,
		CreatedAt: now,
		UpdatedBy: actor,
		UpdatedAt: now,
	}
}

// Refresh re-stamps the mutable half of an existing provenance block.
func (s *Stamper) Refresh(ctx context.Context, st Stamp) Stamp {
	st.UpdatedBy = s.actor(ctx)
	st.UpdatedAt = s.clock.Now()
	return st
}

func (s *Stamper) actor(ctx context.Context) string {
	if actor, ok := ActorFromContext(ctx); ok {
		return actor
	}
	return s.defaultActor
}

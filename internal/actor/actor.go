// Package actor carries the operator identity through a request. The
// engine records it on audit history rows instead of reading any
// global session state.
package actor

import (
	"context"

	"github.com/google/uuid"
)

type Actor struct {
	ID   uuid.UUID
	Name string
}

type ctxKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}

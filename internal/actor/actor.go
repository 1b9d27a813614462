// Package actor carries the identity of whoever makes the current request.
//
// The actor is bound to a request context with Bind and stops being visible
// once the returned release func runs, so nothing leaks between requests.
package actor

import (
	"context"
	"sync/atomic"

	"portfolio-api/internal/domain/user"
)

type Actor struct {
	ID   user.ID
	UUID user.UUID
	Role string
}

type ctxKey struct{}

type binding struct {
	actor    Actor
	released atomic.Bool
}

// Bind attaches a to ctx. The release func must be called when the request
// ends; it is safe to call more than once.
func Bind(ctx context.Context, a Actor) (context.Context, func()) {
	b := &binding{actor: a}
	ctx, cancel := context.WithCancel(context.WithValue(ctx, ctxKey{}, b))

	return ctx, func() {
		b.released.Store(true)
		cancel()
	}
}

// From returns the actor bound to ctx, if any and not yet released.
func From(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	b, ok := ctx.Value(ctxKey{}).(*binding)
	if !ok || b.released.Load() {
		return Actor{}, false
	}
	return b.actor, true
}

// UploaderID returns the bound actor's internal id, or nil for anonymous requests.
func UploaderID(ctx context.Context) *user.ID {
	a, ok := From(ctx)
	if !ok {
		return nil
	}
	id := a.ID
	return &id
}

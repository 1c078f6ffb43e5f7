// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the actor recorded in the stock ledger.
type ActorKey struct{}

// CheckoutKey is the context key for the checkout a mutation belongs to.
type CheckoutKey struct{}

// WithActorID returns a context with the actor ID embedded.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok {
		return v
	}
	return ""
}

// WithCheckoutID returns a context tagged with a checkout ID.
func WithCheckoutID(ctx context.Context, checkoutID string) context.Context {
	return context.WithValue(ctx, CheckoutKey{}, checkoutID)
}

// CheckoutIDFromContext returns the checkout ID, or empty string outside a checkout.
func CheckoutIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CheckoutKey{}).(string); ok {
		return v
	}
	return ""
}

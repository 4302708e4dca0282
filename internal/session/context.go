package session

import (
	"context"

	"github.com/kwanchai/cleanbook/internal/model"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity returns a context carrying the given identity.
// The web layer attaches the request's resolved identity here so that
// handlers and the outbound request transport can read it.
func WithIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext returns the identity carried by the context, or nil
func FromContext(ctx context.Context) *model.Identity {
	id, _ := ctx.Value(identityContextKey).(*model.Identity)
	return id
}

package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kwanchai/cleanbook/internal/identity"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/session"
)

type contextKey string

// GetIdentity retrieves the resolved identity from the request context.
// Returns nil if the visitor is not authenticated.
func GetIdentity(ctx context.Context) *model.Identity {
	return session.FromContext(ctx)
}

// Identity returns middleware that resolves the persisted identity
// record into the request context on every request. Missing, malformed,
// and expired records resolve to an anonymous visitor.
func Identity(store *identity.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := store.Read(r)
			ctx := session.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth returns middleware guarding a route. Unauthenticated
// visitors are redirected to the login page carrying the requested path
// so login can return them there. Authenticated visitors whose role is
// not in the allowed set are redirected home; an empty set admits any
// authenticated visitor. Authentication is checked before role.
func RequireAuth(allowed ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := session.FromContext(r.Context())
			if !id.Authenticated() {
				// Full request URI so query params, like a chosen
				// service, survive the login round-trip
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
				return
			}

			if !id.HasRole(allowed...) {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package client

import (
	"context"
	"net/http"

	"github.com/kwanchai/cleanbook/internal/session"
)

// CredentialSource supplies the bearer credential attached to outbound
// requests. Implementations must be read-only: the transport never
// mutates session state.
type CredentialSource interface {
	Credential(ctx context.Context) string
}

// CredentialFunc adapts a function to a CredentialSource
type CredentialFunc func(ctx context.Context) string

// Credential implements CredentialSource
func (f CredentialFunc) Credential(ctx context.Context) string {
	return f(ctx)
}

// ContextSource reads the credential from the identity carried by the
// request context. This is the web path: the identity middleware resolves
// the visitor's cookie into the context, and the handler's outbound calls
// inherit that context.
func ContextSource() CredentialSource {
	return CredentialFunc(func(ctx context.Context) string {
		if id := session.FromContext(ctx); id.Authenticated() {
			return id.Credential
		}
		return ""
	})
}

// StateSource reads the credential from a session state (the CLI path)
func StateSource(state *session.State) CredentialSource {
	return CredentialFunc(func(context.Context) string {
		return state.Credential()
	})
}

// Transport decorates outbound requests with the current bearer
// credential. It attaches nothing when the credential is empty, never
// overwrites an Authorization header that is already present, and does no
// retries or error interpretation of its own.
type Transport struct {
	Base   http.RoundTripper // nil means http.DefaultTransport
	Source CredentialSource
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if cred := t.credential(req.Context()); cred != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+cred)
		}
	}
	return t.base().RoundTrip(req)
}

func (t *Transport) credential(ctx context.Context) string {
	// A context identity wins over the configured source, so a single
	// shared client serves many concurrent visitors
	if id := session.FromContext(ctx); id.Authenticated() {
		return id.Credential
	}
	if t.Source != nil {
		return t.Source.Credential(ctx)
	}
	return ""
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kwanchai/cleanbook/internal/api/apierr"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/services/account"
)

type contextKey string

const (
	accountContextKey contextKey = "account"
	tokenContextKey   contextKey = "token"
)

// Auth creates authentication middleware requiring a valid bearer token
func Auth(accountService *account.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := extractToken(r)
			if value == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			token, err := accountService.ValidateToken(value)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, tokenContextKey, token)
			ctx = context.WithValue(ctx, accountContextKey, &token.Account)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthor creates middleware rejecting non-Author accounts.
// Must run after Auth.
func RequireAuthor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acct := GetAccount(r.Context())
			if acct == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			if acct.Role != model.RoleAuthor {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetAccount returns the authenticated account from the request context
func GetAccount(ctx context.Context) *model.Account {
	acct, _ := ctx.Value(accountContextKey).(*model.Account)
	return acct
}

// GetToken returns the validated token from the request context
func GetToken(ctx context.Context) *account.Token {
	token, _ := ctx.Value(tokenContextKey).(*account.Token)
	return token
}

// MustGetAccount returns the authenticated account or panics
func MustGetAccount(ctx context.Context) *model.Account {
	acct := GetAccount(ctx)
	if acct == nil {
		panic("no account in context - auth middleware not applied?")
	}
	return acct
}

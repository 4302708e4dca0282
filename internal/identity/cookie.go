package identity

import (
	"net/http"

	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/model"
)

// CookieName is the fixed storage name for the persisted identity record
const CookieName = "user"

// CookieStore persists the identity record in a browser cookie scoped to
// path "/". Each write stamps a fresh expiry window; reads tolerate
// missing, malformed, and expired values by returning absent.
type CookieStore struct {
	clock  clock.Clock
	secure bool
}

// NewCookieStore creates a CookieStore. secure controls the cookie's
// Secure attribute and should be true whenever the site is served over
// HTTPS.
func NewCookieStore(clk clock.Clock, secure bool) *CookieStore {
	if clk == nil {
		clk = clock.New()
	}
	return &CookieStore{clock: clk, secure: secure}
}

// Write persists the identity, replacing any previous record. A nil
// identity, or one without a credential, removes the record instead.
func (s *CookieStore) Write(w http.ResponseWriter, id *model.Identity) {
	if !id.Authenticated() {
		s.Clear(w)
		return
	}

	rec := NewRecord(id, s.clock.Now())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    rec.Encode(),
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the stored identity, or nil if the record is missing,
// malformed, or expired
func (s *CookieStore) Read(r *http.Request) *model.Identity {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	rec, ok := DecodeRecord(cookie.Value)
	if !ok || rec.Expired(s.clock.Now()) {
		return nil
	}

	return rec.Identity()
}

// ReadCredential returns the stored credential, or "" if absent
func (s *CookieStore) ReadCredential(r *http.Request) string {
	if id := s.Read(r); id != nil {
		return id.Credential
	}
	return ""
}

// Clear removes the record unconditionally
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

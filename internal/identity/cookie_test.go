package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/dependencies/mocks"
	"github.com/kwanchai/cleanbook/internal/model"
)

// roundTrip writes the recorder's cookies into a fresh request, the way a
// browser would carry them to the next navigation
func roundTrip(rr *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestCookieStoreWriteRead(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := NewCookieStore(clk, false)

	rr := httptest.NewRecorder()
	store.Write(rr, testIdentity())

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, int(TTL.Seconds()), cookies[0].MaxAge)

	got := store.Read(roundTrip(rr))
	require.NotNil(t, got)
	assert.Equal(t, "u_123", got.SubjectID)
	assert.Equal(t, "tok_abc", got.Credential)
	assert.Equal(t, "tok_abc", store.ReadCredential(roundTrip(rr)))
}

func TestCookieStoreWriteNilClears(t *testing.T) {
	store := NewCookieStore(nil, false)

	rr := httptest.NewRecorder()
	store.Write(rr, nil)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge, "writing absent identity should remove the record")
}

func TestCookieStoreIdentityWithoutCredentialNotPersisted(t *testing.T) {
	store := NewCookieStore(nil, false)

	rr := httptest.NewRecorder()
	store.Write(rr, &model.Identity{SubjectID: "u_1", DisplayName: "x", Role: model.RoleUser})

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestCookieStoreExpiredRecord(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := NewCookieStore(clk, false)

	rr := httptest.NewRecorder()
	store.Write(rr, testIdentity())
	req := roundTrip(rr)

	clk.Advance(24*time.Hour + time.Minute)
	assert.Nil(t, store.Read(req))
	assert.Equal(t, "", store.ReadCredential(req))
}

func TestCookieStoreMalformedRecord(t *testing.T) {
	store := NewCookieStore(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	assert.Nil(t, store.Read(req))
	assert.Equal(t, "", store.ReadCredential(req))
}

func TestCookieStoreMissingRecord(t *testing.T) {
	store := NewCookieStore(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, store.Read(req))
}

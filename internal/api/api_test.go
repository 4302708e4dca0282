package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/api"
	"github.com/kwanchai/cleanbook/internal/api/response"
	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/services/account"
	"github.com/kwanchai/cleanbook/internal/services/booking"
	"github.com/kwanchai/cleanbook/internal/services/catalog"
	"github.com/kwanchai/cleanbook/internal/storage/memory"
	"github.com/kwanchai/cleanbook/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.NopLogger()
	store := memory.New()
	clk := clock.New()

	accountService := account.New(store, clk, account.DefaultConfig())
	catalogService := catalog.New(store, logger)
	bookingService := booking.New(store, clk, logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AccountService: accountService,
		CatalogService: catalogService,
		BookingService: bookingService,
	})

	return &testServer{
		handler: router,
		storage: store,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// registerAndLogin creates an account and returns its id and access token
func (ts *testServer) registerAndLogin(t *testing.T, username, role string) (string, string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"password": "secret123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.SubjectID, resp.AccessToken
}

func (ts *testServer) createService(t *testing.T, token, name string) response.Service {
	t.Helper()

	rr := ts.request(http.MethodPost, "/services", map[string]any{
		"name":    name,
		"details": "details for " + name,
		"price":   500,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var svc response.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &svc))
	return svc
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "User", resp.Role)
	assert.NotEmpty(t, resp.SubjectID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "alice", "password": "secret123"}
	rr := ts.request(http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USERNAME_EXISTS")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	ts.registerAndLogin(t, "alice", "User")

	rr := ts.request(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CREDENTIALS")
}

func TestRegisterInvalidRole(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"role":     "Admin",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_ROLE")
}

func TestServiceCRUD(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.registerAndLogin(t, "author", "Author")

	created := ts.createService(t, token, "Deep Clean")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Deep Clean", created.Name)
	assert.Equal(t, float64(500), created.Price)

	// Reads are public
	rr := ts.request(http.MethodGet, "/services", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []response.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = ts.request(http.MethodGet, "/services/"+created.ID, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	// Partial update leaves other fields alone
	rr = ts.request(http.MethodPut, "/services/"+created.ID, map[string]any{
		"price": 750,
	}, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	var updated response.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, float64(750), updated.Price)
	assert.Equal(t, "Deep Clean", updated.Name)

	rr = ts.request(http.MethodDelete, "/services/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/services/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServiceWritesRequireAuthor(t *testing.T) {
	ts := newTestServer(t)
	_, userToken := ts.registerAndLogin(t, "bob", "User")

	body := map[string]any{"name": "Deep Clean"}

	rr := ts.request(http.MethodPost, "/services", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/services", body, userToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "FORBIDDEN")
}

func TestServiceCreateMultipart(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.registerAndLogin(t, "author", "Author")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Window Clean"))
	require.NoError(t, mw.WriteField("price", "250"))
	fw, err := mw.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	// Minimal PNG header so content sniffing sees an image
	_, err = io.Copy(fw, bytes.NewReader([]byte("\x89PNG\r\n\x1a\n00000000")))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/services", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var svc response.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &svc))
	assert.Equal(t, "Window Clean", svc.Name)
	assert.Equal(t, float64(250), svc.Price)
	assert.Contains(t, svc.CoverImageURL, "data:image/png;base64,")
}

func TestBookingLifecycle(t *testing.T) {
	ts := newTestServer(t)
	_, authorToken := ts.registerAndLogin(t, "author", "Author")
	userID, userToken := ts.registerAndLogin(t, "bob", "User")

	svc := ts.createService(t, authorToken, "Deep Clean")

	rr := ts.request(http.MethodPost, "/bookings", map[string]string{
		"serviceId": svc.ID,
		"date":      "2026-09-01",
		"time":      "10:00",
		"address":   "12 High St",
	}, userToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, userID, created.UserID)
	assert.NotEmpty(t, created.CreatedAt)

	// Owner sees it in their listing
	rr = ts.request(http.MethodGet, "/bookings/user/"+userID, nil, userToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []response.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// Author confirms it
	rr = ts.request(http.MethodPut, "/bookings/"+created.ID, map[string]string{
		"status": "confirmed",
	}, authorToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	var updated response.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "confirmed", updated.Status)

	// Owner cancels
	rr = ts.request(http.MethodDelete, "/bookings/"+created.ID, nil, userToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/bookings/"+created.ID, nil, userToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookingRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/bookings", map[string]string{
		"serviceId": "whatever",
		"date":      "2026-09-01",
		"time":      "10:00",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
}

func TestBookingUnknownService(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.registerAndLogin(t, "bob", "User")

	rr := ts.request(http.MethodPost, "/bookings", map[string]string{
		"serviceId": "missing",
		"date":      "2026-09-01",
		"time":      "10:00",
	}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "SERVICE_NOT_FOUND")
}

func TestBookingListIsAuthorOnly(t *testing.T) {
	ts := newTestServer(t)
	_, authorToken := ts.registerAndLogin(t, "author", "Author")
	_, userToken := ts.registerAndLogin(t, "bob", "User")

	rr := ts.request(http.MethodGet, "/bookings", nil, userToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = ts.request(http.MethodGet, "/bookings", nil, authorToken)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBookingInvalidStatus(t *testing.T) {
	ts := newTestServer(t)
	_, authorToken := ts.registerAndLogin(t, "author", "Author")
	_, userToken := ts.registerAndLogin(t, "bob", "User")

	svc := ts.createService(t, authorToken, "Deep Clean")

	rr := ts.request(http.MethodPost, "/bookings", map[string]string{
		"serviceId": svc.ID,
		"date":      "2026-09-01",
		"time":      "10:00",
	}, userToken)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created response.Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = ts.request(http.MethodPut, "/bookings/"+created.ID, map[string]string{
		"status": "done",
	}, authorToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_STATUS")
}

package web_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/model"
)

// postMultipart makes a POST request with a multipart form body
func (ts *webTestServer) postMultipart(path string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	ts.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(ts.t, mw.WriteField(key, value))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(ts.t, err)
		_, err = fw.Write(fileContent)
		require.NoError(ts.t, err)
	}
	require.NoError(ts.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	ts.cookies.extract(rr)
	return rr
}

func TestAddService(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr := ts.get("/add-service")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form[action='/add-service'][enctype='multipart/form-data']")

	rr = ts.postMultipart("/add-service", map[string]string{
		"name":     "Deep Clean",
		"details":  "Full house deep clean",
		"price":    "500",
		"duration": "3h",
	}, "", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/manage-services", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Service created")
	assertContainsText(t, doc, ".services", "Deep Clean")
}

func TestAddServiceWithImage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("alice", model.RoleAuthor)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 8)...)
	rr := ts.postMultipart("/add-service", map[string]string{
		"name":  "Window Clean",
		"price": "250",
	}, "cover.png", png)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	// The cover image shows up on the public catalogue
	rr = ts.get("/")
	doc := parseHTML(rr.Body)
	src, ok := doc.Find(".card img").Attr("src")
	require.True(t, ok, "Expected a cover image on the card")
	assert.Contains(t, src, "data:image/png;base64,")
}

func TestAddServiceValidation(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr := ts.postMultipart("/add-service", map[string]string{
		"name":  "",
		"price": "500",
	}, "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Name is required")
}

func TestEditService(t *testing.T) {
	ts := newWebTestServer(t)
	svc := ts.createService("Deep Clean", 500)
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr := ts.get("/edit-service/" + string(svc.ID))
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "input[name='name'][value='Deep Clean']")

	rr = ts.postMultipart("/edit-service/"+string(svc.ID), map[string]string{
		"name":    "Deep Clean Plus",
		"details": "Now with ovens",
		"price":   "650",
	}, "", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.followRedirect(rr)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".services", "Deep Clean Plus")
	assertContainsText(t, doc, ".services", "650")
}

func TestDeleteService(t *testing.T) {
	ts := newWebTestServer(t)
	svc := ts.createService("Deep Clean", 500)
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr := ts.post("/manage-services/"+string(svc.ID)+"/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Service deleted")
	assertNotContainsElement(t, doc, ".services td")
}

func TestManageBookings(t *testing.T) {
	ts := newWebTestServer(t)
	svc := ts.createService("Deep Clean", 500)

	// A user places a booking
	ts.registerAndLogin("bob", model.RoleUser)
	rr := ts.post("/book", url.Values{
		"service": {string(svc.ID)},
		"date":    {"2026-09-01"},
		"time":    {"10:00"},
		"address": {"12 High St"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	// The author reviews and confirms it
	ts.cookies = newCookieJar()
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr = ts.get("/manage-bookings")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".bookings", "Deep Clean")

	action, ok := doc.Find("form[action$='/status']").Attr("action")
	require.True(t, ok, "Expected a status form")

	rr = ts.post(action, url.Values{"status": {"confirmed"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.followRedirect(rr)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Booking updated")
	assertContainsElement(t, doc, "option[value='confirmed'][selected]")
}

func TestManageBookingsDelete(t *testing.T) {
	ts := newWebTestServer(t)
	svc := ts.createService("Deep Clean", 500)

	ts.registerAndLogin("bob", model.RoleUser)
	rr := ts.post("/book", url.Values{
		"service": {string(svc.ID)},
		"date":    {"2026-09-01"},
		"time":    {"10:00"},
		"address": {"12 High St"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	ts.cookies = newCookieJar()
	ts.registerAndLogin("alice", model.RoleAuthor)

	rr = ts.get("/manage-bookings")
	doc := parseHTML(rr.Body)
	action, ok := doc.Find("form[action$='/delete']").Attr("action")
	require.True(t, ok, "Expected a delete form")

	rr = ts.post(action, nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.followRedirect(rr)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Booking deleted")
	assertContainsText(t, doc, ".empty", "No bookings")
}

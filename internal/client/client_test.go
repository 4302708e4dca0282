package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/dependencies/mocks"
	"github.com/kwanchai/cleanbook/internal/model"
)

func TestAuthLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "malee", req.Username)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"subjectId":"u_1","username":"malee","role":"Author","accessToken":"tok_1"}`))
	}))
	defer srv.Close()

	auth := NewAuthAPI(New(srv.URL, nil))
	id, err := auth.Login(context.Background(), "malee", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "u_1", id.SubjectID)
	assert.Equal(t, model.RoleAuthor, id.Role)
	assert.Equal(t, "tok_1", id.Credential)
}

func TestAuthLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid username or password"}}`))
	}))
	defer srv.Close()

	auth := NewAuthAPI(New(srv.URL, nil))
	_, err := auth.Login(context.Background(), "malee", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}

func TestAuthLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"subjectId":"u_1","username":"malee","role":"User"}`))
	}))
	defer srv.Close()

	auth := NewAuthAPI(New(srv.URL, nil))
	_, err := auth.Login(context.Background(), "malee", "secret123")
	assert.True(t, errors.Is(err, ErrBadLoginResponse))
}

func TestServicesCreateJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/services", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Deep Clean","details":"Full clean","price":900,"coverImageUrl":"/img.jpg","duration":"2 hours"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"svc_1","name":"Deep Clean","details":"Full clean","price":900,"duration":"2 hours"}`))
	}))
	defer srv.Close()

	services := NewServicesAPI(New(srv.URL, nil))
	svc, err := services.Create(context.Background(), ServiceForm{
		Name:        "Deep Clean",
		Description: "Full clean",
		Price:       900,
		Image:       "/img.jpg",
		Duration:    "2 hours",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ServiceID("svc_1"), svc.ID)
}

func TestServicesCreateMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Deep Clean", r.FormValue("name"))
		assert.Equal(t, "900", r.FormValue("price"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "cover.jpg", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "imagebytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"svc_1","name":"Deep Clean"}`))
	}))
	defer srv.Close()

	services := NewServicesAPI(New(srv.URL, nil))
	_, err := services.Create(context.Background(), ServiceForm{
		Name:  "Deep Clean",
		Price: 900,
		File:  &FileUpload{Name: "cover.jpg", Content: strings.NewReader("imagebytes")},
	})
	require.NoError(t, err)
}

func TestServicesUpdatePatchSendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/services/svc_1", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"price":950}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"svc_1","name":"Deep Clean","price":950}`))
	}))
	defer srv.Close()

	price := 950.0
	services := NewServicesAPI(New(srv.URL, nil))
	svc, err := services.Update(context.Background(), "svc_1", ServicePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 950.0, svc.Price)
}

func TestBookingsCreateStampsPendingAndCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var dto bookingDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, "pending", dto.Status)
		assert.Equal(t, "2025-06-30T10:00:00Z", dto.CreatedAt)
		assert.Equal(t, "u_1", string(dto.UserID))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b_1","serviceId":"svc_1","status":"pending"}`))
	}))
	defer srv.Close()

	bookings := NewBookingsAPI(New(srv.URL, nil), mocks.NewMockClock(now))
	b, err := bookings.Create(context.Background(), BookingForm{
		ServiceID: "svc_1",
		Date:      "2025-07-01",
		Time:      "09:00",
		Address:   "12 Main St",
		UserID:    "u_1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.BookingID("b_1"), b.ID)
}

func TestBookingsListByUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings/user/u_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"b_2","serviceId":"svc_1"},{"_id":"b_1","serviceId":"svc_2"}]`))
	}))
	defer srv.Close()

	bookings := NewBookingsAPI(New(srv.URL, nil), nil)
	got, err := bookings.ListByUser(context.Background(), "u_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.BookingID("b_2"), got[0].ID)
}

func TestBookingsListSortsNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Server returns oldest first
		_, _ = w.Write([]byte(`[
			{"id":"b_old","serviceId":"svc_1","createdAt":"2026-01-01T09:00:00Z"},
			{"id":"b_new","serviceId":"svc_1","createdAt":"2026-02-01T09:00:00Z"}
		]`))
	}))
	defer srv.Close()

	bookings := NewBookingsAPI(New(srv.URL, nil), nil)

	got, err := bookings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.BookingID("b_new"), got[0].ID)
	assert.Equal(t, model.BookingID("b_old"), got[1].ID)

	got, err = bookings.ListByUser(context.Background(), "u_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.BookingID("b_new"), got[0].ID)
}

func TestHandlerTransport(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok_1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"svc_1","name":"Deep Clean"}]`))
	})

	httpClient := &http.Client{Transport: &Transport{
		Base:   HandlerTransport{Handler: handler},
		Source: fixedSource("tok_1"),
	}}

	services := NewServicesAPI(New("http://backend", httpClient))
	got, err := services.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Deep Clean", got[0].Name)
}

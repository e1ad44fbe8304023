package upstream

import (
	"context"
	"event-composer-backend/assemble"
	"event-composer-backend/codec"
	"event-composer-backend/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "host-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.Nil(t, err)
	return signed
}

func testSubmission(t *testing.T) *assemble.Submission {
	s, err := assemble.Build(&model.Draft{
		Details: &model.Details{
			Title: "Go Conference", Description: "Two days of Go", Category: "tech",
			StartDate: "2026-10-01", EndDate: "2026-10-02", StartTime: "09:00",
			EndTime: "17:00", Location: "Nairobi", Type: model.EventInPerson,
		},
		BannerImage: codec.EncodeDataURI("image/png", []byte("banner")),
		EventType:   model.EventTypeFree,
	})
	require.Nil(t, err)
	return s
}

func TestFeaturesParsesFlags(t *testing.T) {
	var gotAuth, gotTenant string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("X-Tenant-Id")
		assert.Equal(t, "/tenants/my/features", r.URL.Path)
		w.Write([]byte(`{"data":{"features":{"allowTransfers":{"enabled":true},"creditSystem":{"enabled":false}}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticCredentials{BearerToken: "abc", TenantID: "tenant-1"}, time.Second)
	flags, err := client.Features(context.Background())
	require.Nil(t, err)

	assert.True(t, flags.AllowTransfers)
	assert.False(t, flags.CreditSystem)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "tenant-1", gotTenant)
}

func TestFeaturesErrorsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticCredentials{}, time.Second)
	_, err := client.Features(context.Background())
	require.NotNil(t, err)
}

func TestPublishParsesEventID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.Nil(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "Go Conference", r.FormValue("eventTitle"))
		require.Len(t, r.MultipartForm.File["bannerImage"], 1)

		w.Write([]byte(`{"data":{"id":"ev-42"}}`))
	}))
	defer server.Close()

	token := signedToken(t, time.Now().Add(time.Hour))
	client := NewClient(server.URL, StaticCredentials{BearerToken: token}, time.Second)

	receipt, err := client.Publish(context.Background(), testSubmission(t))
	require.Nil(t, err)
	assert.Equal(t, "ev-42", receipt.EventID)
}

func TestPublishFallsBackToNumericEventID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"eventId":42}}`))
	}))
	defer server.Close()

	token := signedToken(t, time.Now().Add(time.Hour))
	client := NewClient(server.URL, StaticCredentials{BearerToken: token}, time.Second)

	receipt, err := client.Publish(context.Background(), testSubmission(t))
	require.Nil(t, err)
	assert.Equal(t, "42", receipt.EventID)
}

func TestPublishSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"event title already taken"}`))
	}))
	defer server.Close()

	token := signedToken(t, time.Now().Add(time.Hour))
	client := NewClient(server.URL, StaticCredentials{BearerToken: token}, time.Second)

	_, err := client.Publish(context.Background(), testSubmission(t))
	require.NotNil(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "event title already taken", apiErr.Message)
}

func TestPublishRefusesExpiredToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	token := signedToken(t, time.Now().Add(-time.Hour))
	client := NewClient(server.URL, StaticCredentials{BearerToken: token}, time.Second)

	_, err := client.Publish(context.Background(), testSubmission(t))
	assert.Equal(t, ErrTokenExpired, err)
	assert.False(t, called)
}

func TestTokenExpiredLeavesOpaqueTokensToTheBackend(t *testing.T) {
	assert.False(t, tokenExpired("not-a-jwt"))
	assert.False(t, tokenExpired(""))
}

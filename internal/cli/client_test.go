package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPostSendsJSONAndDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana", body["username"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"username":"ana"},"message":"Welcome, Ana!"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result LoginResult
	err := client.Post("/api/v1/auth/login", map[string]string{
		"username": "ana",
		"password": "1234",
	}, &result)
	require.NoError(t, err)

	assert.Equal(t, "ana", result.User.Username)
	assert.Equal(t, "Welcome, Ana!", result.Message)
}

func TestClientDecodesAPIErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"USERNAME_TAKEN","message":"Username already exists"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Post("/api/v1/auth/register", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, "Username already exists (USERNAME_TAKEN)", err.Error())
}

func TestClientFallsBackToStatusForNonAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Get("/api/v1/users", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream unavailable", err.Error())
}

func TestClientHandlesEmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result LoginResult
	require.NoError(t, client.Post("/api/v1/auth/logout", nil, &result))
}

func TestClientTrimsTrailingSlashFromBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")

	var result HealthResult
	require.NoError(t, client.Get("/health", &result))
	assert.Equal(t, "ok", result.Status)
}

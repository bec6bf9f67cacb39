package taboolaclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/taboola-extractor/internal/config"
	"github.com/vfg2006/taboola-extractor/internal/domain"
)

func newTestClient(baseURL string) Client {
	cfg := &config.Config{
		Taboola: config.Taboola{
			BaseURL:      baseURL,
			Username:     "user@example.com",
			Password:     "secret",
			AccountID:    "demo-account",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewClient(cfg, logger)
}

func TestGenerateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/backstage/oauth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "user@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "token-abc", "token_type": "bearer", "expires_in": 43200}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.GenerateToken()
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestGenerateTokenRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid user credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateToken()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestGenerateTokenServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GenerateToken()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHTTPRequest)
}

func TestGenerateTokenWithoutAccessTokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// A ausência do campo não é erro nesta camada: o token vazio falha na
	// verificação de acesso subsequente.
	token, err := client.GenerateToken()
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

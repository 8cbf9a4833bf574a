package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scheduleapp/internal/config"
	"github.com/dtroode/scheduleapp/internal/navigation"
	"github.com/dtroode/scheduleapp/internal/testutil"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Backend: config.Backend{URL: url, AnonKey: "anon", Timeout: 5 * time.Second},
		Auth:    config.Auth{RefreshMargin: time.Minute},
		Storage: config.Storage{InMemory: true},
		Members: config.Members{StaleTime: 30 * time.Second},
	}
}

func TestApp_SignInFlow(t *testing.T) {
	userID := uuid.New()
	orgID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/auth/v1/token":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  testutil.MakeAccessToken(t, "s", userID, "a@b.c", time.Hour),
				"refresh_token": "r1",
				"expires_in":    3600,
				"user":          map[string]any{"id": userID, "email": "a@b.c"},
			})
		case "/rest/v1/organizations":
			assert.NotEqual(t, "Bearer anon", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": orgID, "name": "Acme", "timezone": "UTC"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a, err := New(ctx, testConfig(srv.URL), testutil.MakeNoopLogger())
	require.NoError(t, err)
	defer a.Close()

	a.Init(ctx)
	assert.Equal(t, navigation.Unauthenticated, a.Gate.Status())
	assert.Equal(t, navigation.SignIn, a.Router.Location())

	require.NoError(t, a.Auth.SignIn(ctx, "a@b.c", "secret"))
	assert.Equal(t, navigation.Authenticated, a.Gate.Status())
	assert.Equal(t, navigation.Landing, a.Router.Location())

	user, ok := a.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, userID, user.ID)

	require.NoError(t, a.Orgs.FetchOrgs(ctx))
	assert.Equal(t, orgID, a.Orgs.ActiveOrgID())
}

func TestApp_Close(t *testing.T) {
	a, err := New(context.Background(), testConfig("http://127.0.0.1:0"), testutil.MakeNoopLogger())
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestApp_BadCACert(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.Backend.CACertFile = "/does/not/exist.pem"

	_, err := New(context.Background(), cfg, testutil.MakeNoopLogger())
	require.Error(t, err)
}

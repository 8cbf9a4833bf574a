package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/testutil"
	"github.com/dtroode/scheduleapp/internal/token"
)

const testSecret = "test-secret"

type memStorage struct {
	mu      sync.Mutex
	session *model.Session
	saves   int
	clears  int
}

func (m *memStorage) Load(ctx context.Context) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return model.Session{}, model.ErrNotFound
	}
	return *m.session, nil
}

func (m *memStorage) Save(ctx context.Context, s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	m.saves++
	return nil
}

func (m *memStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	m.clears++
	return nil
}

type recorded struct {
	event   model.AuthEvent
	session *model.Session
}

type eventLog struct {
	mu     sync.Mutex
	events []recorded
}

func (l *eventLog) handler(event model.AuthEvent, s *model.Session) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, recorded{event: event, session: s})
}

func (l *eventLog) all() []recorded {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recorded(nil), l.events...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func sessionBody(t *testing.T, userID uuid.UUID, email, refresh string) map[string]any {
	return map[string]any{
		"access_token":  testutil.MakeAccessToken(t, testSecret, userID, email, time.Hour),
		"token_type":    "bearer",
		"expires_in":    3600,
		"refresh_token": refresh,
		"user":          map[string]any{"id": userID.String(), "email": email},
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, storage model.SessionStorage) *Client {
	t.Helper()
	return NewClient(srv.Client(), Options{BaseURL: srv.URL + "/", RefreshMargin: time.Minute},
		token.NewDecoder(testSecret), storage, testutil.MakeNoopLogger())
}

func TestClient_SignInWithPassword(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Password != "secret" {
			writeJSON(t, w, http.StatusBadRequest, map[string]any{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
			return
		}
		writeJSON(t, w, http.StatusOK, sessionBody(t, userID, body.Email, "r1"))
	}))
	defer srv.Close()

	t.Run("valid credentials", func(t *testing.T) {
		storage := &memStorage{}
		c := newTestClient(t, srv, storage)
		log := &eventLog{}
		c.OnAuthStateChange(log.handler)

		require.NoError(t, c.SignInWithPassword(context.Background(), "a@b.c", "secret"))

		events := log.all()
		require.Len(t, events, 1)
		assert.Equal(t, model.AuthEventSignedIn, events[0].event)
		require.NotNil(t, events[0].session)
		assert.Equal(t, userID, events[0].session.User.ID)
		assert.Equal(t, "a@b.c", events[0].session.User.Email)
		assert.Equal(t, 1, storage.saves)

		sess, err := c.GetSession(context.Background())
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "r1", sess.RefreshToken)
		assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		storage := &memStorage{}
		c := newTestClient(t, srv, storage)
		log := &eventLog{}
		c.OnAuthStateChange(log.handler)

		err := c.SignInWithPassword(context.Background(), "a@b.c", "wrong")
		require.Error(t, err)

		var gwErr *model.GatewayError
		require.True(t, errors.As(err, &gwErr))
		assert.Equal(t, http.StatusBadRequest, gwErr.Status)
		assert.Equal(t, "Invalid login credentials", gwErr.Message)
		assert.Empty(t, log.all())
		assert.Zero(t, storage.saves)
	})
}

func TestClient_SignUp(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		body        func(t *testing.T) map[string]any
		wantSignIn  bool
		wantSession bool
	}{
		{
			name: "auto confirmed account signs in",
			body: func(t *testing.T) map[string]any {
				return sessionBody(t, userID, "new@b.c", "r1")
			},
			wantSignIn:  true,
			wantSession: true,
		},
		{
			name: "confirmation pending",
			body: func(t *testing.T) map[string]any {
				return map[string]any{"id": userID.String(), "email": "new@b.c"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/signup", r.URL.Path)
				writeJSON(t, w, http.StatusOK, tt.body(t))
			}))
			defer srv.Close()

			c := newTestClient(t, srv, &memStorage{})
			log := &eventLog{}
			c.OnAuthStateChange(log.handler)

			require.NoError(t, c.SignUp(context.Background(), "new@b.c", "secret"))

			if tt.wantSignIn {
				require.Len(t, log.all(), 1)
				assert.Equal(t, model.AuthEventSignedIn, log.all()[0].event)
			} else {
				assert.Empty(t, log.all())
			}

			sess, err := c.GetSession(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSession, sess != nil)
		})
	}
}

func TestClient_GetSession_FromStorage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	userID := uuid.New()
	storage := &memStorage{session: &model.Session{
		AccessToken:  "stored",
		RefreshToken: "r1",
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         model.Identity{ID: userID, Email: "a@b.c"},
	}}
	c := newTestClient(t, srv, storage)

	sess, err := c.GetSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, userID, sess.User.ID)

	tok, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stored", tok)
}

func TestClient_GetSession_NoSession(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := newTestClient(t, srv, &memStorage{})

	sess, err := c.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)

	tok, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestClient_GetSession_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("near expiry is refreshed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

			var body refreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "r1", body.RefreshToken)

			writeJSON(t, w, http.StatusOK, sessionBody(t, userID, "a@b.c", "r2"))
		}))
		defer srv.Close()

		storage := &memStorage{session: &model.Session{
			AccessToken:  "old",
			RefreshToken: "r1",
			ExpiresAt:    time.Now().Add(10 * time.Second),
			User:         model.Identity{ID: userID, Email: "a@b.c"},
		}}
		c := newTestClient(t, srv, storage)
		log := &eventLog{}
		c.OnAuthStateChange(log.handler)

		sess, err := c.GetSession(context.Background())
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "r2", sess.RefreshToken)

		require.Len(t, log.all(), 1)
		assert.Equal(t, model.AuthEventTokenRefreshed, log.all()[0].event)
		assert.Equal(t, "r2", storage.session.RefreshToken)
	})

	t.Run("rejected refresh signs out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]any{
				"error_code": "refresh_token_not_found",
				"msg":        "Invalid Refresh Token",
			})
		}))
		defer srv.Close()

		storage := &memStorage{session: &model.Session{
			AccessToken:  "old",
			RefreshToken: "r1",
			ExpiresAt:    time.Now().Add(-time.Minute),
			User:         model.Identity{ID: userID},
		}}
		c := newTestClient(t, srv, storage)
		log := &eventLog{}
		c.OnAuthStateChange(log.handler)

		sess, err := c.GetSession(context.Background())
		require.Error(t, err)
		assert.Nil(t, sess)

		events := log.all()
		require.Len(t, events, 1)
		assert.Equal(t, model.AuthEventSignedOut, events[0].event)
		assert.Nil(t, events[0].session)
		assert.Nil(t, storage.session)
	})

	t.Run("network failure keeps session", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		storage := &memStorage{session: &model.Session{
			AccessToken:  "old",
			RefreshToken: "r1",
			ExpiresAt:    time.Now().Add(10 * time.Second),
			User:         model.Identity{ID: userID},
		}}
		c := newTestClient(t, srv, storage)
		log := &eventLog{}
		c.OnAuthStateChange(log.handler)

		_, err := c.GetSession(context.Background())
		require.Error(t, err)
		assert.Empty(t, log.all())
		assert.NotNil(t, storage.session)
	})
}

func TestClient_SignOut(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "remote success", status: http.StatusNoContent},
		{name: "session already gone", status: http.StatusUnauthorized},
		{name: "remote failure still clears", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/logout", r.URL.Path)
				assert.Equal(t, "Bearer stored", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			storage := &memStorage{session: &model.Session{
				AccessToken: "stored",
				ExpiresAt:   time.Now().Add(time.Hour),
				User:        model.Identity{ID: uuid.New()},
			}}
			c := newTestClient(t, srv, storage)
			log := &eventLog{}
			c.OnAuthStateChange(log.handler)

			err := c.SignOut(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			events := log.all()
			require.Len(t, events, 1)
			assert.Equal(t, model.AuthEventSignedOut, events[0].event)
			assert.Nil(t, storage.session)

			sess, err := c.GetSession(context.Background())
			require.NoError(t, err)
			assert.Nil(t, sess)
		})
	}
}

func TestClient_OnAuthStateChange(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, sessionBody(t, userID, "a@b.c", "r1"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStorage{})

	var order []string
	first := c.OnAuthStateChange(func(model.AuthEvent, *model.Session) { order = append(order, "first") })
	c.OnAuthStateChange(func(model.AuthEvent, *model.Session) { order = append(order, "second") })

	require.NoError(t, c.SignInWithPassword(context.Background(), "a@b.c", "x"))
	assert.Equal(t, []string{"first", "second"}, order)

	first.Unsubscribe()
	first.Unsubscribe()

	order = nil
	require.NoError(t, c.SignInWithPassword(context.Background(), "a@b.c", "x"))
	assert.Equal(t, []string{"second"}, order)
}

func TestClient_IdentityFromToken(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  testutil.MakeAccessToken(t, testSecret, userID, "jwt@b.c", time.Hour),
			"refresh_token": "r1",
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, &memStorage{})
	require.NoError(t, c.SignInWithPassword(context.Background(), "jwt@b.c", "x"))

	sess, err := c.GetSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, userID, sess.User.ID)
	assert.Equal(t, "jwt@b.c", sess.User.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)
}

func TestClient_AutoRefresh(t *testing.T) {
	userID := uuid.New()
	refreshed := make(chan struct{}, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, sessionBody(t, userID, "a@b.c", "r2"))
	}))
	defer srv.Close()

	storage := &memStorage{}
	c := newTestClient(t, srv, storage)
	c.setSession(context.Background(), model.Session{
		AccessToken:  "old",
		RefreshToken: "r1",
		ExpiresAt:    time.Now().Add(time.Second),
		User:         model.Identity{ID: userID},
	}, model.AuthEventSignedIn)

	c.OnAuthStateChange(func(event model.AuthEvent, _ *model.Session) {
		if event == model.AuthEventTokenRefreshed {
			select {
			case refreshed <- struct{}{}:
			default:
			}
		}
	})

	c.StartAutoRefresh(context.Background(), 10*time.Millisecond)
	defer c.Close()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not refreshed in background")
	}
}

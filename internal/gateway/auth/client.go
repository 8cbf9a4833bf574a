package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/transport"
)

var _ model.AuthGateway = (*Client)(nil)
var _ model.TokenSource = (*Client)(nil)

// TokenDecoder extracts identity and expiry from an access token.
type TokenDecoder interface {
	Decode(accessToken string) (model.Identity, time.Time, error)
}

// Options contains auth gateway parameters.
type Options struct {
	BaseURL       string
	RefreshMargin time.Duration
}

// Client talks to the auth endpoints and owns the current session.
type Client struct {
	http    *http.Client
	baseURL string
	margin  time.Duration
	decoder TokenDecoder
	storage model.SessionStorage
	logger  *logger.Logger
	now     func() time.Time

	mu       sync.Mutex
	session  *model.Session
	loaded   bool
	handlers map[uint64]model.AuthChangeHandler
	order    []uint64
	nextID   uint64

	// writeMu orders session writes and their notifications.
	writeMu   sync.Mutex
	refreshMu sync.Mutex

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewClient creates a new auth gateway client.
func NewClient(
	httpClient *http.Client,
	opts Options,
	decoder TokenDecoder,
	storage model.SessionStorage,
	logger *logger.Logger,
) *Client {
	return &Client{
		http:     httpClient,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		margin:   opts.RefreshMargin,
		decoder:  decoder,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
		handlers: make(map[uint64]model.AuthChangeHandler),
		stop:     make(chan struct{}),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

// signUpResponse is either a session (auto-confirm) or the bare user
// awaiting email confirmation.
type signUpResponse struct {
	tokenResponse
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetSession returns the current session, loading it from storage on first
// use and refreshing it when it is about to expire. A nil session means
// nobody is signed in.
func (c *Client) GetSession(ctx context.Context) (*model.Session, error) {
	sess, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if !sess.ExpiresWithin(c.now(), c.margin) {
		return sess, nil
	}

	c.logger.Debug("Auth gateway: session close to expiry, refreshing",
		"user_id", sess.User.ID,
		"expires_at", sess.ExpiresAt)

	return c.refresh(ctx, sess.RefreshToken)
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) error {
	c.logger.Debug("Auth gateway: signing in", "email", email)

	req, err := transport.NewJSONRequest(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	var resp tokenResponse
	if err := transport.Do(c.http, req, "sign in", &resp); err != nil {
		c.logger.Info("Auth gateway: sign in rejected",
			"email", email,
			"error", err.Error())
		return err
	}

	sess, err := c.toSession(resp)
	if err != nil {
		return &model.GatewayError{Op: "sign in", Message: "invalid session", Err: err}
	}

	c.setSession(ctx, sess, model.AuthEventSignedIn)

	c.logger.Info("Auth gateway: signed in", "user_id", sess.User.ID)

	return nil
}

// SignUp registers a new account. When the backend confirms accounts
// automatically the returned session is adopted right away.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	c.logger.Debug("Auth gateway: signing up", "email", email)

	req, err := transport.NewJSONRequest(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/signup", credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	var resp signUpResponse
	if err := transport.Do(c.http, req, "sign up", &resp); err != nil {
		c.logger.Info("Auth gateway: sign up rejected",
			"email", email,
			"error", err.Error())
		return err
	}

	if resp.AccessToken == "" {
		c.logger.Info("Auth gateway: sign up pending confirmation", "email", email)
		return nil
	}

	sess, err := c.toSession(resp.tokenResponse)
	if err != nil {
		return &model.GatewayError{Op: "sign up", Message: "invalid session", Err: err}
	}

	c.setSession(ctx, sess, model.AuthEventSignedIn)

	c.logger.Info("Auth gateway: signed up and signed in", "user_id", sess.User.ID)

	return nil
}

// SignOut revokes the session remotely and always drops it locally.
// A session the backend no longer knows is not an error.
func (c *Client) SignOut(ctx context.Context) error {
	sess, err := c.current(ctx)
	if err != nil {
		c.logger.Warn("Auth gateway: failed to load session before sign out", "error", err.Error())
	}

	var remoteErr error
	if sess != nil {
		remoteErr = c.logout(ctx, sess.AccessToken)
	}

	c.clearSession(ctx)

	if remoteErr != nil {
		c.logger.Error("Auth gateway: remote sign out failed", "error", remoteErr.Error())
		return remoteErr
	}

	c.logger.Info("Auth gateway: signed out")

	return nil
}

func (c *Client) logout(ctx context.Context, accessToken string) error {
	req, err := transport.NewJSONRequest(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout?scope=global", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	err = transport.Do(c.http, req, "sign out", nil)

	var gwErr *model.GatewayError
	if errors.As(err, &gwErr) {
		switch gwErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return nil
		}
	}

	return err
}

// AccessToken returns the bearer for data requests, or "" when anonymous.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	sess, err := c.GetSession(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.AccessToken, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*model.Session, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have rotated the token while we waited.
	if cur, err := c.current(ctx); err == nil && cur != nil &&
		cur.RefreshToken != refreshToken && !cur.ExpiresWithin(c.now(), c.margin) {
		return cur, nil
	}

	req, err := transport.NewJSONRequest(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/token?grant_type=refresh_token", refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	if err := transport.Do(c.http, req, "refresh session", &resp); err != nil {
		var gwErr *model.GatewayError
		if errors.As(err, &gwErr) && gwErr.Status >= 400 && gwErr.Status < 500 {
			c.logger.Info("Auth gateway: refresh token rejected, signing out", "error", err.Error())
			c.clearSession(ctx)
		} else {
			c.logger.Error("Auth gateway: failed to refresh session", "error", err.Error())
		}
		return nil, err
	}

	sess, err := c.toSession(resp)
	if err != nil {
		return nil, &model.GatewayError{Op: "refresh session", Message: "invalid session", Err: err}
	}

	c.setSession(ctx, sess, model.AuthEventTokenRefreshed)

	c.logger.Debug("Auth gateway: session refreshed",
		"user_id", sess.User.ID,
		"expires_at", sess.ExpiresAt)

	out := sess
	return &out, nil
}

func (c *Client) toSession(resp tokenResponse) (model.Session, error) {
	if resp.AccessToken == "" {
		return model.Session{}, fmt.Errorf("response has no access token")
	}

	identity, tokenExp, decodeErr := c.decoder.Decode(resp.AccessToken)

	if resp.User != nil && resp.User.ID != "" {
		id, err := uuid.Parse(resp.User.ID)
		if err != nil {
			return model.Session{}, fmt.Errorf("invalid user id %q: %w", resp.User.ID, err)
		}
		identity = model.Identity{ID: id, Email: resp.User.Email}
	} else if decodeErr != nil {
		return model.Session{}, decodeErr
	}

	var expiresAt time.Time
	switch {
	case resp.ExpiresAt > 0:
		expiresAt = time.Unix(resp.ExpiresAt, 0)
	case resp.ExpiresIn > 0:
		expiresAt = c.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	default:
		expiresAt = tokenExp
	}

	return model.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresAt:    expiresAt,
		User:         identity,
	}, nil
}

func (c *Client) current(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		stored, err := c.storage.Load(ctx)
		switch {
		case errors.Is(err, model.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to load persisted session: %w", err)
		default:
			c.session = &stored
		}
		c.loaded = true
	}

	if c.session == nil {
		return nil, nil
	}
	out := *c.session
	return &out, nil
}

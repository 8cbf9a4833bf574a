package model

import "context"

// AuthEvent names the kind of session change reported by the auth gateway.
type AuthEvent string

const (
	// AuthEventSignedIn is emitted after a password sign-in or an auto-confirmed sign-up.
	AuthEventSignedIn AuthEvent = "SIGNED_IN"
	// AuthEventSignedOut is emitted when the session is invalidated or could not be refreshed.
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"
	// AuthEventTokenRefreshed is emitted after the access token was rotated.
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// AuthChangeHandler receives every future session change. A nil session means signed out.
type AuthChangeHandler func(event AuthEvent, session *Session)

// Subscription is a handle to a registered AuthChangeHandler.
type Subscription interface {
	Unsubscribe()
}

// AuthGateway is the remote authentication backend.
type AuthGateway interface {
	GetSession(ctx context.Context) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	OnAuthStateChange(handler AuthChangeHandler) Subscription
}

// TokenSource supplies the bearer token attached to data requests.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// IdentitySource exposes the currently authenticated identity, if any.
type IdentitySource interface {
	CurrentUser() (Identity, bool)
}

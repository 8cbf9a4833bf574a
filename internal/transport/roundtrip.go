package transport

import (
	"net/http"
	"time"

	"github.com/dtroode/scheduleapp/internal/logger"
)

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Logging logs method, path, duration and status of every outgoing request.
type Logging struct {
	next   http.RoundTripper
	logger *logger.Logger
}

// NewLogging creates a new Logging round-tripper.
func NewLogging(next http.RoundTripper, logger *logger.Logger) *Logging {
	return &Logging{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (l *Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	l.logger.Debug("HTTP request started",
		"method", req.Method,
		"path", req.URL.Path)

	resp, err := l.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error())
		return nil, err
	}

	l.logger.Debug("HTTP request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"duration_ms", duration.Milliseconds(),
		"status", resp.StatusCode)

	return resp, nil
}

// APIKey attaches the project key every backend endpoint expects, and the
// anonymous bearer when the caller did not set a user token.
type APIKey struct {
	next    http.RoundTripper
	anonKey string
}

// NewAPIKey creates a new APIKey round-tripper.
func NewAPIKey(next http.RoundTripper, anonKey string) *APIKey {
	return &APIKey{next: next, anonKey: anonKey}
}

// RoundTrip implements http.RoundTripper.
func (a *APIKey) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("apikey", a.anonKey)
	if r.Header.Get("Authorization") == "" {
		r.Header.Set("Authorization", "Bearer "+a.anonKey)
	}
	r.Header.Set("User-Agent", "scheduleapp/1.0")

	return a.next.RoundTrip(r)
}

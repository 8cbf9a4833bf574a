package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/scheduleapp/internal/logger"
)

// Options configures the backend HTTP client.
type Options struct {
	AnonKey    string
	Timeout    time.Duration
	CACertFile string
}

// NewHTTPClient creates the HTTP client shared by the auth and data gateways.
func NewHTTPClient(opts Options, logger *logger.Logger) (*http.Client, error) {
	tlsConfig, err := TLSConfig(opts.CACertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to configure TLS: %w", err)
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	if tlsConfig != nil {
		base.TLSClientConfig = tlsConfig
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: NewAPIKey(NewLogging(base, logger), opts.AnonKey),
	}, nil
}

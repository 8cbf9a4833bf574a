// Package rest implements the feature stores over the backend's row and
// procedure endpoints (/rest/v1).
package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/transport"
)

var (
	_ model.OrgStore      = (*Client)(nil)
	_ model.InviteStore   = (*Client)(nil)
	_ model.WorkSiteStore = (*Client)(nil)
	_ model.ProfileStore  = (*Client)(nil)
)

// Client is a row/RPC client authenticated as the current user.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  model.TokenSource
	logger  *logger.Logger
}

// NewClient creates a new data gateway client.
func NewClient(httpClient *http.Client, baseURL string, tokens model.TokenSource, logger *logger.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/") + "/rest/v1",
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := transport.NewJSONRequest(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	tok, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	return req, nil
}

// selectRows runs a GET on a table.
func (c *Client) selectRows(ctx context.Context, op, table string, query url.Values, target any) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/"+table, query, nil)
	if err != nil {
		return err
	}

	if err := transport.Do(c.http, req, op, target); err != nil {
		c.logger.Error("Data gateway: select failed", "table", table, "error", err.Error())
		return err
	}
	return nil
}

// rpc calls a server-side procedure with named arguments.
func (c *Client) rpc(ctx context.Context, op, fn string, args any, target any) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/rpc/"+fn, nil, args)
	if err != nil {
		return err
	}

	if err := transport.Do(c.http, req, op, target); err != nil {
		c.logger.Error("Data gateway: procedure failed", "fn", fn, "error", err.Error())
		return err
	}
	return nil
}

// write inserts or upserts rows without reading them back.
func (c *Client) write(ctx context.Context, op, table string, query url.Values, prefer string, body any) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/"+table, query, body)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", prefer)
	return transport.Do(c.http, req, op, nil)
}

func eq(v string) string {
	return "eq." + v
}

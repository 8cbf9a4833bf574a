package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dtroode/scheduleapp/internal/model"
)

// errorBody covers the error shapes of the auth and row endpoints.
type errorBody struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) code() string {
	switch {
	case b.ErrorCode != "":
		return b.ErrorCode
	case b.Code != nil:
		return fmt.Sprint(b.Code)
	default:
		return b.Error
	}
}

func (b errorBody) message() string {
	for _, m := range []string{b.Message, b.Msg, b.ErrorDescription, b.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}

// NewJSONRequest creates a request with an optional JSON body.
func NewJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do sends req and decodes the response into target.
// Transport failures and non-2xx responses become *model.GatewayError.
func Do(client *http.Client, req *http.Request, op string, target any) error {
	resp, err := client.Do(req)
	if err != nil {
		return &model.GatewayError{Op: op, Message: "request failed", Err: err}
	}

	return ParseResponse(resp, op, target)
}

// ParseResponse parses a JSON response body into the target.
func ParseResponse(resp *http.Response, op string, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		gwErr := &model.GatewayError{Op: op, Status: resp.StatusCode}

		var body errorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			gwErr.Code = body.code()
			gwErr.Message = body.message()
		}
		if gwErr.Message == "" {
			gwErr.Message = http.StatusText(resp.StatusCode)
		}
		return gwErr
	}

	if target == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		if err == io.EOF {
			return nil
		}
		return &model.GatewayError{Op: op, Status: resp.StatusCode, Message: "parse response", Err: err}
	}

	return nil
}

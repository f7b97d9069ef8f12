package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// sessionCookie is the cookie name the backend's auth layer expects. The
// gateway holds the token under its own cookie and relays it under this name
// on every authenticated call; nothing else from the inbound request is
// forwarded.
const sessionCookie = "__Secure-better-auth.session_token"

// Client is the typed API client for the remote FoodHub backend. One method
// per backend operation; all of them go through do.
type Client struct {
	BaseURL string
	// Origin is sent on every request; the backend's CORS layer rejects
	// calls without a recognized origin.
	Origin string
	HTTP   *http.Client
}

func New(baseURL, origin string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Origin:  origin,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// envelope is the backend's standard response shape. Success is a pointer:
// some endpoints omit the flag entirely and signal via HTTP status alone.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues one request and maps the outcome: transport failures wrap
// ErrTransport, non-2xx or success=false become a RejectedError carrying the
// backend's message, and on success the envelope's data is decoded into out
// (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path, session string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrValidation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Origin != "" {
		req.Header.Set("Origin", c.Origin)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	var env envelope
	// The body is not guaranteed to be the standard envelope on errors.
	_ = json.Unmarshal(raw, &env)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &RejectedError{StatusCode: res.StatusCode, Msg: env.Message}
	}
	if env.Success != nil && !*env.Success {
		return &RejectedError{StatusCode: res.StatusCode, Msg: env.Message}
	}

	if out == nil {
		return nil
	}
	data := env.Data
	if data == nil {
		// Endpoint without an envelope: decode the body directly.
		data = raw
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return nil
}

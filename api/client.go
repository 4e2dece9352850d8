package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"zignexweb/metrics"
)

// Client talks to the content backend. Base is prefixed verbatim to every
// resource path, e.g. "http://127.0.0.1:8000/api" + "/stats".
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for base. A nil httpClient means
// http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: httpClient,
	}
}

// Get fetches path and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Submit posts payload as JSON to path and decodes the response body into
// out. A nil out discards the body.
func (c *Client) Submit(ctx context.Context, path string, payload any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return c.fail(http.MethodPost, path, &TransportError{Method: http.MethodPost, Path: path, Err: err})
	}
	return c.do(ctx, http.MethodPost, path, buf, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return c.fail(method, path, &TransportError{Method: method, Path: path, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return c.fail(method, path, &TransportError{Method: method, Path: path, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		io.Copy(io.Discard, resp.Body)
		return c.fail(method, path, &RequestError{Method: method, Path: path, Status: resp.StatusCode})
	}

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.fail(method, path, &TransportError{Method: method, Path: path, Err: err})
		}
		if err := decodeBody(raw, out); err != nil {
			return c.fail(method, path, &TransportError{Method: method, Path: path, Err: err})
		}
	}
	metrics.BackendRequests.WithLabelValues(method, path, "ok").Inc()
	return nil
}

// decodeBody parses the whole body as one JSON value. An empty body or a
// bare null is a missing resource; trailing data after the value is an error.
func decodeBody(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrResourceMissing
	}
	return json.Unmarshal(trimmed, out)
}

func (c *Client) fail(method, path string, err error) error {
	outcome := "transport_error"
	if StatusOf(err) != 0 {
		outcome = "request_error"
	}
	metrics.BackendRequests.WithLabelValues(method, path, outcome).Inc()
	return err
}

// Package api is the terminal client's HTTP binding to the WordBridge API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/common"
)

// ErrUnavailable means the server could not be reached at all.
var ErrUnavailable = errors.New("server unavailable")

// Response is a decoded response envelope.
type Response struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Messages renders Error as a list. A single string becomes one element.
func (r *Response) Messages() []string {
	return render(r.Error)
}

// Text renders Data for display. Strings are returned as is, other values
// as indented JSON. An absent value yields "".
func (r *Response) Text() string {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Data, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Data, "", "  "); err != nil {
		return string(r.Data)
	}
	return buf.String()
}

func render(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []string{s}
	}
	var l []string
	if err := json.Unmarshal(raw, &l); err == nil {
		return l
	}
	return []string{string(raw)}
}

// Client calls the WordBridge HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New returns a Client for baseURL; every request is bounded by timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type translation struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

func (c *Client) Signup(ctx context.Context, email, password string) (*Response, error) {
	return c.post(ctx, common.SignupPath, credentials{Email: email, Password: password})
}

func (c *Client) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.post(ctx, common.LoginPath, credentials{Email: email, Password: password})
}

func (c *Client) Translate(ctx context.Context, text, target string) (*Response, error) {
	return c.post(ctx, common.TranslatePath, translation{Text: text, Target: target})
}

// post sends body to path under the API prefix. Any HTTP status is a valid
// Response; only transport and decoding failures are errors.
func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+common.APIPrefix+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var r Response
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("unexpected response (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if r.Status == 0 {
		r.Status = resp.StatusCode
	}

	return &r, nil
}

// Package translate is the gateway to the external translation API. It sends
// {q, target} and reduces the loosely shaped reply to either a translated
// string, an upstream failure message, or a transport error.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/dmitrijs2005/wordbridge/internal/optional"
)

// defaultFailureMessage is used when the upstream flags an error without saying why.
const defaultFailureMessage = "translation failed"

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (optional.Value[string], error)
}

// UpstreamError is returned when the translation API answered with an error
// payload. It matches common.ErrorUpstream.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return common.ErrorUpstream }

// Client is an HTTP Translator.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// New returns a Client posting to endpoint. Every call is bounded by timeout.
// When apiKey is set it is sent as the "key" query parameter.
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type request struct {
	Q      string `json:"q"`
	Target string `json:"target"`
}

// Translate posts one request and interprets the reply. A reply without a
// translation is not an error: the returned value is simply empty.
func (c *Client) Translate(ctx context.Context, text, target string) (optional.Value[string], error) {
	none := optional.None[string]()

	endpoint, err := c.requestURL()
	if err != nil {
		return none, err
	}

	body, err := json.Marshal(request{Q: text, Target: target})
	if err != nil {
		return none, fmt.Errorf("encoding translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return none, fmt.Errorf("building translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return none, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return none, fmt.Errorf("reading translate response: %w", err)
	}

	return ParseResponse(resp.StatusCode, raw)
}

func (c *Client) requestURL() (string, error) {
	if c.apiKey == "" {
		return c.endpoint, nil
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid translate url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

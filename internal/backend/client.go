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

	"github.com/cenkalti/backoff/v4"
)

// SessionCookieName is the HTTP-only cookie set by the backend on login. The
// gateway never decodes it; it only forwards it upstream.
const SessionCookieName = "tb_session"

type ctxKey string

const cookieCtxKey ctxKey = "sessionCookie"

// WithSessionCookie binds the inbound request's session cookie value to the
// context so that every upstream call is credential-bearing.
func WithSessionCookie(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, cookieCtxKey, value)
}

func sessionCookieFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(cookieCtxKey).(string)
	return value, ok && value != ""
}

type Config struct {
	// BaseURL targets the backend host; when unset the client falls back to a
	// relative root, which only works behind a reverse proxy.
	BaseURL       string
	Timeout       time.Duration
	Retries       uint64
	RetryInterval time.Duration
}

// Client is the shared HTTP core of all resource clients. Requests carry the
// session cookie from the context and a JSON content type on bodies; GETs may
// be retried with a constant backoff when retries are configured.
type Client struct {
	baseURL       string
	http          *http.Client
	retries       uint64
	retryInterval time.Duration
}

func NewClient(conf Config) *Client {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	interval := conf.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}

	return &Client{
		baseURL:       strings.TrimSuffix(conf.BaseURL, "/"),
		http:          &http.Client{Timeout: timeout},
		retries:       conf.Retries,
		retryInterval: interval,
	}
}

// do performs one backend request and returns the raw status, body and
// response. The body is always text-read in full before any decoding, so that
// empty or non-JSON payloads degrade to synthesized messages instead of
// decode failures.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, []byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request body -> %w", err)
		}
	}

	target := c.baseURL + "/api" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	attempt := func() (*http.Response, []byte, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if cookie, ok := sessionCookieFromContext(ctx); ok {
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, err
		}

		return resp, raw, nil
	}

	// Retrying is an explicit configuration decision and applies to
	// idempotent reads only.
	if method == http.MethodGet && c.retries > 0 {
		var (
			resp *http.Response
			raw  []byte
		)
		policy := backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.retries),
			ctx,
		)
		err := backoff.Retry(func() error {
			var attemptErr error
			resp, raw, attemptErr = attempt()
			return attemptErr
		}, policy)
		return resp, raw, err
	}

	return attempt()
}

// checkStatus maps a non-2xx response onto the error taxonomy. The 401 and
// 403 cases take priority over any body content.
func checkStatus(resp *http.Response, raw []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthenticationRequired
	case http.StatusForbidden:
		return ErrForbidden
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return &RequestError{Status: resp.StatusCode, Message: envelope.Message}
	}

	return &RequestError{
		Status:  resp.StatusCode,
		Message: synthesizedMessage(http.StatusText(resp.StatusCode), resp.StatusCode),
	}
}

// decodeEnvelope finishes a request: status check, 204 short-circuit, then the
// success-flag envelope. out may be nil for mutations whose payload is
// irrelevant.
func decodeEnvelope(resp *http.Response, raw []byte, out any) error {
	if err := checkStatus(resp, raw); err != nil {
		return err
	}

	// A 204 on delete is success with no body; never attempt to parse it.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var flag struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &flag); err != nil {
		return &MalformedResponseError{Err: err}
	}
	if !flag.Success {
		message := flag.Message
		if message == "" {
			message = synthesizedMessage(http.StatusText(resp.StatusCode), resp.StatusCode)
		}
		return &RequestError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{Err: err}
	}

	return nil
}

// Package api sends every CRM API call. It waits for the backend origin to be
// resolved, applies the origin's timeout, and turns responses into either a
// domain.Response or a *domain.RequestError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxResponseBytes = 32 << 20

	headerAccept        = "Accept"
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
)

type Client struct {
	resolver   ports.OriginResolver
	tokens     ports.TokenSource
	httpClient *http.Client
	logger     zerolog.Logger
	requestID  func() string
}

var _ ports.APIClient = (*Client)(nil)

// NewClient builds a client bound to resolver. tokens may be nil, in which
// case no Authorization header is attached.
func NewClient(resolver ports.OriginResolver, tokens ports.TokenSource, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		resolver:   resolver,
		tokens:     tokens,
		httpClient: httpClient,
		logger:     logger,
		requestID:  func() string { return uuid.NewString() },
	}
}

func (c *Client) Call(ctx context.Context, endpoint string, req domain.Request) (domain.Response, error) {
	profile, err := c.resolver.Resolve(ctx)
	if err != nil {
		return domain.Response{}, transportError(fmt.Errorf("resolve api environment: %w", err))
	}

	target := joinURL(profile.BaseURL, endpoint)
	method := req.MethodOrDefault()

	body, formContentType, err := encodeBody(req.Body)
	if err != nil {
		return domain.Response{}, err
	}

	headers, err := c.buildHeaders(ctx, req.Headers, formContentType)
	if err != nil {
		return domain.Response{}, err
	}

	callCtx, cancel := withTimeout(ctx, profile.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, string(method), target, body)
	if err != nil {
		return domain.Response{}, transportError(fmt.Errorf("create request: %w", err))
	}
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	requestID := headers[headerRequestID]
	c.logger.Debug().
		Str("method", string(method)).
		Str("url", target).
		Str("request_id", requestID).
		Str("body", bodyKind(req.Body)).
		Msg("api call")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().Err(err).Str("request_id", requestID).Msg("api call failed")
		return domain.Response{}, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	result, err := readResponse(resp)
	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Bool("json", result.IsJSON()).
		Msg("api response")

	return result, err
}

func (c *Client) buildHeaders(ctx context.Context, custom map[string]string, formContentType string) (map[string]string, error) {
	headers := map[string]string{
		headerAccept:      contentTypeJSON,
		headerContentType: contentTypeJSON,
		headerRequestID:   c.requestID(),
	}

	for key, value := range custom {
		canonical := http.CanonicalHeaderKey(key)
		if formContentType != "" && canonical == headerContentType {
			continue
		}
		headers[canonical] = value
	}

	if formContentType != "" {
		headers[headerContentType] = formContentType
	}

	if _, ok := headers[headerAuthorization]; !ok && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("load session token: %w", err)
		}
		if token != "" {
			headers[headerAuthorization] = "Bearer " + token
		}
	}

	return headers, nil
}

func readResponse(resp *http.Response) (domain.Response, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Response{StatusCode: resp.StatusCode}, transportError(fmt.Errorf("read response body: %w", err))
	}

	contentType := resp.Header.Get(headerContentType)
	result := domain.Response{StatusCode: resp.StatusCode, ContentType: contentType}
	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices

	if !strings.Contains(strings.ToLower(contentType), contentTypeJSON) {
		if !ok {
			return result, statusError(resp, "", nil)
		}
		result.Text = string(data)
		return result, nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		trimmed = []byte("null")
	}
	if !json.Valid(trimmed) {
		parseErr := errors.New("invalid json in response body")
		if !ok {
			return result, statusError(resp, "", parseErr)
		}
		return result, &domain.RequestError{
			Status:     resp.StatusCode,
			StatusText: statusText(resp),
			Message:    parseErr.Error(),
			Err:        parseErr,
		}
	}

	if !ok {
		return result, statusError(resp, serverMessage(trimmed), nil)
	}

	result.JSON = json.RawMessage(trimmed)
	return result, nil
}

// serverMessage prefers the "error" field, then "message".
func serverMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, field := range []string{"error", "message"} {
		raw, ok := payload[field]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil && text != "" {
			return text
		}
	}

	return ""
}

func statusError(resp *http.Response, message string, cause error) error {
	text := statusText(resp)
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, text)
	}

	return &domain.RequestError{
		Status:     resp.StatusCode,
		StatusText: text,
		Message:    message,
		Err:        cause,
	}
}

func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if text := strings.TrimPrefix(resp.Status, prefix); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func transportError(err error) error {
	return &domain.RequestError{Message: err.Error(), Err: err}
}

func joinURL(baseURL, endpoint string) string {
	if endpoint == "" {
		return strings.TrimRight(baseURL, "/")
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

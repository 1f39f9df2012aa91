// Package probe checks whether a backend origin is reachable before it is
// committed to.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/estate-admin-cli/internal/ports"
)

const DefaultTimeout = 3 * time.Second

// HTTPProber sends GET <baseURL>/ and treats any 2xx answer as reachable.
type HTTPProber struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

var _ ports.Prober = HTTPProber{}

func (p HTTPProber) Probe(ctx context.Context, baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse probe url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("probe url %q must use http or https", baseURL)
	}
	probeURL := parsed.ResolveReference(&url.URL{Path: "/"})

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, probeURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", probeURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("probe %s: status %d", probeURL, resp.StatusCode)
	}

	return nil
}

func (p HTTPProber) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}

func (p HTTPProber) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultTimeout
}

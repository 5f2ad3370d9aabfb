package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/poopdl/poopdl/internal/config"
	"github.com/poopdl/poopdl/internal/utils"
)

// maxBodySize caps how much of a target page is read into memory.
const maxBodySize = 10 * 1024 * 1024

// Session is the HTTP identity for one resolution call: a fresh cookie jar,
// a fixed browser User-Agent and a bounded per-request timeout. Sessions are
// never shared across calls.
type Session struct {
	client    *http.Client
	userAgent string
	retries   int
}

func NewSession(cfg *config.ScraperConfig) *Session {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New with nil options cannot fail; fall back to no jar.
		jar = nil
	}

	return &Session{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
			Jar:     jar,
		},
		userAgent: cfg.UserAgent,
		retries:   cfg.MaxRetries,
	}
}

// Resolve follows the full redirect chain for rawURL without transferring a
// body and returns the final location. Network errors propagate to the
// caller.
func (s *Session) Resolve(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve redirect: %w", err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}

// Get performs a GET with the session identity plus any extra headers.
func (s *Session) Get(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return s.do(req)
}

// FetchPage GETs rawURL and returns normalized markup. Network failures and
// non-200 statuses degrade to ok=false; they are logged, never raised.
func (s *Session) FetchPage(ctx context.Context, rawURL string) (string, bool) {
	resp, err := s.Get(ctx, rawURL, nil)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch page", err, utils.Fields{"url": rawURL})
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogWarn(ctx, "Non-200 status from target site", utils.Fields{
			"url":    rawURL,
			"status": resp.StatusCode,
		})
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		utils.LogError(ctx, "Failed to read page body", err, utils.Fields{"url": rawURL})
		return "", false
	}

	return NormalizeMarkup(string(body)), true
}

// do sends the request, retrying connection-level failures a bounded number
// of times. Non-success statuses are returned as-is and never retried.
func (s *Session) do(req *http.Request) (*http.Response, error) {
	var resp *http.Response

	operation := func() error {
		var err error
		resp, err = s.client.Do(req)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), uint64(s.retries)),
		req.Context(),
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return resp, nil
}

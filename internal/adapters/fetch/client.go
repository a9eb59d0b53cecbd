// Package fetch downloads release artifacts and turns them into checksum
// digests. HTTP fetches retry with exponential backoff; results are cached on
// disk keyed by URL so re-runs against the same release skip the network.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/zerr"

	"go.aurforge.dev/pkgsum/internal/core/ports"
)

const (
	maxAttempts    = 3
	initialBackoff = time.Second
)

// HTTPFetcher implements ports.Fetcher over net/http with the documented
// retry envelope: up to 3 attempts, backoff doubling from 1s.
type HTTPFetcher struct {
	Client       *http.Client
	Logger       ports.Logger
	ShowProgress bool

	// Backoff is the first retry delay. Tests shrink it.
	Backoff time.Duration
}

// NewHTTPFetcher creates a fetcher with the default client and backoff.
func NewHTTPFetcher(logger ports.Logger, showProgress bool) *HTTPFetcher {
	return &HTTPFetcher{
		Client:       &http.Client{},
		Logger:       logger,
		ShowProgress: showProgress,
		Backoff:      initialBackoff,
	}
}

// Fetch downloads the URL, retrying transient failures. The returned bytes
// are the full body of the last successful attempt.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	delay := f.Backoff
	if delay <= 0 {
		delay = initialBackoff
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			f.Logger.Warn(fmt.Sprintf("retrying %s in %s (attempt %d/%d)", rawURL, delay, attempt, maxAttempts))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		data, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := zerr.With(zerr.New("unexpected HTTP status"), "status", resp.StatusCode)
		return nil, zerr.With(e, "url", rawURL)
	}

	var buf bytes.Buffer
	body := io.Reader(resp.Body)
	if f.ShowProgress && resp.ContentLength > 0 {
		bar := progressbar.DefaultBytes(resp.ContentLength, describe(rawURL))
		body = io.TeeReader(body, bar)
	}
	if _, err := io.Copy(&buf, body); err != nil {
		return nil, zerr.Wrap(err, "failed to read response body")
	}
	return buf.Bytes(), nil
}

// describe shortens a URL to its final path element for progress output.
func describe(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return rawURL
	}
	return path.Base(u.Path)
}

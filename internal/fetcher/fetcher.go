// Package fetcher retrieves job posting pages, escalating from a plain HTTP
// GET to a headless browser render when the cheap path under-delivers.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/yangzhijiany/update-resume-skills/internal/extractor"
	errs "github.com/yangzhijiany/update-resume-skills/pkg/errors"
)

const (
	directTimeout = 15 * time.Second
	userAgent     = "Mozilla/5.0"

	// minDirectLength gates the direct-fetch result: anything at or below this
	// looks like a JS shell rather than a real description, so we escalate.
	minDirectLength = 200
)

// RenderFunc fetches fully rendered HTML for a URL. Swapped for a fake in
// tests so no Chrome process is needed.
type RenderFunc func(ctx context.Context, url string) (string, error)

type Fetcher struct {
	client *http.Client
	render RenderFunc
}

func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: directTimeout},
		render: renderWithBrowser,
	}
}

// NewWithRender returns a Fetcher using a custom rendered-fetch strategy.
func NewWithRender(client *http.Client, render RenderFunc) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: directTimeout}
	}
	return &Fetcher{client: client, render: render}
}

// FetchDescription returns the job description text for url.
//
// It first tries a direct GET; if that fails or its extracted text is not
// longer than minDirectLength characters, it escalates to a rendered fetch.
// The two strategies never run concurrently. When both come up empty the
// returned error is an *errs.ExtractionError carrying the URL.
func (f *Fetcher) FetchDescription(ctx context.Context, url string) (string, error) {
	logger := slog.With("component", "fetcher")

	html, err := f.get(ctx, url)
	if err != nil {
		logger.Warn("direct fetch failed, falling back to rendered fetch", "url", url, "error", err)
	} else {
		text := extractor.Extract(html, url)
		if len(text) > minDirectLength {
			logger.Info("extracted via direct fetch", "url", url, "length", len(text))
			return text, nil
		}
		logger.Info("direct fetch under-delivered, falling back to rendered fetch",
			"url", url, "length", len(text))
	}

	html, err = f.render(ctx, url)
	if err != nil {
		return "", &errs.ExtractionError{URL: url, Err: err}
	}

	text := extractor.Extract(html, url)
	if text == "" {
		return "", &errs.ExtractionError{URL: url}
	}
	logger.Info("extracted via rendered fetch", "url", url, "length", len(text))
	return text, nil
}

// get performs the direct fetch. The response body is used whatever the
// status code: some ATS pages serve the description alongside a 4xx.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return string(body), nil
}

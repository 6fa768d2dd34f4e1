package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	navigateTimeout = 30 * time.Second

	// settleDelay gives client-side ATS frameworks time to render the
	// description after navigation completes.
	settleDelay = 5 * time.Second
)

// renderWithBrowser loads url in an isolated headless Chrome instance, waits
// for client-side rendering to settle and captures the resulting HTML. All
// browser resources are released before returning, on every path.
func renderWithBrowser(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	runCtx, runCancel := context.WithTimeout(browserCtx, navigateTimeout+settleDelay)
	defer runCancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("rendered fetch of %s: %w", url, err)
	}

	return html, nil
}

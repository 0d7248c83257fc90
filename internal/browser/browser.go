// Package browser opens URLs in the desktop's default browser.
package browser

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"
)

// Opener opens a URL. Page code depends on this type so tests can replace
// the system browser.
type Opener func(ctx context.Context, rawURL string) error

// launch starts the platform launcher (xdg-open, open, rundll32).
var launch = browser.OpenURL

func init() {
	// The launcher's output would be drawn over the alt screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open starts the system browser on rawURL. Only http(s) URLs are accepted.
func Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("open browser: refusing %q scheme", u.Scheme)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	if err := launch(u.String()); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

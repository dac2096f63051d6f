// Package browser drives a single headless Chrome session: navigate to a
// page, wait for the player element, read the session's cookies, release
// the browser. One session per call, never reused.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/ytget/ytauth/cookies"
	"github.com/ytget/ytauth/errs"
	"github.com/ytget/ytauth/internal/logger"
)

const (
	// DefaultWaitTimeout bounds the whole navigate-wait-read run.
	DefaultWaitTimeout = 20 * time.Second
	// DefaultWaitSelector is the element whose presence signals that the
	// video player has loaded.
	DefaultWaitSelector = "#movie_player"
)

// Config holds session parameters. Zero values use defaults; the zero
// Config is a headless session waiting for the video player.
type Config struct {
	// Headful disables headless mode, for local debugging.
	Headful bool
	// ExecPath points at a specific Chrome/Chromium binary. Empty lets
	// chromedp discover one on the host.
	ExecPath string
	// UserAgent overrides the browser's User-Agent.
	UserAgent string
	// ProxyURL routes the browser's traffic through a proxy.
	ProxyURL string
	// WaitSelector is the CSS selector whose presence ends the wait.
	WaitSelector string
	// WaitTimeout bounds the wait; the session is torn down when it expires.
	WaitTimeout time.Duration
}

// FetchCookies launches a browser, navigates to pageURL, waits for the
// readiness selector, and returns the cookies visible to the session. The
// browser is released before the function returns on every path, success
// or failure.
func FetchCookies(ctx context.Context, cfg Config, pageURL string) ([]cookies.Cookie, error) {
	log := logger.WithComponent(logger.ComponentBrowser)

	timeout := cfg.WaitTimeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	selector := cfg.WaitSelector
	if selector == "" {
		selector = DefaultWaitSelector
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(cfg)...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, timeout)
	defer cancelTimeout()

	log.Debug("starting session", map[string]interface{}{
		"url":      pageURL,
		"selector": selector,
		"timeout":  timeout.String(),
	})

	var raw []*network.Cookie
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(selector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			raw, err = network.GetCookies().Do(ctx)
			if err != nil {
				return fmt.Errorf("get cookies: %w", err)
			}
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %q did not appear within %s", errs.ErrPlayerNotFound, selector, timeout)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", errs.ErrBrowserStart, err)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrNavigation, err)
	}

	log.Debug("session finished", map[string]interface{}{"cookies": len(raw)})

	return convert(raw), nil
}

// allocatorOptions builds the Chrome launch flags. no-sandbox and
// disable-dev-shm-usage are required in containerized and CI environments.
func allocatorOptions(cfg Config) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !cfg.Headful),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	if cfg.ProxyURL != "" {
		opts = append(opts, chromedp.ProxyServer(cfg.ProxyURL))
	}
	return opts
}

// convert maps CDP cookies onto the tool's cookie type, preserving order.
func convert(raw []*network.Cookie) []cookies.Cookie {
	out := make([]cookies.Cookie, 0, len(raw))
	for _, c := range raw {
		out = append(out, cookies.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  expiryUnix(c.Expires),
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
		})
	}
	return out
}

// expiryUnix converts CDP's fractional seconds to unix seconds. CDP reports
// -1 for session cookies.
func expiryUnix(v float64) int64 {
	if v <= 0 {
		return 0
	}
	return int64(v)
}

// Package ytauth extracts YouTube session cookies with a headless browser
// so they can be passed to a downloader tool.
//
// Features:
//   - Headless Chrome session bounded by a wait deadline
//   - Cookie header string and Netscape cookies.txt output
//   - Optional check that the session is signed in
package ytauth

import (
	"context"
	"time"

	"github.com/ytget/ytauth/browser"
	"github.com/ytget/ytauth/cookies"
)

// ExtractOptions contains configuration for a single extraction run.
//
// Use chainable setters on Extractor to populate these options.
type ExtractOptions struct {
	WaitTimeout  time.Duration
	WaitSelector string
	BrowserPath  string
	UserAgent    string
	ProxyURL     string
	Headful      bool
}

// Extractor provides a high-level API for driving one browser session and
// reading its cookies.
type Extractor struct {
	options ExtractOptions
}

// New creates a new Extractor instance with default options.
func New() *Extractor {
	return &Extractor{}
}

// WithTimeout bounds the wait for the player element. Values <= 0 keep the
// 20 second default.
func (e *Extractor) WithTimeout(d time.Duration) *Extractor {
	e.options.WaitTimeout = d
	return e
}

// WithWaitSelector sets the CSS selector whose presence signals the page is
// ready. Defaults to the video player element.
func (e *Extractor) WithWaitSelector(selector string) *Extractor {
	e.options.WaitSelector = selector
	return e
}

// WithBrowserPath points the session at a specific Chrome/Chromium binary.
func (e *Extractor) WithBrowserPath(path string) *Extractor {
	e.options.BrowserPath = path
	return e
}

// WithUserAgent overrides the browser's User-Agent.
func (e *Extractor) WithUserAgent(ua string) *Extractor {
	e.options.UserAgent = ua
	return e
}

// WithProxy routes the browser's traffic through a proxy URL.
func (e *Extractor) WithProxy(proxyURL string) *Extractor {
	e.options.ProxyURL = proxyURL
	return e
}

// WithHeadful disables headless mode, for local debugging.
func (e *Extractor) WithHeadful(headful bool) *Extractor {
	e.options.Headful = headful
	return e
}

// Extract drives one browser session against pageURL and returns the
// cookies the session ends up with. The session is always released before
// Extract returns.
func (e *Extractor) Extract(ctx context.Context, pageURL string) ([]cookies.Cookie, error) {
	return browser.FetchCookies(ctx, browser.Config{
		Headful:      e.options.Headful,
		ExecPath:     e.options.BrowserPath,
		UserAgent:    e.options.UserAgent,
		ProxyURL:     e.options.ProxyURL,
		WaitSelector: e.options.WaitSelector,
		WaitTimeout:  e.options.WaitTimeout,
	}, pageURL)
}

// ExtractArg runs Extract and formats the result as a --cookies argument
// ready for a downloader command line.
func (e *Extractor) ExtractArg(ctx context.Context, pageURL string) (string, error) {
	cs, err := e.Extract(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return cookies.Arg(cs), nil
}

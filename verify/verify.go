// Package verify checks whether an extracted cookie set belongs to a
// signed-in YouTube session.
package verify

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/ytget/ytauth/client"
	"github.com/ytget/ytauth/cookies"
	"github.com/ytget/ytauth/internal/logger"
)

// authCookieNames are set only for signed-in sessions. The auth cookies may
// live on google.com rather than youtube.com.
var authCookieNames = map[string]bool{
	"SAPISID":        true,
	"SID":            true,
	"__Secure-1PSID": true,
	"__Secure-3PSID": true,
}

// loggedInMarker appears in the page's ytcfg when the session is signed in.
const loggedInMarker = `"LOGGED_IN":true`

// Result describes the outcome of a session check.
type Result struct {
	StatusCode int
	LoggedIn   bool
	// AuthCookie is the name of the first auth cookie seen, empty when the
	// session was classified from the page body alone.
	AuthCookie string
}

// Check fetches pageURL with the extracted cookies attached and reports
// whether the session looks authenticated.
func Check(ctx context.Context, c *client.Client, pageURL string, cs []cookies.Cookie) (*Result, error) {
	log := logger.WithComponent(logger.ComponentVerify)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cookie", cookies.HeaderString(cs))
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}

	res := &Result{StatusCode: resp.StatusCode}
	for _, cookie := range cs {
		if authCookieNames[cookie.Name] {
			res.LoggedIn = true
			res.AuthCookie = cookie.Name
			break
		}
	}
	if !res.LoggedIn && strings.Contains(string(body), loggedInMarker) {
		res.LoggedIn = true
	}

	log.Debug("session checked", map[string]interface{}{
		"status":    res.StatusCode,
		"logged_in": res.LoggedIn,
	})

	return res, nil
}

// decodeBody reads the response body, undoing whichever Content-Encoding
// the server picked.
func decodeBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer func() { _ = gzReader.Close() }()
		reader = gzReader
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "deflate":
		flReader := flate.NewReader(resp.Body)
		defer func() { _ = flReader.Close() }()
		reader = flReader
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

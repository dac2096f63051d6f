package cookies

import (
	"fmt"
	"os"
	"strings"
)

// netscapeHeader must be the first line of a cookies.txt file; yt-dlp
// rejects files without it.
const netscapeHeader = "# Netscape HTTP Cookie File"

// Netscape serializes cookies in the Netscape cookies.txt format: seven
// tab-separated fields per line. HTTP-only cookies get the #HttpOnly_
// domain prefix, session cookies an expiry of 0.
func Netscape(cs []Cookie) string {
	var b strings.Builder
	b.WriteString(netscapeHeader)
	b.WriteByte('\n')
	for _, c := range cs {
		domain := c.Domain
		if c.HTTPOnly {
			domain = "#HttpOnly_" + domain
		}
		includeSubdomains := "FALSE"
		if strings.HasPrefix(c.Domain, ".") {
			includeSubdomains = "TRUE"
		}
		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		expires := c.Expires
		if expires < 0 {
			expires = 0
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, includeSubdomains, path, secure, expires, c.Name, c.Value)
	}
	return b.String()
}

// WriteNetscapeFile writes cookies to path in cookies.txt format. The file
// is created with 0600 since it holds session credentials.
func WriteNetscapeFile(path string, cs []Cookie) error {
	if err := os.WriteFile(path, []byte(Netscape(cs)), 0o600); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}
	return nil
}

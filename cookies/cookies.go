package cookies

import (
	"fmt"
	"strings"
)

// Cookie is a single cookie captured from a browser session.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  int64 // unix seconds; 0 for session cookies
	Secure   bool
	HTTPOnly bool
}

// HeaderString joins cookies into a single Cookie header value
// ("name=value; name2=value2"), preserving the order they were reported in.
func HeaderString(cs []Cookie) string {
	pairs := make([]string, 0, len(cs))
	for _, c := range cs {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}

// Arg formats cookies as a --cookies argument ready to splice into a
// downloader command line.
func Arg(cs []Cookie) string {
	return fmt.Sprintf("--cookies '%s'", HeaderString(cs))
}

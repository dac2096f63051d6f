package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ytget/ytauth"
	"github.com/ytget/ytauth/browser"
	"github.com/ytget/ytauth/client"
	"github.com/ytget/ytauth/cookies"
	"github.com/ytget/ytauth/internal/logger"
	"github.com/ytget/ytauth/verify"
)

func main() {
	var (
		flagTimeout  time.Duration
		flagWait     string
		flagBrowser  string
		flagUA       string
		flagProxy    string
		flagHeadful  bool
		flagNetscape string
		flagVerify   bool
		flagVerbose  bool
	)

	flag.DurationVar(&flagTimeout, "timeout", browser.DefaultWaitTimeout, "How long to wait for the player element (e.g., 20s, 1m)")
	flag.StringVar(&flagWait, "wait", browser.DefaultWaitSelector, "CSS selector that signals the page is ready")
	flag.StringVar(&flagBrowser, "browser", "", "Path to a Chrome/Chromium binary. Empty auto-detects")
	flag.StringVar(&flagUA, "ua", "", "Override the browser User-Agent")
	flag.StringVar(&flagProxy, "proxy", "", "Proxy URL for the browser session")
	flag.BoolVar(&flagHeadful, "headful", false, "Run the browser with a visible window")
	flag.StringVar(&flagNetscape, "netscape", "", "Also write cookies to this path in Netscape cookies.txt format")
	flag.BoolVar(&flagVerify, "verify", false, "Check whether the extracted session is signed in (reported on stderr)")
	flag.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")

	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		// The bad-argument-count usage goes to stdout, matching the tool
		// callers already wrap.
		printUsage(os.Stdout)
		os.Exit(1)
	}
	pageURL := args[0]

	log := logger.New(logger.EnvironmentConfig())
	if flagVerbose {
		log.SetLevel(logger.DEBUG)
		log.EnableAllComponents()
	}
	logger.SetGlobalLogger(log)

	e := ytauth.New().
		WithTimeout(flagTimeout).
		WithWaitSelector(flagWait).
		WithBrowserPath(flagBrowser).
		WithUserAgent(flagUA).
		WithProxy(flagProxy).
		WithHeadful(flagHeadful)

	ctx := context.Background()
	cs, err := e.Extract(ctx, pageURL)
	if err != nil {
		fatal(err)
	}
	logger.WithComponent(logger.ComponentApp).Debug("extraction finished", map[string]interface{}{
		"cookies": len(cs),
	})

	if flagNetscape != "" {
		if err := cookies.WriteNetscapeFile(flagNetscape, cs); err != nil {
			fatal(err)
		}
	}

	if flagVerify {
		res, err := verify.Check(ctx, client.New(), pageURL, cs)
		if err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Session check: HTTP %d, signed in: %v\n", res.StatusCode, res.LoggedIn)
	}

	fmt.Println(cookies.Arg(cs))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <youtube_url>\n", os.Args[0])
	fmt.Fprintln(w, "\nFlags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

package errs

import (
	"errors"
)

var (
	// ErrPlayerNotFound indicates the player element did not appear before
	// the wait deadline elapsed.
	ErrPlayerNotFound = errors.New("player element not found")
	// ErrBrowserStart indicates the headless browser could not be launched.
	ErrBrowserStart = errors.New("browser start failed")
	// ErrNavigation indicates the target page could not be loaded.
	ErrNavigation = errors.New("navigation failed")
)

// Package logger provides structured logging for the ytauth tool.
//
// Features:
//   - Multiple log levels (TRACE, DEBUG, INFO, WARN, ERROR)
//   - Component-based filtering
//   - Text and JSON output formats
//   - Thread-safe operations
//
// Usage:
//
//	// Get a component logger
//	log := logger.WithComponent(logger.ComponentBrowser)
//
//	// Log messages with different levels
//	log.Debug("starting session", map[string]interface{}{
//		"url": "https://www.youtube.com/watch?v=...",
//	})
//
//	// Configure global logger
//	config := logger.DefaultConfig()
//	config.Level = logger.DEBUG
//	logger.SetGlobalLogger(logger.New(config))
//
// Components:
//   - ComponentApp: CLI logs
//   - ComponentBrowser: headless browser session logs
//   - ComponentCookies: cookie formatting and file output logs
//   - ComponentClient: HTTP client logs
//   - ComponentVerify: session verification logs
//
// All output goes to stderr by default; stdout is reserved for the cookie
// line the tool exists to print.
package logger

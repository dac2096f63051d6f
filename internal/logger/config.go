package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvironmentConfig builds a logger Config from YTAUTH_LOG_* environment
// variables, falling back to defaults for anything unset.
func EnvironmentConfig() *Config {
	config := DefaultConfig()

	if level := os.Getenv("YTAUTH_LOG_LEVEL"); level != "" {
		if parsed, err := parseLevel(level); err == nil {
			config.Level = parsed
		}
	}
	if format := os.Getenv("YTAUTH_LOG_FORMAT"); format != "" {
		if parsed, err := parseFormat(format); err == nil {
			config.Format = parsed
		}
	}
	if output := os.Getenv("YTAUTH_LOG_OUTPUT"); output != "" {
		if parsed, err := parseOutput(output); err == nil {
			config.Output = parsed
		}
	}
	if timestamp := os.Getenv("YTAUTH_LOG_TIMESTAMP"); timestamp != "" {
		config.Timestamp = timestamp == "true" || timestamp == "1"
	}

	if components := os.Getenv("YTAUTH_LOG_COMPONENTS"); components != "" {
		config.Components = make(map[Component]bool)
		for _, comp := range strings.Split(components, ",") {
			comp = strings.TrimSpace(comp)
			if comp != "" {
				config.Components[Component(comp)] = true
			}
		}
	}

	return config
}

// parseLevel parses level string to Level enum
func parseLevel(levelStr string) (Level, error) {
	switch strings.ToUpper(levelStr) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown level: %s", levelStr)
	}
}

// parseFormat parses format string to Format enum
func parseFormat(formatStr string) (Format, error) {
	switch strings.ToLower(formatStr) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", formatStr)
	}
}

// parseOutput parses output string to io.Writer
func parseOutput(outputStr string) (io.Writer, error) {
	switch strings.ToLower(outputStr) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "null", "none":
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("unknown output: %s", outputStr)
	}
}

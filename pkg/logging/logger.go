// Package logging builds the hclog loggers used by the launch tools.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	EnvLogLevel = "ANDROID_LAUNCH_LOG_LEVEL"
	EnvJSONLog  = "ANDROID_LAUNCH_JSON_LOG"

	DefaultLevel = "warn"
	linePrefix   = "🤖 "
)

// NewLogger creates an hclog logger writing to output (stderr when nil).
// Human readable output gets every line prefixed; JSON output is left alone.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = LevelFromEnv()
	}

	jsonFormat := JSONFromEnv()
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// LevelFromEnv returns the configured log level, defaulting to warn.
func LevelFromEnv() string {
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return DefaultLevel
}

// JSONFromEnv reports whether JSON log output was requested.
func JSONFromEnv() bool {
	return isEnvTrue(EnvJSONLog)
}

// ValidLevel reports whether hclog recognizes level.
func ValidLevel(level string) bool {
	return hclog.LevelFromString(level) != hclog.NoLevel
}

func isEnvTrue(key string) bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if val == "" {
		return false
	}
	if val == "on" || val == "yes" {
		return true
	}

	result, err := strconv.ParseBool(val)
	return err == nil && result
}

package logging

import (
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
)

// Env holds the logging settings read from the environment.
type Env struct {
	Level string `env:"TROYBIN_LOG_LEVEL" envDefault:"warn"`
	JSON  bool   `env:"TROYBIN_JSON_LOG"`
}

// ReadEnv parses the logging environment. Malformed values fall back to
// the defaults.
func ReadEnv() Env {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{Level: "warn"}
	}
	if e.Level == "" {
		e.Level = "warn"
	}
	return e
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	return New(name, level, ReadEnv().JSON, output)
}

// New creates a logger with an explicit output format.
func New(name string, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🔥 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	return ReadEnv().Level
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/domainkit/pkg/environment"
	"github.com/dmitrymomot/domainkit/pkg/logger"
)

const (
	envPrefix   = "DOMAINCHECK_"
	serviceName = "domaincheck"
)

// Settings is read from DOMAINCHECK_* variables and an optional .env file.
type Settings struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Output    string `env:"OUTPUT" envDefault:"json"`
}

// newLogger starts from the environment defaults and applies explicit
// level and format settings on top.
func newLogger(s Settings, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(s.Env), serviceName),
		logger.WithOutput(w),
	}

	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

// outputFormat is the encoding of command results on stdout.
type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputJSON, outputYAML:
		return f, nil
	case "yml":
		return outputYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be %q or %q", s, outputJSON, outputYAML)
	}
}

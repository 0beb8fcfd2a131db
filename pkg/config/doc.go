// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which seeds the process environment
// from .env files without overriding variables that are already set, and
// github.com/caarlos0/env/v11, which parses the environment into a struct
// using `env` and `envDefault` field tags.
//
// Parse returns a fresh value on every call. Load caches the first
// successful result per configuration type for the lifetime of the
// process, and MustLoad panics instead of returning an error.
//
// # Usage
//
//	type Settings struct {
//		Env      string `env:"ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("DOMAINCHECK_")); err != nil {
//		return err
//	}
package config

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Parse or Load call.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix reads every variable with prefix prepended to its tag name.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing instead of the
// default ".env". Files that do not exist are skipped; variables already
// set in the process environment are never overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var globalCache = &configCache{values: make(map[string]any)}

// Parse loads .env files and parses the environment into a fresh T using
// its `env` struct tags. Nothing is cached.
//
// Example:
//
//	type Settings struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Output   string `env:"OUTPUT" envDefault:"json"`
//	}
//
//	s, err := config.Parse[Settings](config.WithPrefix("DOMAINCHECK_"))
func Parse[T any](opts ...Option) (T, error) {
	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	var v T
	if err := loadEnvFiles(o.files); err != nil {
		return v, err
	}

	if err := env.ParseWithOptions(&v, env.Options{Prefix: o.prefix}); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// Load parses the configuration once per type and caches it for the
// lifetime of the process; later calls copy the cached value into v and
// ignore opts.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := Parse[T](opts...)
	if err != nil {
		return err
	}

	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}
	return nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

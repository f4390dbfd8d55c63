// Package config loads environment configuration fail-open: a value that
// does not parse or validate falls back to its compiled-in default, and the
// caller is told why. A bad environment degrades a process, it never takes
// it down.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Fallback describes one environment value that was rejected and replaced
// by its default. A nil Fallback means the value was taken as-is (or the
// variable was unset, which keeps the default silently).
type Fallback struct {
	Key    string
	Raw    string
	Reason string
}

func (f *Fallback) String() string {
	return fmt.Sprintf("%s=%q rejected (%s), using default", f.Key, f.Raw, f.Reason)
}

// loadEnv is the single fail-open path shared by the typed loaders.
func loadEnv[T any](key string, def T, parse func(string) (T, error), validate func(T) error) (T, *Fallback) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := parse(raw)
	if err != nil {
		return def, &Fallback{Key: key, Raw: raw, Reason: err.Error()}
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return def, &Fallback{Key: key, Raw: raw, Reason: err.Error()}
		}
	}
	return v, nil
}

// Env loads a string value with optional validation.
func Env(key, def string, validate func(string) error) (string, *Fallback) {
	return loadEnv(key, def, func(raw string) (string, error) { return raw, nil }, validate)
}

// EnvDuration loads a Go duration string such as "30s" or "1h30m".
func EnvDuration(key string, def time.Duration, validate func(time.Duration) error) (time.Duration, *Fallback) {
	return loadEnv(key, def, time.ParseDuration, validate)
}

// EnvInt loads a decimal integer.
func EnvInt(key string, def int, validate func(int) error) (int, *Fallback) {
	return loadEnv(key, def, strconv.Atoi, validate)
}

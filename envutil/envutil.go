// Package envutil reads typed configuration from environment variables.
// Every reader first consults overrides attached to the context (see
// WithEnvOverrides and Loader.EnhanceContext) and then the process environment.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"time"
)

func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{key: key, present: ok, value: val}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads a raw string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a boolean in any form strconv.ParseBool accepts.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), parseBool), opts)
}

func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), parseInt), opts)
}

func Uint64(ctx context.Context, key string, opts ...Option[uint64]) Reader[uint64] {
	return apply(Map(get(ctx, key), parseUint64), opts)
}

// Ints reads a comma separated list of integers, such as "100,1000,10000".
func Ints(ctx context.Context, key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(get(ctx, key), parseIntList), opts)
}

// Strings reads a comma separated list of trimmed, non-empty strings.
func Strings(ctx context.Context, key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(ctx, key), splitList), opts)
}

// Duration reads a value in time.ParseDuration syntax.
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), parseDuration), opts)
}

// SlogLevel reads one of debug, info, warn or error, ignoring case.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(Map(Map(get(ctx, key), trimString), toLower), parseSlogLevel)

	return apply(rdr, opts)
}

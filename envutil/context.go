package envutil

import (
	"context"
	"maps"
)

type overridesKey struct{}

// WithEnvOverride returns a context in which key reads as value, regardless
// of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return WithEnvOverrides(ctx, map[string]string{key: value})
}

// WithEnvOverrides layers every entry of env over the overrides already held
// by ctx. The original context is not modified.
func WithEnvOverrides(ctx context.Context, env map[string]string) context.Context {
	merged := make(map[string]string)

	if existing, ok := ctx.Value(overridesKey{}).(map[string]string); ok {
		maps.Copy(merged, existing)
	}

	maps.Copy(merged, env)

	return context.WithValue(ctx, overridesKey{}, merged)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	env, ok := ctx.Value(overridesKey{}).(map[string]string)
	if !ok {
		return "", false
	}

	val, found := env[key]

	return val, found
}

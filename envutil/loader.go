package envutil

import (
	"context"
	"maps"
)

// Loader is an isolated, mutable set of environment variables. It never
// touches the process environment; attach it to a context with EnhanceContext
// so that readers see its values first.
//
//	ldr := envutil.NewLoader()
//	if _, err := ldr.LoadFile("bench.yaml"); err != nil {
//	    return err
//	}
//
//	ctx = ldr.EnhanceContext(ctx)
//
// Loader is not thread-safe.
type Loader struct {
	environment map[string]string
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{
		environment: make(map[string]string),
	}
}

// LoadFile merges the variables of an env file into the loader, overwriting
// existing keys, and returns how many it read. On error the loader is unchanged.
func (l *Loader) LoadFile(filename string) (int, error) {
	env, err := LoadEnvFile(filename)
	if err != nil {
		return 0, err
	}

	maps.Copy(l.environment, env)

	return len(env), nil
}

func (l *Loader) Get(key string) (string, bool) {
	val, found := l.environment[key]

	return val, found
}

// AsMap returns a copy of the loaded variables.
func (l *Loader) AsMap() map[string]string {
	return maps.Clone(l.environment)
}

// EnhanceContext returns a context whose readers prefer the loader's values
// over the process environment.
func (l *Loader) EnhanceContext(ctx context.Context) context.Context {
	return WithEnvOverrides(ctx, l.AsMap())
}

package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	loaded     sync.Map // reflect.Type -> cached value
)

// Load populates cfg from the environment. The first successful load of a
// type is cached; later calls copy the cached value into cfg.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	key := reflect.TypeOf(cfg).Elem()
	if cached, ok := loaded.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// no .env file is fine; the process environment is used as-is
		_ = godotenv.Load()
	})

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	actual, _ := loaded.LoadOrStore(key, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadFrom populates cfg from the given variables only. Nothing is cached.
func LoadFrom[T any](cfg *T, environ map[string]string) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if environ == nil {
		environ = map[string]string{}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeOf(cfg).Elem(), err)
	}
	*cfg = parsed
	return nil
}

package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// dotenv guards the one-time .env autoload. Missing files are fine;
	// real deployments configure the process environment directly.
	dotenv sync.Once

	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first Load in the
// process also reads a .env file from the working directory if one
// exists. Each configuration type is parsed once; later calls for the
// same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenv.Do(func() {
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	key := reflect.TypeOf((*T)(nil)).Elem()
	if hit, ok := cache[key]; ok {
		*cfg = hit.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	cache[key] = parsed
	*cfg = parsed
	return nil
}

// MustLoad is Load except it panics on failure. Intended for main()
// where a bad environment should stop the process immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/usergen/core/config"
//
//	type GeneratorConfig struct {
//		Workers     int  `env:"USERGEN_WORKERS" envDefault:"4"`
//		BufferLines int  `env:"USERGEN_BUFFER_LINES" envDefault:"1000"`
//		Quiet       bool `env:"USERGEN_QUIET" envDefault:"false"`
//	}
//
//	func main() {
//		var cfg GeneratorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process lifetime:
//
//	var cfg1 GeneratorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 GeneratorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so packages can declare
// their own configuration structs without stepping on each other.
package config

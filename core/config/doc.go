// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use (a
// missing file is not an error) and uses the caarlos0/env library for parsing
// environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/emitter/core/config"
//
//	type DispatcherConfig struct {
//		Separator string `env:"EMITTER_SEPARATOR" envDefault:":"`
//	}
//
//	func main() {
//		var cfg DispatcherConfig
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
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 DispatcherConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 DispatcherConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// LoadFrom parses an explicit variable map and bypasses both the cache and
// the process environment, which keeps tests hermetic.
package config

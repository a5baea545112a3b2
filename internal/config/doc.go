// Package config provides 12-factor configuration management for the
// pipeline binary.
//
// Configuration is loaded from environment variables with sensible
// defaults, optionally overlaid by a YAML config file. CLI flags can
// override both for development flexibility; the caller applies them
// last. Defaults alone produce the documented behavior, so none of the
// higher layers is required.
//
// Configuration Sections:
//   - Pool: worker pool sizing
//   - Logging: log level and output format
//   - Output: output file naming
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("running with %d workers\n", cfg.Pool.Workers)
//
// Environment Variables:
//   - ROWPIPE_WORKERS
//   - ROWPIPE_LOG_LEVEL, ROWPIPE_LOG_DEV
//   - ROWPIPE_OUTPUT_SUFFIX
package config

// Package config handles loading the IceCore storefront configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/icecore/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. Apply ICECORE_* environment variables on top, which always win
//
// # Default Values
//
//   - Config file: ~/.config/icecore/config.toml
//   - Backend base URL: http://localhost:8080/api
//   - Cache TTL: 1h
//   - Data directory: ~/.local/share/icecore
//   - Log level: info, plain text
//
// # TOML Format
//
// Example config.toml:
//
//	base_url = "https://shop.example.com/api"
//	cache_ttl = "15m"
//	data_dir = "~/.local/share/icecore"
//	log_level = "debug"
//	log_json = false
//
// All fields are optional. cache_ttl accepts Go duration syntax; a short
// value (seconds) makes operator edits to prices and stock show up quickly,
// a long one (an hour) minimizes backend load. Tilde expansion is performed
// on paths automatically.
//
// # Environment Overrides
//
// Every field can be overridden without a file, which is how the .env flow
// works in development:
//
//	ICECORE_BASE_URL, ICECORE_CACHE_TTL, ICECORE_DATA_DIR,
//	ICECORE_LOG_LEVEL, ICECORE_LOG_JSON
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), TOML parsing errors, and
// malformed durations. A missing config file is NOT an error - the
// storefront works out of the box against a local backend.
package config

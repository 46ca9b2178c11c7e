// Package config loads runtime configuration for the ondo CLI.
//
// Sources are layered: built-in defaults, then an optional JSON file
// (-c/-config), then ONDO_* environment variables, then command-line
// flags. Later layers win. The backend base URL defaults to a fixed value
// per platform class and can be overridden explicitly.
package config

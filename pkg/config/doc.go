// Package config loads configuration structs from environment variables
// via `env` struct tags, with optional .env file support for development.
//
// Loading is eager and fail-fast: required keys are checked when Load is
// called, which the application should do at startup before serving
// traffic.
package config

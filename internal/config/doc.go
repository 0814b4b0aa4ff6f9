// Package config defines the application configuration structure and
// loads it from environment variables.
package config

// Package config defines the application configuration structure and
// provides loading from environment variables and config files.
package config

// Package config loads the YAML application configuration and validates it.
package config

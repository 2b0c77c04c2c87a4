// Package config loads and validates application settings from defaults, an
// optional config file and the environment.
package config

// Package config loads, normalizes, and validates lumen's TOML
// configuration.
//
// Load starts from Default(), overlays the config file when one exists
// (explicit path, then ~/.config/lumen/config.toml, then ./lumen.toml), and
// finally normalizes: tilde-prefixed paths expand to absolute paths and a
// few values fall back to environment variables. Callers receive a config
// that is ready to use or an error describing the first problem found.
package config

// Package config loads editor settings from a TOML file with environment
// variable overrides, and can watch the file for live reload.
//
// Settings resolution order, lowest to highest: built-in defaults, the
// TOML file, VILINE_-prefixed environment variables. A missing file is
// not an error; defaults apply.
package config

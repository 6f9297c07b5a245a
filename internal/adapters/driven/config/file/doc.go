// Package file provides a TOML file-backed implementation of the
// ConfigStore port. Configuration lives in a single config.toml under
// the obsync config directory.
package file

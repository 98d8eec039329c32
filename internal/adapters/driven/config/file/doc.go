// Package file provides the TOML-based configuration store.
// Configuration lives in a single user-editable file; nested tables are
// flattened to dot-notation keys on load.
package file

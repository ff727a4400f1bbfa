// Package file provides a file-based configuration store using TOML.
// It persists default generation options (line width, relative imports,
// use_all) in the ahoy config directory.
package file

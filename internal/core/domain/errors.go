package domain

import "errors"

// Domain errors represent analysis and resolution failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a package location or a named submodule
	// could not be resolved. Fatal for the whole run; no partial output.
	ErrNotFound = errors.New("not found")

	// ErrRead indicates a submodule's source could not be read after
	// discovery (permissions, or a race with a concurrent delete).
	ErrRead = errors.New("source read failed")

	// ErrParse indicates the upstream syntax parser rejected a module.
	// A module that fails to parse fails the entire aggregation, since
	// a partial manifest would silently drop exports.
	ErrParse = errors.New("syntax error")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

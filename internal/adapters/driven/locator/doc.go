// Package locator implements the driven.ModuleLocator port over the
// local filesystem. Dotted module names are resolved against a
// PYTHONPATH-style search path; filesystem paths are used as-is.
package locator

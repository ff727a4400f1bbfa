// Package cli provides the cobra command tree for ahoy.
//
// Commands are driving adapters: they translate flags and arguments into
// driving-port calls and render the results. Services are injected once
// from the composition root via Configure.
package cli

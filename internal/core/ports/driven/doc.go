// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ModuleLocator: Resolves package locations and enumerates submodules
//   - SourceReader: Reads submodule source text
//   - SyntaxParser: Turns source text into the analysis syntax tree
//   - ManifestComposer: Renders a PackageManifest into aggregator text
//   - InitPatcher: Merges generated text into an existing aggregator file
//
// # Optional Interfaces
//
//   - ConfigStore: Persisted defaults for formatting options. The CLI
//     degrades to built-in defaults without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

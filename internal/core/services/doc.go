// Package services implements the driving port interfaces.
// Services contain the analysis core: the reachability analyzer, the
// symbol collector, the submodule set resolver and the generation
// orchestrator. They call out to infrastructure only through driven
// ports.
//
// Services are pure Go with no external dependencies.
package services

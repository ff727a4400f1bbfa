// Package composer implements the driven.ManifestComposer and
// driven.InitPatcher ports: it renders a PackageManifest into aggregator
// file text and splices that text into an existing __init__.py while
// preserving manually authored content.
package composer

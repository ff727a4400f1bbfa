// Package pyparse implements the driven.SyntaxParser port on top of
// gpython's parser. The full Python syntax tree is lowered into the
// domain's analysis subset: statements the reachability analyzer
// understands keep their structure, everything else becomes an inert
// Skipped/Opaque node so the analysis stays conservative.
package pyparse

// Package interpreter is a tree-walking evaluator for parsed lox
// declarations.
//
// Expressions reduce to runtime values in a single global environment. Print
// statements write to the configured stdout. Run drives a whole program:
// every syntax or runtime error becomes a Diagnostic for the reporter and
// execution resumes at the next top-level declaration.
package interpreter

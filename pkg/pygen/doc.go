// Package pygen provides a scoped builder for generating Python source.
//
// A [Builder] composes a tree of [github.com/macropower/pycraft/pkg/pynode]
// nodes through nested block operations, each of which takes a body closure
// and restores the nesting context on every exit path. The finished tree is
// rendered to Python source text, optionally formatted with black and
// syntax-checked with the Python interpreter.
package pygen

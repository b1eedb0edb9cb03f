// Package pynode provides the node tree used to generate Python source.
//
// Each node represents one piece of emitted Python code and renders itself
// with proper indentation, recursively rendering any children. Nodes are
// created by [github.com/macropower/pycraft/pkg/pygen.Builder] and are not
// mutated after insertion, so rendering is deterministic and repeatable.
package pynode

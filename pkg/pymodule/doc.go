// Package pymodule provides the Python module definition document.
//
// A definition document is a YAML description of a Python module: hoisted
// imports, classes with typed attributes and methods, and free functions.
// Documents are decoded strictly, normalized to Python naming conventions,
// and driven through a [github.com/macropower/pycraft/pkg/pygen.Builder] to
// produce source text.
package pymodule

// Package pytool wraps the external Python toolchain.
//
// This package is the boundary to the optional collaborators used by code
// generation: the black formatter, and the Python interpreter itself for
// syntax checking. Both are external binaries invoked over stdin; neither is
// required for generation to succeed.
package pytool

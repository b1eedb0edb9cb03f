// Package pyerrors provides error definitions for Python generation.
//
// This package defines standardized error values to ensure consistent error
// reporting and wrapping throughout the codebase.
package pyerrors

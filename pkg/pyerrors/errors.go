package pyerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrGeneratePython indicates an error occurred during Python generation.
	ErrGeneratePython = errors.New("generate python")

	// ErrInvalidContext indicates a builder operation was invoked outside the
	// scope kind it requires.
	ErrInvalidContext = errors.New("invalid context")

	// ErrMissingInterpreter indicates no Python interpreter was found on PATH.
	ErrMissingInterpreter = errors.New("python interpreter not found")

	// ErrInvalidDefinition indicates a module definition document failed to
	// decode or carried invalid contents.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")
)

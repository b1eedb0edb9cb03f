package pygen

import (
	"context"
	"fmt"
	"os"

	"github.com/macropower/pycraft/pkg/pyerrors"
	"github.com/macropower/pycraft/pkg/pytool"
)

// DefaultLineLength is the line length passed to the external formatter.
const DefaultLineLength = 88

// Formatter is an external pretty-printer for generated source.
type Formatter interface {
	// Available reports whether the formatter can be invoked.
	Available() bool
	// Format reformats src to the given line length.
	Format(ctx context.Context, src string, lineLength int) (string, error)
}

// Validator is an external syntax checker for generated source.
type Validator interface {
	// Available reports whether the validator can be invoked.
	Available() bool
	// Check parses src and reports the first syntax error, if any.
	Check(ctx context.Context, src string) (*pytool.CheckResult, error)
}

// GenerateOptions contains options for [Builder.Generate].
type GenerateOptions struct {
	// LineLength is passed through to the formatter. Zero means
	// [DefaultLineLength].
	LineLength int
	// Format selects whether to pipe the output through the formatter.
	Format bool
}

// Generate renders the import table and the node tree into Python source
// text. With opts.Format set, the text is handed to the formatter
// collaborator; a missing formatter degrades silently to the unformatted
// text.
func (b *Builder) Generate(opts *GenerateOptions) (string, error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}

	code := b.render()

	if !opts.Format || b.formatter == nil || !b.formatter.Available() {
		return code, nil
	}

	lineLength := opts.LineLength
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}

	formatted, err := b.formatter.Format(context.Background(), code, lineLength)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pyerrors.ErrGeneratePython, err)
	}

	return formatted, nil
}

// Save writes the generated source to filepath, overwriting any existing
// file. There is no partial-write recovery.
func (b *Builder) Save(filepath string, opts *GenerateOptions) error {
	code, err := b.Generate(opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath, []byte(code), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", pyerrors.ErrWriteFile, filepath, err)
	}

	return nil
}

// ValidationResult is the detailed outcome of a syntax check.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Valid    bool     `json:"valid"`
}

// Validate reports whether the generated source is syntactically valid
// Python, according to the validator collaborator.
func (b *Builder) Validate() (bool, error) {
	res, err := b.ValidateDetailed()
	if err != nil {
		return false, err
	}

	return res.Valid, nil
}

// ValidateDetailed hands the generated source to the validator collaborator
// and maps its outcome to a [ValidationResult]. Syntax errors are reported
// in the result, not returned as an error.
func (b *Builder) ValidateDetailed() (*ValidationResult, error) {
	if b.validator == nil || !b.validator.Available() {
		return nil, pyerrors.ErrMissingInterpreter
	}

	check, err := b.validator.Check(context.Background(), b.render())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pyerrors.ErrGeneratePython, err)
	}

	res := &ValidationResult{
		Valid:    check.OK,
		Errors:   []string{},
		Warnings: []string{},
	}
	if !check.OK {
		res.Errors = append(res.Errors, fmt.Sprintf("syntax error at line %d: %s", check.Line, check.Msg))
	}

	return res, nil
}

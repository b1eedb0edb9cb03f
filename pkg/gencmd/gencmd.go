package gencmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/macropower/pycraft/pkg/pygen"
	"github.com/macropower/pycraft/pkg/pymodule"
)

var (
	ErrGenWorkerFailed  = errors.New("generate worker failed")
	ErrValidationFailed = errors.New("validation failed")
)

// Generator generates Python files from module definition documents.
type Generator struct {
	// OnResult, if set, is called with every per-file outcome.
	OnResult func(Result)

	// OutputDir is the directory generated files are written to.
	OutputDir string

	// LineLength is passed through to the formatter.
	LineLength int

	// Workers bounds concurrent generation. Zero means GOMAXPROCS.
	Workers int64

	// IndentSize is the builder's indent size. Zero means the default.
	IndentSize int

	// Format pipes generated files through the black formatter.
	Format bool

	// Validate syntax-checks generated files with the Python interpreter.
	Validate bool
}

// Result is the outcome of generating one definition.
type Result struct {
	Err        error
	Definition string
	Output     string
}

// Run generates one Python file per definition document. All definitions are
// attempted; failures are collected and returned together.
func (g *Generator) Run(ctx context.Context, paths []string) error {
	workerCount := g.Workers
	if workerCount <= 0 {
		workerCount = int64(runtime.GOMAXPROCS(0))
	}

	logger := slog.With(slog.String("cmd", "gen"))

	sem := semaphore.NewWeighted(workerCount)
	results := make(chan Result, len(paths))

	for _, path := range paths {
		path := path

		if err := sem.Acquire(ctx, 1); err != nil {
			return fmt.Errorf("%w: %w", ErrGenWorkerFailed, err)
		}

		go func() {
			defer sem.Release(1)

			out, err := g.generate(path)
			if err != nil {
				results <- Result{Definition: path, Err: fmt.Errorf("generate %q: %w", path, err)}

				return
			}

			logger.Info("generated python module",
				slog.String("definition", path),
				slog.String("output", out),
			)

			results <- Result{Definition: path, Output: out}
		}()
	}

	if err := sem.Acquire(ctx, workerCount); err != nil {
		return fmt.Errorf("%w: %w", ErrGenWorkerFailed, err)
	}

	close(results)

	var merr error

	for res := range results {
		if g.OnResult != nil {
			g.OnResult(res)
		}

		if res.Err != nil {
			merr = multierror.Append(merr, res.Err)
		}
	}

	return merr //nolint:wrapcheck // Aggregate of already-wrapped errors.
}

// generate builds one definition document into a .py file and returns the
// output path.
func (g *Generator) generate(path string) (string, error) {
	m, err := pymodule.LoadFile(path)
	if err != nil {
		return "", err
	}

	var opts []pygen.Option
	if g.IndentSize > 0 {
		opts = append(opts, pygen.WithIndentSize(g.IndentSize))
	}

	b := pygen.NewBuilder(opts...)

	if err := m.Populate(b); err != nil {
		return "", err
	}

	if g.Validate {
		res, err := b.ValidateDetailed()
		if err != nil {
			return "", err
		}

		if !res.Valid {
			return "", fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(res.Errors, "; "))
		}
	}

	out := filepath.Join(g.OutputDir, m.FileName())

	err = b.Save(out, &pygen.GenerateOptions{
		Format:     g.Format,
		LineLength: g.LineLength,
	})
	if err != nil {
		return "", err
	}

	return out, nil
}

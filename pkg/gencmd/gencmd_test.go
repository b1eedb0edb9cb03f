package gencmd_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pycraft/pkg/gencmd"
	"github.com/macropower/pycraft/pkg/pyerrors"
)

func writeDefinition(t *testing.T, dir, name, doc string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestGeneratorRun(t *testing.T) {
	t.Parallel()

	defDir := t.TempDir()
	outDir := t.TempDir()

	defs := []string{
		writeDefinition(t, defDir, "greeter.yaml", `
name: greeter
functions:
  - name: greet
    params: ["name: str"]
    returns: str
    body:
      - return f"Hi {name}"
`),
		writeDefinition(t, defDir, "models.yaml", `
name: models
classes:
  - name: point
    attributes:
      - name: x
        type: int
        default: "0"
      - name: y
        type: int
        default: "0"
`),
	}

	var (
		mu      sync.Mutex
		results []gencmd.Result
	)

	g := &gencmd.Generator{
		OutputDir: outDir,
		OnResult: func(res gencmd.Result) {
			mu.Lock()
			defer mu.Unlock()

			results = append(results, res)
		},
	}

	require.NoError(t, g.Run(context.Background(), defs))
	assert.Len(t, results, 2)

	greeter, err := os.ReadFile(filepath.Join(outDir, "greeter.py"))
	require.NoError(t, err)
	assert.Equal(t, "def greet(name: str) -> str:\n    return f\"Hi {name}\"", string(greeter))

	models, err := os.ReadFile(filepath.Join(outDir, "models.py"))
	require.NoError(t, err)
	assert.Equal(t, "class Point:\n    x: int = 0\n    y: int = 0", string(models))
}

func TestGeneratorRunCollectsFailures(t *testing.T) {
	t.Parallel()

	defDir := t.TempDir()
	outDir := t.TempDir()

	good := writeDefinition(t, defDir, "ok.yaml", "name: ok\n")
	bad := writeDefinition(t, defDir, "bad.yaml", "classes:\n  - name: X\n")

	g := &gencmd.Generator{OutputDir: outDir}

	err := g.Run(context.Background(), []string{good, bad})
	require.ErrorIs(t, err, pyerrors.ErrInvalidDefinition)

	// The good definition must still be generated.
	_, statErr := os.Stat(filepath.Join(outDir, "ok.py"))
	require.NoError(t, statErr)
}

func TestGeneratorRunMissingFile(t *testing.T) {
	t.Parallel()

	g := &gencmd.Generator{OutputDir: t.TempDir()}

	err := g.Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

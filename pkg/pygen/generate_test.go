package pygen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pycraft/pkg/pyerrors"
	"github.com/macropower/pycraft/pkg/pygen"
	"github.com/macropower/pycraft/pkg/pytool"
)

type fakeFormatter struct {
	err       error
	out       string
	called    bool
	available bool
}

func (f *fakeFormatter) Available() bool {
	return f.available
}

func (f *fakeFormatter) Format(_ context.Context, _ string, _ int) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}

	return f.out, nil
}

type fakeValidator struct {
	err       error
	res       *pytool.CheckResult
	available bool
}

func (v *fakeValidator) Available() bool {
	return v.available
}

func (v *fakeValidator) Check(_ context.Context, _ string) (*pytool.CheckResult, error) {
	if v.err != nil {
		return nil, v.err
	}

	return v.res, nil
}

func TestGenerateSkipsUnrequestedFormatting(t *testing.T) {
	t.Parallel()

	f := &fakeFormatter{available: true, out: "formatted"}

	b := pygen.NewBuilder(pygen.WithFormatter(f))
	b.Line("x=1")

	code, err := b.Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, "x=1", code)
	assert.False(t, f.called)
}

func TestGenerateFormats(t *testing.T) {
	t.Parallel()

	f := &fakeFormatter{available: true, out: "x = 1"}

	b := pygen.NewBuilder(pygen.WithFormatter(f))
	b.Line("x=1")

	code, err := b.Generate(&pygen.GenerateOptions{Format: true})
	require.NoError(t, err)
	assert.Equal(t, "x = 1", code)
	assert.True(t, f.called)
}

func TestGenerateDegradesWithoutFormatter(t *testing.T) {
	t.Parallel()

	f := &fakeFormatter{available: false, out: "formatted"}

	b := pygen.NewBuilder(pygen.WithFormatter(f))
	b.Line("x=1")

	code, err := b.Generate(&pygen.GenerateOptions{Format: true})
	require.NoError(t, err)
	assert.Equal(t, "x=1", code)
	assert.False(t, f.called)
}

func TestGenerateFormatterFailure(t *testing.T) {
	t.Parallel()

	f := &fakeFormatter{available: true, err: errors.New("boom")}

	b := pygen.NewBuilder(pygen.WithFormatter(f))
	b.Line("x=1")

	_, err := b.Generate(&pygen.GenerateOptions{Format: true})
	require.ErrorIs(t, err, pyerrors.ErrGeneratePython)
}

func TestSave(t *testing.T) {
	t.Parallel()

	b := pygen.NewBuilder()
	b.Line("x = 1")

	path := filepath.Join(t.TempDir(), "out.py")
	require.NoError(t, b.Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1", string(data))
}

func TestSaveToMissingDir(t *testing.T) {
	t.Parallel()

	b := pygen.NewBuilder()
	b.Line("x = 1")

	path := filepath.Join(t.TempDir(), "missing", "out.py")
	err := b.Save(path, nil)
	require.ErrorIs(t, err, pyerrors.ErrWriteFile)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	v := &fakeValidator{available: true, res: &pytool.CheckResult{OK: true}}

	b := pygen.NewBuilder(pygen.WithValidator(v))
	b.Class("X", nil, func() {
		require.NoError(t, b.Attr("f", "str", ""))
	})

	ok, err := b.Validate()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateDetailedReportsSyntaxError(t *testing.T) {
	t.Parallel()

	v := &fakeValidator{available: true, res: &pytool.CheckResult{
		OK:   false,
		Line: 2,
		Msg:  "invalid syntax",
	}}

	b := pygen.NewBuilder(pygen.WithValidator(v))
	b.Line("def broken(:")

	res, err := b.ValidateDetailed()
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"syntax error at line 2: invalid syntax"}, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidateRoundTrip(t *testing.T) {
	t.Parallel()

	if !pytool.DefaultInterpreter.Available() {
		t.Skip("python3 not installed")
	}

	b := pygen.NewBuilder()
	b.AddFromImport("dataclasses", []string{"dataclass"})
	b.Class("X", &pygen.ClassOpts{Decorators: []string{"dataclass"}}, func() {
		require.NoError(t, b.Attr("f", "str", ""))
	})

	ok, err := b.Validate()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateWithoutInterpreter(t *testing.T) {
	t.Parallel()

	v := &fakeValidator{available: false}

	b := pygen.NewBuilder(pygen.WithValidator(v))
	b.Line("x = 1")

	_, err := b.Validate()
	require.ErrorIs(t, err, pyerrors.ErrMissingInterpreter)
}

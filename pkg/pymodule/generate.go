package pymodule

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"

	"github.com/macropower/pycraft/pkg/pyerrors"
	"github.com/macropower/pycraft/pkg/pygen"
)

// Populate drives b to build the module's source tree.
func (m *Module) Populate(b *pygen.Builder) error {
	var merr error

	for _, imp := range m.Imports {
		if len(imp.Items) > 0 {
			b.AddFromImport(imp.Module, imp.Items)
		} else {
			b.AddImport(imp.Module, imp.Alias)
		}
	}

	if m.Docstring != "" {
		b.Docstring(m.Docstring)
	}

	first := m.Docstring == ""

	for _, cls := range m.Classes {
		if !first {
			b.BlankLines(2)
		}

		first = false

		merr = multierror.Append(merr, cls.populate(b)).ErrorOrNil()
	}

	for _, fn := range m.Functions {
		if !first {
			b.BlankLines(2)
		}

		first = false

		fn.populate(b, false)
	}

	if merr != nil {
		return fmt.Errorf("%w: module %q: %w", pyerrors.ErrGeneratePython, m.Name, merr)
	}

	return nil
}

// GeneratePython builds and renders the module, writing the result to w with
// a trailing newline.
func (m *Module) GeneratePython(w io.Writer) error {
	b := pygen.NewBuilder()

	if err := m.Populate(b); err != nil {
		return err
	}

	code, err := b.Generate(nil)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, code+"\n"); err != nil {
		return fmt.Errorf("%w: %w", pyerrors.ErrWrite, err)
	}

	return nil
}

func (c *Class) populate(b *pygen.Builder) error {
	var merr error

	b.Class(strcase.ToCamel(c.Name), &pygen.ClassOpts{
		Bases:      c.Bases,
		Decorators: c.Decorators,
	}, func() {
		if c.Docstring != "" {
			b.Docstring(c.Docstring)
		}

		for _, attr := range c.Attributes {
			err := b.Attr(strcase.ToSnake(attr.Name), attr.Type, attr.Default)
			merr = multierror.Append(merr, err).ErrorOrNil()
		}

		for _, method := range c.Methods {
			b.BlankLine()
			method.populate(b, true)
		}
	})

	return merr
}

func (f *Function) populate(b *pygen.Builder, method bool) {
	opts := &pygen.FuncOpts{
		Params:     f.Params,
		Returns:    f.Returns,
		Decorators: f.Decorators,
		Async:      f.Async,
	}

	body := func() {
		if f.Docstring != "" {
			b.Docstring(f.Docstring)
		}

		for _, line := range f.Body {
			b.Line(line)
		}
	}

	name := strcase.ToSnake(f.Name)
	if method {
		b.Method(name, opts, body)
	} else {
		b.Function(name, opts, body)
	}
}

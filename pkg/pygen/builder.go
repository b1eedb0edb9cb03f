package pygen

import (
	"fmt"
	"strings"

	"github.com/macropower/pycraft/pkg/pyerrors"
	"github.com/macropower/pycraft/pkg/pynode"
	"github.com/macropower/pycraft/pkg/pytool"
)

const (
	// DefaultIndentSize is the number of indent characters per nesting level.
	DefaultIndentSize = 4

	// DefaultIndentChar is the character used for indentation.
	DefaultIndentChar = " "
)

// Builder composes a Python source tree through nested block operations.
//
// Block operations (Class, Function, If, For, ...) take a body closure;
// while the closure runs, leaf operations (Line, Comment, Attr, ...) append
// to that block's body. The nesting context is restored on every exit path,
// including panics raised by a body closure.
//
// A Builder is owned by one build session and must not be shared across
// goroutines.
type Builder struct {
	formatter Formatter
	validator Validator
	indenter  *Indenter
	imports   *pynode.ImportManager

	indentChar string
	nodes      []pynode.Node
	scopes     []pynode.Container
	indentSize int
}

// Option configures a [Builder].
type Option func(b *Builder)

// WithIndentSize sets the number of indent characters per nesting level.
func WithIndentSize(size int) Option {
	return func(b *Builder) {
		b.indentSize = size
	}
}

// WithIndentChar sets the indentation character (space or tab).
func WithIndentChar(char string) Option {
	return func(b *Builder) {
		b.indentChar = char
	}
}

// WithFormatter sets the external formatter collaborator.
func WithFormatter(f Formatter) Option {
	return func(b *Builder) {
		b.formatter = f
	}
}

// WithValidator sets the external syntax-check collaborator.
func WithValidator(v Validator) Option {
	return func(b *Builder) {
		b.validator = v
	}
}

// NewBuilder creates a [Builder].
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		indentSize: DefaultIndentSize,
		indentChar: DefaultIndentChar,
		imports:    pynode.NewImportManager(),
		formatter:  pytool.DefaultBlack,
		validator:  pytool.DefaultInterpreter,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.indenter = NewIndenter(b.indentSize, b.indentChar)

	return b
}

// currentScope returns the innermost open scope, or nil at root level.
func (b *Builder) currentScope() pynode.Container {
	if len(b.scopes) == 0 {
		return nil
	}

	return b.scopes[len(b.scopes)-1]
}

// addNode appends a node to the innermost open scope, or to the root
// sequence when no scope is open.
func (b *Builder) addNode(n pynode.Node) {
	if scope := b.currentScope(); scope != nil {
		scope.AddChild(n)

		return
	}

	b.nodes = append(b.nodes, n)
}

// openScope appends the block node, pushes it as the innermost scope, and
// runs body one indentation level deeper. The scope stack and indentation
// level are restored on every exit path.
func (b *Builder) openScope(n pynode.Container, body func()) {
	b.addNode(n)
	b.scopes = append(b.scopes, n)
	b.indenter.Increase()

	defer func() {
		b.indenter.Decrease()
		b.scopes = b.scopes[:len(b.scopes)-1]
	}()

	if body != nil {
		body()
	}
}

// ClassOpts contains optional parts of a class definition.
type ClassOpts struct {
	Bases      []string
	Decorators []string
}

// Class opens a class definition and runs body inside it.
func (b *Builder) Class(name string, opts *ClassOpts, body func()) {
	if opts == nil {
		opts = &ClassOpts{}
	}

	b.openScope(pynode.NewClass(name, opts.Bases, opts.Decorators, b.indenter.Level()), body)
}

// FuncOpts contains optional parts of a function or method definition.
type FuncOpts struct {
	Returns    string
	Params     []string
	Decorators []string
	Async      bool
}

// Function opens a function definition and runs body inside it.
func (b *Builder) Function(name string, opts *FuncOpts, body func()) {
	if opts == nil {
		opts = &FuncOpts{}
	}

	b.openScope(pynode.NewFunction(
		name, opts.Params, opts.Returns, opts.Decorators, opts.Async, b.indenter.Level(),
	), body)
}

// Method opens a method definition and runs body inside it. A self/cls
// receiver is injected as the first parameter when opts omits one.
func (b *Builder) Method(name string, opts *FuncOpts, body func()) {
	if opts == nil {
		opts = &FuncOpts{}
	}

	b.openScope(pynode.NewMethod(
		name, opts.Params, opts.Returns, opts.Decorators, opts.Async, b.indenter.Level(),
	), body)
}

// If opens an `if` statement and runs body inside it.
func (b *Builder) If(condition string, body func()) {
	b.openScope(pynode.NewIf(condition, b.indenter.Level()), body)
}

// Elif opens an `elif` statement and runs body inside it.
func (b *Builder) Elif(condition string, body func()) {
	b.openScope(pynode.NewElif(condition, b.indenter.Level()), body)
}

// Else opens an `else` statement and runs body inside it.
func (b *Builder) Else(body func()) {
	b.openScope(pynode.NewElse(b.indenter.Level()), body)
}

// For opens a `for` loop and runs body inside it.
func (b *Builder) For(target, iterable string, body func()) {
	b.openScope(pynode.NewFor(target, iterable, b.indenter.Level()), body)
}

// While opens a `while` loop and runs body inside it.
func (b *Builder) While(condition string, body func()) {
	b.openScope(pynode.NewWhile(condition, b.indenter.Level()), body)
}

// Try opens a `try` block and runs body inside it.
func (b *Builder) Try(body func()) {
	b.openScope(pynode.NewTry(b.indenter.Level()), body)
}

// Except opens an `except` block and runs body inside it. Passing an empty
// exception yields a bare `except:`; as binds the caught exception.
func (b *Builder) Except(exception, as string, body func()) {
	b.openScope(pynode.NewExcept(exception, as, b.indenter.Level()), body)
}

// Finally opens a `finally` block and runs body inside it.
func (b *Builder) Finally(body func()) {
	b.openScope(pynode.NewFinally(b.indenter.Level()), body)
}

// With opens a `with` statement and runs body inside it.
func (b *Builder) With(expression, as string, body func()) {
	b.openScope(pynode.NewWith(expression, as, b.indenter.Level()), body)
}

// Line appends a raw line of code at the current indentation level.
func (b *Builder) Line(code string) {
	b.addNode(pynode.NewRawLine(code, b.indenter.Level()))
}

// Return appends a return statement at the current indentation level.
func (b *Builder) Return(value string) {
	b.Line("return " + value)
}

// Raw appends raw unindented code.
func (b *Builder) Raw(code string) {
	b.addNode(pynode.NewRawLine(code, 0))
}

// Comment appends a `#` comment at the current indentation level.
func (b *Builder) Comment(text string) {
	b.addNode(pynode.NewComment(text, b.indenter.Level()))
}

// Docstring sets the docstring of the innermost open class or function
// scope. Outside such a scope it appends a standalone docstring node.
func (b *Builder) Docstring(text string) {
	if setter, ok := b.currentScope().(pynode.DocstringSetter); ok {
		setter.SetDocstring(text)

		return
	}

	b.addNode(pynode.NewDocstring(text, b.indenter.Level()))
}

// BlankLine appends a single blank line.
func (b *Builder) BlankLine() {
	b.addNode(pynode.NewBlankLine())
}

// BlankLines appends n blank lines.
func (b *Builder) BlankLines(n int) {
	for i := 0; i < n; i++ {
		b.BlankLine()
	}
}

// Attr appends an attribute declaration to the innermost open class scope.
// It returns [pyerrors.ErrInvalidContext] when the innermost scope is not a
// class, without mutating any state.
func (b *Builder) Attr(name, typeHint, defaultValue string) error {
	cls, ok := b.currentScope().(*pynode.Class)
	if !ok {
		return fmt.Errorf("%w: attr %q requires an open class scope", pyerrors.ErrInvalidContext, name)
	}

	cls.AddAttribute(name, typeHint, defaultValue)

	return nil
}

// AddImport adds an import statement. At root level it is registered for
// hoisted emission at the top of the output; inside an open scope it is
// written inline at the current position.
func (b *Builder) AddImport(module, alias string) {
	if b.currentScope() != nil {
		b.Line(pynode.NewImport(module, alias).Render(b.indentSize, b.indentChar))

		return
	}

	b.imports.AddImport(module, alias)
}

// AddFromImport adds a from-import statement. At root level items for the
// same module are merged and hoisted; inside an open scope the statement is
// written inline at the current position.
func (b *Builder) AddFromImport(module string, items []string) {
	if b.currentScope() != nil {
		b.Line(pynode.NewFromImport(module, items).Render(b.indentSize, b.indentChar))

		return
	}

	b.imports.AddFromImport(module, items)
}

// render walks the import table and the root sequence into final text.
func (b *Builder) render() string {
	importNodes := b.imports.Nodes()

	lines := make([]string, 0, len(importNodes)+len(b.nodes))
	for _, imp := range importNodes {
		lines = append(lines, imp.Render(b.indentSize, b.indentChar))
	}

	// Two separator lines between imports and code.
	if len(importNodes) > 0 && len(b.nodes) > 0 {
		lines = append(lines, "", "")
	}

	for _, n := range b.nodes {
		lines = append(lines, n.Render(b.indentSize, b.indentChar))
	}

	return strings.Join(lines, "\n")
}

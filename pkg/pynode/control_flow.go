package pynode

import "strings"

// body holds the children of a header-plus-body block and renders them with
// a `pass` placeholder when empty.
type body struct {
	Level int

	children []Node
}

// AddChild appends a body node.
func (b *body) AddChild(n Node) {
	b.children = append(b.children, n)
}

// render renders the header line followed by the block body.
func (b *body) render(header string, indentSize int, indentChar string) string {
	lines := []string{Indent(indentSize, indentChar, b.Level) + header}

	for _, child := range b.children {
		lines = append(lines, child.Render(indentSize, indentChar))
	}

	if len(b.children) == 0 {
		lines = append(lines, Indent(indentSize, indentChar, b.Level+1)+"pass")
	}

	return strings.Join(lines, "\n")
}

// If is an `if` statement.
type If struct {
	body

	Condition string
}

// NewIf creates an [If] at the given indent level.
func NewIf(condition string, level int) *If {
	return &If{Condition: condition, body: body{Level: level}}
}

// Render renders the if statement.
func (n *If) Render(indentSize int, indentChar string) string {
	return n.render("if "+n.Condition+":", indentSize, indentChar)
}

// Elif is an `elif` statement.
type Elif struct {
	body

	Condition string
}

// NewElif creates an [Elif] at the given indent level.
func NewElif(condition string, level int) *Elif {
	return &Elif{Condition: condition, body: body{Level: level}}
}

// Render renders the elif statement.
func (n *Elif) Render(indentSize int, indentChar string) string {
	return n.render("elif "+n.Condition+":", indentSize, indentChar)
}

// Else is an `else` statement.
type Else struct {
	body
}

// NewElse creates an [Else] at the given indent level.
func NewElse(level int) *Else {
	return &Else{body: body{Level: level}}
}

// Render renders the else statement.
func (n *Else) Render(indentSize int, indentChar string) string {
	return n.render("else:", indentSize, indentChar)
}

// For is a `for` loop.
type For struct {
	body

	Target   string
	Iterable string
}

// NewFor creates a [For] at the given indent level.
func NewFor(target, iterable string, level int) *For {
	return &For{Target: target, Iterable: iterable, body: body{Level: level}}
}

// Render renders the for loop.
func (n *For) Render(indentSize int, indentChar string) string {
	return n.render("for "+n.Target+" in "+n.Iterable+":", indentSize, indentChar)
}

// While is a `while` loop.
type While struct {
	body

	Condition string
}

// NewWhile creates a [While] at the given indent level.
func NewWhile(condition string, level int) *While {
	return &While{Condition: condition, body: body{Level: level}}
}

// Render renders the while loop.
func (n *While) Render(indentSize int, indentChar string) string {
	return n.render("while "+n.Condition+":", indentSize, indentChar)
}

// Try is a `try` block.
type Try struct {
	body
}

// NewTry creates a [Try] at the given indent level.
func NewTry(level int) *Try {
	return &Try{body: body{Level: level}}
}

// Render renders the try block.
func (n *Try) Render(indentSize int, indentChar string) string {
	return n.render("try:", indentSize, indentChar)
}

// Except is an `except` block. Exception and As are optional; an empty
// Exception yields a bare `except:`.
type Except struct {
	body

	Exception string
	As        string
}

// NewExcept creates an [Except] at the given indent level.
func NewExcept(exception, as string, level int) *Except {
	return &Except{Exception: exception, As: as, body: body{Level: level}}
}

// Render renders the except block.
func (n *Except) Render(indentSize int, indentChar string) string {
	header := "except"
	if n.Exception != "" {
		header += " " + n.Exception
		if n.As != "" {
			header += " as " + n.As
		}
	}

	return n.render(header+":", indentSize, indentChar)
}

// Finally is a `finally` block.
type Finally struct {
	body
}

// NewFinally creates a [Finally] at the given indent level.
func NewFinally(level int) *Finally {
	return &Finally{body: body{Level: level}}
}

// Render renders the finally block.
func (n *Finally) Render(indentSize int, indentChar string) string {
	return n.render("finally:", indentSize, indentChar)
}

// With is a `with` statement. As is optional.
type With struct {
	body

	Expression string
	As         string
}

// NewWith creates a [With] at the given indent level.
func NewWith(expression, as string, level int) *With {
	return &With{Expression: expression, As: as, body: body{Level: level}}
}

// Render renders the with statement.
func (n *With) Render(indentSize int, indentChar string) string {
	header := "with " + n.Expression
	if n.As != "" {
		header += " as " + n.As
	}

	return n.render(header+":", indentSize, indentChar)
}

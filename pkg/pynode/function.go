package pynode

import "strings"

// Function is a Python function or method definition.
type Function struct {
	Name       string
	Params     []string
	Returns    string
	Decorators []string
	Async      bool
	Level      int

	docstring string
	children  []Node
}

// NewFunction creates a [Function] at the given indent level.
func NewFunction(name string, params []string, returns string, decorators []string, async bool, level int) *Function {
	return &Function{
		Name:       name,
		Params:     params,
		Returns:    returns,
		Decorators: decorators,
		Async:      async,
		Level:      level,
	}
}

// NewMethod creates a [Function] for use inside a class body. A self/cls
// receiver is injected as the first parameter when the caller omits one.
func NewMethod(name string, params []string, returns string, decorators []string, async bool, level int) *Function {
	switch {
	case len(params) == 0:
		params = []string{"self"}
	case !strings.Contains(params[0], "self") && !strings.Contains(params[0], "cls"):
		params = append([]string{"self"}, params...)
	}

	return NewFunction(name, params, returns, decorators, async, level)
}

// AddChild appends a body node.
func (n *Function) AddChild(c Node) {
	n.children = append(n.children, c)
}

// SetDocstring sets the function docstring.
func (n *Function) SetDocstring(text string) {
	n.docstring = text
}

// Render renders the function definition. A function with no docstring and
// no children gets a `pass` placeholder body.
func (n *Function) Render(indentSize int, indentChar string) string {
	var lines []string

	indent := Indent(indentSize, indentChar, n.Level)

	if len(n.Decorators) > 0 {
		lines = append(lines, renderDecorators(n.Decorators, indentSize, indentChar, n.Level)...)
	}

	def := "def "
	if n.Async {
		def = "async def "
	}

	returns := ""
	if n.Returns != "" {
		returns = " -> " + n.Returns
	}

	lines = append(lines, indent+def+n.Name+"("+strings.Join(n.Params, ", ")+")"+returns+":")

	if n.docstring != "" {
		lines = append(lines, renderDocstring(n.docstring, indentSize, indentChar, n.Level+1)...)
	}

	for _, child := range n.children {
		// Unlike class and control-flow bodies, blank lines are elided from
		// function bodies.
		if rendered := child.Render(indentSize, indentChar); rendered != "" {
			lines = append(lines, rendered)
		}
	}

	if n.docstring == "" && len(n.children) == 0 {
		lines = append(lines, Indent(indentSize, indentChar, n.Level+1)+"pass")
	}

	return strings.Join(lines, "\n")
}

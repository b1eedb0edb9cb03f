package pynode

import "strings"

// Attribute is a class-member declaration with a type annotation, e.g.
// `name: str = "default"`.
type Attribute struct {
	Name     string
	TypeHint string
	Default  string
	Level    int
}

// NewAttribute creates an [Attribute] at the given indent level.
func NewAttribute(name, typeHint, defaultValue string, level int) *Attribute {
	return &Attribute{Name: name, TypeHint: typeHint, Default: defaultValue, Level: level}
}

// Render renders the attribute declaration.
func (n *Attribute) Render(indentSize int, indentChar string) string {
	indent := Indent(indentSize, indentChar, n.Level)
	if n.Default != "" {
		return indent + n.Name + ": " + n.TypeHint + " = " + n.Default
	}

	return indent + n.Name + ": " + n.TypeHint
}

// Class is a Python class definition.
type Class struct {
	Name       string
	Bases      []string
	Decorators []string
	Level      int

	docstring  string
	attributes []*Attribute
	children   []Node
}

// NewClass creates a [Class] at the given indent level.
func NewClass(name string, bases, decorators []string, level int) *Class {
	return &Class{Name: name, Bases: bases, Decorators: decorators, Level: level}
}

// AddChild appends a body node (method, nested class, statement).
func (n *Class) AddChild(c Node) {
	n.children = append(n.children, c)
}

// AddAttribute appends an attribute declaration, rendered after the
// docstring and before any other body nodes.
func (n *Class) AddAttribute(name, typeHint, defaultValue string) {
	n.attributes = append(n.attributes, NewAttribute(name, typeHint, defaultValue, n.Level+1))
}

// SetDocstring sets the class docstring.
func (n *Class) SetDocstring(text string) {
	n.docstring = text
}

// Render renders the class definition. A class with no docstring, attributes,
// or children gets a `pass` placeholder body.
func (n *Class) Render(indentSize int, indentChar string) string {
	var lines []string

	indent := Indent(indentSize, indentChar, n.Level)

	if len(n.Decorators) > 0 {
		lines = append(lines, renderDecorators(n.Decorators, indentSize, indentChar, n.Level)...)
	}

	bases := ""
	if len(n.Bases) > 0 {
		bases = "(" + strings.Join(n.Bases, ", ") + ")"
	}

	lines = append(lines, indent+"class "+n.Name+bases+":")

	if n.docstring != "" {
		lines = append(lines, renderDocstring(n.docstring, indentSize, indentChar, n.Level+1)...)
	}

	for _, attr := range n.attributes {
		lines = append(lines, attr.Render(indentSize, indentChar))
	}

	for _, child := range n.children {
		lines = append(lines, child.Render(indentSize, indentChar))
	}

	if n.docstring == "" && len(n.attributes) == 0 && len(n.children) == 0 {
		lines = append(lines, Indent(indentSize, indentChar, n.Level+1)+"pass")
	}

	return strings.Join(lines, "\n")
}

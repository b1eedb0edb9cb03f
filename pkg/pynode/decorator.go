package pynode

import "strings"

// Decorator is a `@decorator` line above a class or function definition.
type Decorator struct {
	Name  string
	Level int
}

// NewDecorator creates a [Decorator] at the given indent level. The `@`
// prefix is added if absent.
func NewDecorator(name string, level int) *Decorator {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}

	return &Decorator{Name: name, Level: level}
}

// Render renders the decorator.
func (n *Decorator) Render(indentSize int, indentChar string) string {
	return Indent(indentSize, indentChar, n.Level) + n.Name
}

// renderDecorators renders decorator strings one per line, at the same level
// as the declaration they precede.
func renderDecorators(decorators []string, indentSize int, indentChar string, level int) []string {
	lines := make([]string, 0, len(decorators))
	for _, dec := range decorators {
		lines = append(lines, NewDecorator(dec, level).Render(indentSize, indentChar))
	}

	return lines
}

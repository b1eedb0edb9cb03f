package pynode

import (
	"strings"
)

// Node is one element of the generated Python source tree.
type Node interface {
	// Render produces the Python code for this node and all of its children,
	// newline-joined, without a trailing newline.
	Render(indentSize int, indentChar string) string
}

// Container is implemented by nodes that hold a body of child nodes.
type Container interface {
	Node

	AddChild(n Node)
}

// DocstringSetter is implemented by nodes that carry their own docstring,
// rendered as the first line(s) of their body.
type DocstringSetter interface {
	Node

	SetDocstring(text string)
}

// Indent returns the indentation prefix for the given level.
func Indent(indentSize int, indentChar string, level int) string {
	return strings.Repeat(indentChar, indentSize*level)
}

// renderDocstring renders a triple-quoted docstring at the given level.
// Single-line text collapses to one line.
func renderDocstring(text string, indentSize int, indentChar string, level int) []string {
	indent := Indent(indentSize, indentChar, level)

	if !strings.Contains(text, "\n") {
		return []string{indent + `"""` + text + `"""`}
	}

	lines := []string{indent + `"""`}
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, indent+line)
	}

	return append(lines, indent+`"""`)
}

// RawLine is a raw line of code rendered verbatim at its level.
type RawLine struct {
	Code  string
	Level int
}

// NewRawLine creates a [RawLine] at the given indent level.
func NewRawLine(code string, level int) *RawLine {
	return &RawLine{Code: code, Level: level}
}

// Render renders the raw line. Whitespace-only code collapses to an empty
// string rather than a whitespace-only line.
func (n *RawLine) Render(indentSize int, indentChar string) string {
	if strings.TrimSpace(n.Code) == "" {
		return ""
	}

	return Indent(indentSize, indentChar, n.Level) + n.Code
}

// BlankLine is a blank line.
type BlankLine struct{}

// NewBlankLine creates a [BlankLine].
func NewBlankLine() *BlankLine {
	return &BlankLine{}
}

// Render renders the blank line as an empty string.
func (n *BlankLine) Render(_ int, _ string) string {
	return ""
}

// Comment is a `#` comment line.
type Comment struct {
	Text  string
	Level int
}

// NewComment creates a [Comment] at the given indent level. Text must not
// include the `#` prefix.
func NewComment(text string, level int) *Comment {
	return &Comment{Text: text, Level: level}
}

// Render renders the comment.
func (n *Comment) Render(indentSize int, indentChar string) string {
	return Indent(indentSize, indentChar, n.Level) + "# " + n.Text
}

// Docstring is a standalone triple-quoted docstring (module-level, etc.).
type Docstring struct {
	Text  string
	Level int
}

// NewDocstring creates a [Docstring] at the given indent level.
func NewDocstring(text string, level int) *Docstring {
	return &Docstring{Text: text, Level: level}
}

// Render renders the docstring.
func (n *Docstring) Render(indentSize int, indentChar string) string {
	return strings.Join(renderDocstring(n.Text, indentSize, indentChar, n.Level), "\n")
}

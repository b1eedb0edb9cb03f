package pygen

import "strings"

// Indenter tracks the current nesting level and produces indentation strings.
type Indenter struct {
	char  string
	size  int
	level int
}

// NewIndenter creates an [Indenter] at level 0.
func NewIndenter(size int, char string) *Indenter {
	return &Indenter{size: size, char: char}
}

// Level returns the current nesting level.
func (i *Indenter) Level() int {
	return i.level
}

// Increase increases the nesting level by one. There is no upper bound.
func (i *Indenter) Increase() {
	i.level++
}

// Decrease decreases the nesting level by one. Decreasing below zero is a
// silent no-op.
func (i *Indenter) Decrease() {
	i.level = max(0, i.level-1)
}

// String returns the indentation string for the current level.
func (i *Indenter) String() string {
	return strings.Repeat(i.char, i.size*i.level)
}

// Indented runs fn one level deeper, restoring the level on every exit path,
// including panics.
func (i *Indenter) Indented(fn func()) {
	i.Increase()
	defer i.Decrease()

	fn()
}

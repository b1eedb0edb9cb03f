package pymodule

import (
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/macropower/pycraft/pkg/pyerrors"
)

// Module is one Python module definition, decoded from a YAML document.
type Module struct {
	// Module name, converted to snake_case for the output file name.
	Name string `json:"name"      yaml:"name"`
	// Module docstring, rendered below the hoisted imports.
	Docstring string `json:"docstring,omitempty" yaml:"docstring"`
	// Imports hoisted to the top of the module.
	Imports []Import `json:"imports,omitempty"   yaml:"imports"`
	// Class definitions.
	Classes []Class `json:"classes,omitempty"   yaml:"classes"`
	// Free function definitions.
	Functions []Function `json:"functions,omitempty" yaml:"functions"`
}

// Import is one import directive. Items selects the from-import form.
type Import struct {
	// Module to import.
	Module string `json:"module"          yaml:"module"`
	// Optional alias (`import module as alias`). Ignored when items are set.
	Alias string `json:"alias,omitempty" yaml:"alias"`
	// Items to import from the module (`from module import a, b`).
	Items []string `json:"items,omitempty" yaml:"items"`
}

// Class is one class definition.
type Class struct {
	// Class name, converted to PascalCase.
	Name string `json:"name"                 yaml:"name"`
	// Class docstring.
	Docstring string `json:"docstring,omitempty"  yaml:"docstring"`
	// Base class names, emitted as written.
	Bases []string `json:"bases,omitempty"      yaml:"bases"`
	// Decorators, with or without the `@` prefix.
	Decorators []string `json:"decorators,omitempty" yaml:"decorators"`
	// Typed attribute declarations.
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes"`
	// Method definitions. A self receiver is injected when omitted.
	Methods []Function `json:"methods,omitempty"    yaml:"methods"`
}

// Attribute is one typed class attribute.
type Attribute struct {
	// Attribute name, converted to snake_case.
	Name string `json:"name"              yaml:"name"`
	// Python type annotation, emitted as written.
	Type string `json:"type"              yaml:"type"`
	// Optional default value expression, emitted as written.
	Default string `json:"default,omitempty" yaml:"default"`
}

// Function is one function or method definition.
type Function struct {
	// Function name, converted to snake_case.
	Name string `json:"name"                 yaml:"name"`
	// Docstring.
	Docstring string `json:"docstring,omitempty"  yaml:"docstring"`
	// Return type annotation, emitted as written.
	Returns string `json:"returns,omitempty"    yaml:"returns"`
	// Parameter declarations, emitted as written (e.g. "name: str = ''").
	Params []string `json:"params,omitempty"     yaml:"params"`
	// Decorators, with or without the `@` prefix.
	Decorators []string `json:"decorators,omitempty" yaml:"decorators"`
	// Raw body lines, emitted as written at body indentation.
	Body []string `json:"body,omitempty"       yaml:"body"`
	// Whether to emit `async def`.
	Async bool `json:"async,omitempty"      yaml:"async"`
}

// Load decodes a definition document, rejecting unknown fields.
func Load(r io.Reader) (*Module, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	m := &Module{}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %w", pyerrors.ErrInvalidDefinition, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadFile decodes the definition document at path.
func LoadFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pyerrors.ErrInvalidDefinition, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Validate checks that the definition names everything it must.
func (m *Module) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: module name is required", pyerrors.ErrInvalidDefinition)
	}

	for _, imp := range m.Imports {
		if imp.Module == "" {
			return fmt.Errorf("%w: import module is required", pyerrors.ErrInvalidDefinition)
		}
	}

	for _, cls := range m.Classes {
		if cls.Name == "" {
			return fmt.Errorf("%w: class name is required", pyerrors.ErrInvalidDefinition)
		}

		for _, attr := range cls.Attributes {
			if attr.Name == "" || attr.Type == "" {
				return fmt.Errorf(
					"%w: class %q: attribute name and type are required",
					pyerrors.ErrInvalidDefinition, cls.Name,
				)
			}
		}

		for _, method := range cls.Methods {
			if method.Name == "" {
				return fmt.Errorf(
					"%w: class %q: method name is required",
					pyerrors.ErrInvalidDefinition, cls.Name,
				)
			}
		}
	}

	for _, fn := range m.Functions {
		if fn.Name == "" {
			return fmt.Errorf("%w: function name is required", pyerrors.ErrInvalidDefinition)
		}
	}

	return nil
}

// FileName returns the snake_case output file name for the module.
func (m *Module) FileName() string {
	return strcase.ToSnake(m.Name) + ".py"
}

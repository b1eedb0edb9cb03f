package pynode

import (
	"sort"
	"strings"
)

// Import is a plain import statement (`import x`, `import x as y`).
// Imports are never indented.
type Import struct {
	Module string
	Alias  string
}

// NewImport creates an [Import].
func NewImport(module, alias string) *Import {
	return &Import{Module: module, Alias: alias}
}

// Render renders the import statement.
func (n *Import) Render(_ int, _ string) string {
	if n.Alias != "" {
		return "import " + n.Module + " as " + n.Alias
	}

	return "import " + n.Module
}

// FromImport is a from-import statement (`from x import y, z`).
// From-imports are never indented.
type FromImport struct {
	Module string
	Items  []string
}

// NewFromImport creates a [FromImport].
func NewFromImport(module string, items []string) *FromImport {
	return &FromImport{Module: module, Items: items}
}

// Render renders the from-import statement.
func (n *FromImport) Render(_ int, _ string) string {
	return "from " + n.Module + " import " + strings.Join(n.Items, ", ")
}

// importKey deduplicates plain imports by explicit (module, alias) key.
type importKey struct {
	module string
	alias  string
}

// ImportManager collects import directives, deduplicating plain imports and
// merging from-imports that share a module.
type ImportManager struct {
	imports     map[importKey]struct{}
	fromImports map[string]map[string]struct{}
}

// NewImportManager creates an empty [ImportManager].
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports:     map[importKey]struct{}{},
		fromImports: map[string]map[string]struct{}{},
	}
}

// AddImport registers a plain import. Registering an existing
// (module, alias) pair is a no-op.
func (m *ImportManager) AddImport(module, alias string) {
	m.imports[importKey{module: module, alias: alias}] = struct{}{}
}

// AddFromImport registers a from-import. Items for an already-registered
// module are merged by set union.
func (m *ImportManager) AddFromImport(module string, items []string) {
	set, ok := m.fromImports[module]
	if !ok {
		set = map[string]struct{}{}
		m.fromImports[module] = set
	}

	for _, item := range items {
		set[item] = struct{}{}
	}
}

// Nodes returns all import nodes for emission: plain imports sorted by
// module, followed by from-imports sorted by module, each with its items
// sorted lexicographically.
func (m *ImportManager) Nodes() []Node {
	nodes := make([]Node, 0, len(m.imports)+len(m.fromImports))

	keys := make([]importKey, 0, len(m.imports))
	for key := range m.imports {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].module != keys[j].module {
			return keys[i].module < keys[j].module
		}

		return keys[i].alias < keys[j].alias
	})

	for _, key := range keys {
		nodes = append(nodes, NewImport(key.module, key.alias))
	}

	modules := make([]string, 0, len(m.fromImports))
	for module := range m.fromImports {
		modules = append(modules, module)
	}

	sort.Strings(modules)

	for _, module := range modules {
		items := make([]string, 0, len(m.fromImports[module]))
		for item := range m.fromImports[module] {
			items = append(items, item)
		}

		sort.Strings(items)
		nodes = append(nodes, NewFromImport(module, items))
	}

	return nodes
}

// Len reports the number of registered import directives.
func (m *ImportManager) Len() int {
	return len(m.imports) + len(m.fromImports)
}

// Clear empties both collections.
func (m *ImportManager) Clear() {
	m.imports = map[importKey]struct{}{}
	m.fromImports = map[string]map[string]struct{}{}
}

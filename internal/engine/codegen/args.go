package codegen

import "go.trai.ch/quill/internal/core/domain"

// ArgTable is the insertion-ordered argument declaration table of one unit.
// Redeclaring a name replaces its type in place without moving it.
type ArgTable struct {
	order []string
	decls map[string]domain.ArgumentDeclaration
}

// NewArgTable creates an empty table.
func NewArgTable() *ArgTable {
	return &ArgTable{decls: make(map[string]domain.ArgumentDeclaration)}
}

// Declare inserts or overwrites the declaration of name.
func (t *ArgTable) Declare(typ, name string) {
	if _, exists := t.decls[name]; !exists {
		t.order = append(t.order, name)
	}
	t.decls[name] = domain.ArgumentDeclaration{Name: name, Type: domain.ParseType(typ)}
}

// Get returns the declaration of name.
func (t *ArgTable) Get(name string) (domain.ArgumentDeclaration, bool) {
	d, ok := t.decls[name]
	return d, ok
}

// Len returns the number of declarations.
func (t *ArgTable) Len() int {
	return len(t.order)
}

// All returns the declarations in table order.
func (t *ArgTable) All() []domain.ArgumentDeclaration {
	out := make([]domain.ArgumentDeclaration, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.decls[name])
	}
	return out
}

package scopes

import (
	"sort"

	"github.com/funvibe/fxresolve/internal/ast"
)

// NestedClassifierScope indexes the classes declared directly in a class
// body as they are when it is created; it holds at most one class per name.
// ClassMemberScope creates it only after its member index is built.
type NestedClassifierScope struct {
	classes map[string]*ast.ClassDeclaration
}

func NewNestedClassifierScope(klass *ast.ClassDeclaration) *NestedClassifierScope {
	s := &NestedClassifierScope{classes: make(map[string]*ast.ClassDeclaration)}
	for _, decl := range klass.Members {
		nested, ok := decl.(*ast.ClassDeclaration)
		if !ok || !nested.IsRegular() {
			continue
		}
		if _, exists := s.classes[nested.Name]; !exists {
			s.classes[nested.Name] = nested
		}
	}
	return s
}

func (s *NestedClassifierScope) LookupFunctions(string, CallableProcessor) ProcessorAction {
	return Next
}

func (s *NestedClassifierScope) LookupProperties(string, CallableProcessor) ProcessorAction {
	return Next
}

func (s *NestedClassifierScope) LookupClassifiers(name string, process ClassifierProcessor) ProcessorAction {
	nested, ok := s.classes[name]
	if !ok {
		return Next
	}
	return process(nested.Sym)
}

// Class returns the nested class declaration with the given name.
func (s *NestedClassifierScope) Class(name string) (*ast.ClassDeclaration, bool) {
	c, ok := s.classes[name]
	return c, ok
}

// ClassifierNames returns the names of the nested classes, sorted.
func (s *NestedClassifierScope) ClassifierNames() []string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

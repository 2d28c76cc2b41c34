package scopes

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/symbols"
)

// callableIndex maps a member name to its symbols in declaration order.
type callableIndex map[string][]*symbols.Callable

// ClassMemberScope indexes the callables declared directly in a class body.
//
// The index is built on the first lookup of any kind and never again. Before
// indexing, the class symbol's pending completion (if any) is taken and run.
// Concurrent first lookups are safe: exactly one of them builds the index and
// all of them observe the result. Building is not reentrant; a completion step
// must not query the scope it completes.
type ClassMemberScope struct {
	klass  *ast.ClassDeclaration
	nested func() *NestedClassifierScope
	index  func() callableIndex
	built  atomic.Bool
	log    zerolog.Logger
}

func NewClassMemberScope(klass *ast.ClassDeclaration) *ClassMemberScope {
	return newClassMemberScope(klass, zerolog.Nop())
}

func newClassMemberScope(klass *ast.ClassDeclaration, log zerolog.Logger) *ClassMemberScope {
	s := &ClassMemberScope{
		klass: klass,
		log:   log,
	}
	s.index = sync.OnceValue(s.buildIndex)
	s.nested = sync.OnceValue(func() *NestedClassifierScope {
		// Nested classes added by the pending completion must be visible.
		s.index()
		return NewNestedClassifierScope(klass)
	})
	return s
}

// Class returns the declaration this scope indexes.
func (s *ClassMemberScope) Class() *ast.ClassDeclaration {
	return s.klass
}

// NestedClassifiers returns the scope used for classifier lookups. Like any
// lookup, it builds the member index first.
func (s *ClassMemberScope) NestedClassifiers() *NestedClassifierScope {
	return s.nested()
}

// Built reports whether the index has been computed.
func (s *ClassMemberScope) Built() bool {
	return s.built.Load()
}

func (s *ClassMemberScope) buildIndex() callableIndex {
	completed := false
	if sym := s.klass.Sym; sym != nil {
		if complete := sym.TakePendingCompletion(); complete != nil {
			complete()
			completed = true
		}
	}

	index := make(callableIndex)
	for _, decl := range s.klass.Members {
		switch d := decl.(type) {
		case *ast.ConstructorDeclaration:
			// Constructors are found under the class name; only regular
			// classes contribute one.
			if !s.klass.IsRegular() {
				continue
			}
			index[s.klass.Name] = append(index[s.klass.Name], d.Sym)
		case ast.CallableDeclaration:
			index[d.CallableName()] = append(index[d.CallableName()], d.Symbol())
		case *ast.ClassDeclaration:
			if !d.IsRegular() {
				continue
			}
			// Nested constructors make Outer.Nested(...) visible from here.
			for _, nestedDecl := range d.Members {
				if ctor, ok := nestedDecl.(*ast.ConstructorDeclaration); ok {
					index[d.Name] = append(index[d.Name], ctor.Sym)
				}
			}
		}
	}

	s.built.Store(true)
	s.log.Debug().
		Str("class", s.klass.Name).
		Int("names", len(index)).
		Bool("completed", completed).
		Msg("member index built")
	return index
}

func (s *ClassMemberScope) LookupFunctions(name string, process CallableProcessor) ProcessorAction {
	return s.lookup(name, (*symbols.Callable).IsFunction, process)
}

func (s *ClassMemberScope) LookupProperties(name string, process CallableProcessor) ProcessorAction {
	return s.lookup(name, (*symbols.Callable).IsVariable, process)
}

func (s *ClassMemberScope) LookupClassifiers(name string, process ClassifierProcessor) ProcessorAction {
	return s.nested().LookupClassifiers(name, process)
}

func (s *ClassMemberScope) lookup(name string, accept func(*symbols.Callable) bool, process CallableProcessor) ProcessorAction {
	for _, sym := range s.index()[name] {
		if !accept(sym) {
			continue
		}
		if process(sym) == Stop {
			return Stop
		}
	}
	return Next
}

// CallableNames returns every indexed name, sorted.
func (s *ClassMemberScope) CallableNames() []string {
	index := s.index()
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package symbols

import "sort"

// DefineClass registers a class symbol under its own name. If a symbol with
// the same name is already defined in this table, it is returned and nothing
// changes.
func (s *SymbolTable) DefineClass(c *Class, origin string) (Symbol, bool) {
	return s.DefineClassAs(c.Name, c, origin)
}

// DefineClassAs registers a class symbol under another name, e.g. the simple
// name of a nested class inside its outer class.
func (s *SymbolTable) DefineClassAs(name string, c *Class, origin string) (Symbol, bool) {
	return s.define(Symbol{Name: name, Kind: ClassSymbol, Class: c, OriginModule: origin})
}

// DefineTypeParameter registers a type parameter name.
func (s *SymbolTable) DefineTypeParameter(name string) (Symbol, bool) {
	return s.define(Symbol{Name: name, Kind: TypeParameterSymbol})
}

func (s *SymbolTable) define(sym Symbol) (Symbol, bool) {
	if existing, ok := s.store[sym.Name]; ok {
		return existing, false
	}
	s.store[sym.Name] = sym
	s.order = append(s.order, sym.Name)
	return sym, true
}

// Find looks a name up in this table and then in the outer tables.
func (s *SymbolTable) Find(name string) (Symbol, bool) {
	sym, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.Find(name)
	}
	return sym, ok
}

// IsDefined reports whether name is defined in this table itself.
func (s *SymbolTable) IsDefined(name string) bool {
	_, ok := s.store[name]
	return ok
}

// Names returns the names defined in this table, sorted.
func (s *SymbolTable) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	sort.Strings(names)
	return names
}

// Classes returns the class symbols of this table in definition order.
func (s *SymbolTable) Classes() []*Class {
	var out []*Class
	for _, name := range s.order {
		if sym := s.store[name]; sym.Kind == ClassSymbol {
			out = append(out, sym.Class)
		}
	}
	return out
}

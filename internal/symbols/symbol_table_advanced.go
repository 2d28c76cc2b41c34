package symbols

type ScopeType int

const (
	ScopePrelude ScopeType = iota // Built-in classifiers
	ScopeGlobal                   // Top-level classes of a model
	ScopeClass                    // Type parameters of a class
)

// SymbolTable maps classifier names to symbols. Tables nest: lookups that
// miss in a table continue in its outer table.
type SymbolTable struct {
	store     map[string]Symbol
	order     []string
	outer     *SymbolTable
	scopeType ScopeType
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		store:     make(map[string]Symbol),
		scopeType: ScopeGlobal,
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	return st
}

// Outer returns the outer scope symbol table
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}

// IsGlobalScope returns true if this symbol table is the root (global) scope.
func (s *SymbolTable) IsGlobalScope() bool {
	return s.scopeType == ScopeGlobal
}

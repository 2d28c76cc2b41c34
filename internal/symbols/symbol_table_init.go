package symbols

import (
	"sync"

	"github.com/funvibe/fxresolve/internal/config"
)

// Singleton prelude table containing all built-in classifiers
var (
	preludeTable *SymbolTable
	preludeOnce  sync.Once
)

// BuiltinModule is the origin recorded for built-in classifiers.
const BuiltinModule = "builtin"

// GetPrelude returns the singleton prelude SymbolTable containing all built-in
// classifiers. This table is shared across all models.
func GetPrelude() *SymbolTable {
	preludeOnce.Do(func() {
		preludeTable = NewEmptySymbolTable()
		preludeTable.scopeType = ScopePrelude
		preludeTable.InitBuiltins()
	})
	return preludeTable
}

// NewSymbolTable creates a new global symbol table.
// It inherits from Prelude.
func NewSymbolTable() *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = GetPrelude()
	st.scopeType = ScopeGlobal
	return st
}

func (st *SymbolTable) InitBuiltins() {
	for _, name := range []string{
		config.AnyTypeName,
		config.UnitTypeName,
		"Nothing",
		"Boolean",
		"Char",
		"Byte",
		"Short",
		"Int",
		"Long",
		"Float",
		"Double",
		"String",
		"Array",
		"List",
		"MutableList",
		"Set",
		"Map",
		"Comparable",
	} {
		st.DefineClass(NewClass(name), BuiltinModule)
	}
}

// symbols/symbol_table.go - Main symbol table entry point
//
// The package is split into focused files:
// - symbol_table_core.go: symbol kinds, callable and class symbols
// - symbol_table_advanced.go: SymbolTable struct definition and constructors
// - symbol_table_operations.go: define, find and enumerate operations
// - symbol_table_init.go: the shared prelude of built-in classifiers

package symbols

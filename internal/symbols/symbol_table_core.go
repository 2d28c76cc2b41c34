package symbols

import (
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/fxresolve/internal/typesystem"
)

type SymbolKind int

const (
	FunctionSymbol SymbolKind = iota
	ConstructorSymbol
	PropertySymbol
	FieldSymbol
	EnumEntrySymbol
	ClassSymbol
	TypeParameterSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case FunctionSymbol:
		return "function"
	case ConstructorSymbol:
		return "constructor"
	case PropertySymbol:
		return "property"
	case FieldSymbol:
		return "field"
	case EnumEntrySymbol:
		return "enum entry"
	case ClassSymbol:
		return "class"
	case TypeParameterSymbol:
		return "type parameter"
	default:
		return "unknown"
	}
}

// IsFunction reports whether symbols of this kind are invoked as functions.
func (k SymbolKind) IsFunction() bool {
	return k == FunctionSymbol || k == ConstructorSymbol
}

// IsVariable reports whether symbols of this kind are read as variables.
func (k SymbolKind) IsVariable() bool {
	return k == PropertySymbol || k == FieldSymbol || k == EnumEntrySymbol
}

// Callable is a resolvable handle to a function, constructor or property.
// Overloads share a name, so identity is carried by ID.
type Callable struct {
	ID    uuid.UUID
	Name  string
	Kind  SymbolKind
	Owner string          // Name of the declaring class
	Type  typesystem.Type // Return type for functions, value type for variables
}

func NewCallable(name string, kind SymbolKind, owner string, t typesystem.Type) *Callable {
	return &Callable{ID: uuid.New(), Name: name, Kind: kind, Owner: owner, Type: t}
}

func (c *Callable) IsFunction() bool { return c.Kind.IsFunction() }
func (c *Callable) IsVariable() bool { return c.Kind.IsVariable() }

func (c *Callable) String() string {
	if c.Owner != "" {
		return c.Kind.String() + " " + c.Owner + "." + c.Name
	}
	return c.Kind.String() + " " + c.Name
}

// Class is the symbol of a class declaration.
//
// A class may carry a pending completion: a one-shot step that finishes its
// member list once supertypes are resolved. Whoever builds the member index
// takes the step and runs it; taking clears it so it never runs twice.
type Class struct {
	ID   uuid.UUID
	Name string

	mu                sync.Mutex
	pendingCompletion func()
}

func NewClass(name string) *Class {
	return &Class{ID: uuid.New(), Name: name}
}

// SetPendingCompletion installs the deferred completion step.
func (c *Class) SetPendingCompletion(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingCompletion = fn
}

// TakePendingCompletion returns the deferred completion step, if any, and
// clears it.
func (c *Class) TakePendingCompletion() func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn := c.pendingCompletion
	c.pendingCompletion = nil
	return fn
}

// HasPendingCompletion reports whether a completion step is still installed.
func (c *Class) HasPendingCompletion() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingCompletion != nil
}

func (c *Class) String() string {
	return "class " + c.Name
}

// Symbol is an entry of a SymbolTable: a classifier visible by name.
type Symbol struct {
	Name         string
	Kind         SymbolKind // ClassSymbol or TypeParameterSymbol
	Class        *Class     // Set for ClassSymbol
	OriginModule string     // Module where the symbol was defined
}

// TCon returns the classifier reference naming this symbol.
func (s Symbol) TCon() typesystem.TCon {
	if s.Kind == TypeParameterSymbol {
		return typesystem.TCon{Name: s.Name, Kind: typesystem.ParamCon}
	}
	name := s.Name
	if s.Class != nil {
		name = s.Class.Name
	}
	module := s.OriginModule
	if module == BuiltinModule {
		module = ""
	}
	return typesystem.TCon{Name: name, Module: module, Kind: typesystem.ClassCon}
}

package ast

import (
	"github.com/funvibe/fxresolve/internal/config"
	"github.com/funvibe/fxresolve/internal/symbols"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

// Node is the base interface for all declaration nodes.
type Node interface {
	Accept(v Visitor)
}

// Declaration is a Node that may appear in a class body.
type Declaration interface {
	Node
	declarationNode()
}

// CallableDeclaration is a declaration resolved through a callable symbol:
// functions, constructors and properties.
type CallableDeclaration interface {
	Declaration
	CallableName() string
	Symbol() *symbols.Callable
}

// Visitor is implemented by consumers walking declarations.
type Visitor interface {
	VisitProgram(*Program)
	VisitClassDeclaration(*ClassDeclaration)
	VisitFunctionDeclaration(*FunctionDeclaration)
	VisitConstructorDeclaration(*ConstructorDeclaration)
	VisitPropertyDeclaration(*PropertyDeclaration)
}

// Program is the root of a loaded model: its top-level classes in source order.
type Program struct {
	File    string // Source file path
	Module  string
	Classes []*ClassDeclaration
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Class returns the top-level class with the given name.
func (p *Program) Class(name string) (*ClassDeclaration, bool) {
	for _, c := range p.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ClassKind distinguishes class-like declarations.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindEnum
	ClassKindObject
	ClassKindAnonymousObject
)

func (k ClassKind) String() string {
	switch k {
	case ClassKindClass:
		return "class"
	case ClassKindInterface:
		return "interface"
	case ClassKindEnum:
		return "enum class"
	case ClassKindObject:
		return "object"
	case ClassKindAnonymousObject:
		return "object"
	default:
		return "<???>"
	}
}

// ClassDeclaration represents a class, interface, enum, object or anonymous
// object body.
type ClassDeclaration struct {
	Name       string
	Module     string // Origin module of the class symbol
	Kind       ClassKind
	TypeParams []string
	Members    []Declaration
	Sym        *symbols.Class
}

func NewClass(name string, kind ClassKind) *ClassDeclaration {
	if kind == ClassKindAnonymousObject {
		name = config.AnonymousObjectName
	}
	return &ClassDeclaration{Name: name, Kind: kind, Sym: symbols.NewClass(name)}
}

func (cd *ClassDeclaration) Accept(v Visitor) { v.VisitClassDeclaration(cd) }
func (cd *ClassDeclaration) declarationNode() {}

// IsRegular reports whether the declaration is a regular named class-like
// declaration. Anonymous object bodies are not.
func (cd *ClassDeclaration) IsRegular() bool {
	return cd.Kind != ClassKindAnonymousObject
}

// Add appends members in order and records this class as their owner.
func (cd *ClassDeclaration) Add(members ...Declaration) {
	for _, m := range members {
		if c, ok := m.(CallableDeclaration); ok {
			c.Symbol().Owner = cd.Name
		}
		if ctor, ok := m.(*ConstructorDeclaration); ok && ctor.Sym.Type == nil {
			ctor.Sym.Type = cd.SelfType()
		}
		cd.Members = append(cd.Members, m)
	}
}

// SelfType returns the type of this class applied to its own type parameters.
func (cd *ClassDeclaration) SelfType() typesystem.TSimple {
	name := cd.Name
	if cd.Sym != nil {
		name = cd.Sym.Name
	}
	t := typesystem.TSimple{Con: typesystem.TCon{Name: name, Module: cd.Module}}
	for _, p := range cd.TypeParams {
		t.Args = append(t.Args, typesystem.Projection{
			Type: typesystem.TSimple{Con: typesystem.TCon{Name: p, Kind: typesystem.ParamCon}},
		})
	}
	return t
}

// Parameter is a value parameter of a function or constructor.
type Parameter struct {
	Name string
	Type typesystem.Type
}

// FunctionDeclaration represents a named member function.
type FunctionDeclaration struct {
	Name       string
	Params     []Parameter
	ReturnType typesystem.Type
	Sym        *symbols.Callable
}

func NewFunction(name string, returnType typesystem.Type, params ...Parameter) *FunctionDeclaration {
	return &FunctionDeclaration{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Sym:        symbols.NewCallable(name, symbols.FunctionSymbol, "", returnType),
	}
}

func (fd *FunctionDeclaration) Accept(v Visitor)          { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) declarationNode()          {}
func (fd *FunctionDeclaration) CallableName() string      { return fd.Name }
func (fd *FunctionDeclaration) Symbol() *symbols.Callable { return fd.Sym }

// ConstructorDeclaration represents a constructor. Constructors have no name
// of their own; they are found under the name of their class.
type ConstructorDeclaration struct {
	Params []Parameter
	Sym    *symbols.Callable
}

func NewConstructor(params ...Parameter) *ConstructorDeclaration {
	return &ConstructorDeclaration{
		Params: params,
		Sym:    symbols.NewCallable(config.ConstructorName, symbols.ConstructorSymbol, "", nil),
	}
}

func (cd *ConstructorDeclaration) Accept(v Visitor)          { v.VisitConstructorDeclaration(cd) }
func (cd *ConstructorDeclaration) declarationNode()          {}
func (cd *ConstructorDeclaration) CallableName() string      { return config.ConstructorName }
func (cd *ConstructorDeclaration) Symbol() *symbols.Callable { return cd.Sym }

// PropertyKind distinguishes variable-like members.
type PropertyKind int

const (
	PropertyKindProperty PropertyKind = iota
	PropertyKindField
	PropertyKindEnumEntry
)

// PropertyDeclaration represents a property, a field or an enum entry.
type PropertyDeclaration struct {
	Name    string
	Type    typesystem.Type
	Mutable bool
	Kind    PropertyKind
	Sym     *symbols.Callable
}

func NewProperty(name string, t typesystem.Type, kind PropertyKind) *PropertyDeclaration {
	symKind := symbols.PropertySymbol
	switch kind {
	case PropertyKindField:
		symKind = symbols.FieldSymbol
	case PropertyKindEnumEntry:
		symKind = symbols.EnumEntrySymbol
	}
	return &PropertyDeclaration{
		Name: name,
		Type: t,
		Kind: kind,
		Sym:  symbols.NewCallable(name, symKind, "", t),
	}
}

func (pd *PropertyDeclaration) Accept(v Visitor)          { v.VisitPropertyDeclaration(pd) }
func (pd *PropertyDeclaration) declarationNode()          {}
func (pd *PropertyDeclaration) CallableName() string      { return pd.Name }
func (pd *PropertyDeclaration) Symbol() *symbols.Callable { return pd.Sym }

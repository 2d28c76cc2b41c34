package model

import (
	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/config"
	"github.com/funvibe/fxresolve/internal/symbols"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

// Build turns the model into declarations. Class names are registered in a
// global symbol table enclosing the prelude; nested classes are also
// registered under their qualified name (Outer.Inner).
//
// References to unknown classifiers become error types rather than failing
// the build.
func (m *Model) Build(path string) (*ast.Program, *symbols.SymbolTable) {
	b := &builder{
		module:  m.Module,
		table:   symbols.NewSymbolTable(),
		classes: make(map[*ClassSpec]*ast.ClassDeclaration),
	}

	program := &ast.Program{File: path, Module: m.Module}
	for i := range m.Classes {
		program.Classes = append(program.Classes, b.declare(&m.Classes[i], ""))
	}
	for i := range m.Classes {
		b.fill(&m.Classes[i], b.table)
	}
	return program, b.table
}

type builder struct {
	module  string
	table   *symbols.SymbolTable
	classes map[*ClassSpec]*ast.ClassDeclaration
}

func classKind(kind string) ast.ClassKind {
	switch kind {
	case "interface":
		return ast.ClassKindInterface
	case "enum":
		return ast.ClassKindEnum
	case "object":
		return ast.ClassKindObject
	case "anonymous":
		return ast.ClassKindAnonymousObject
	default:
		return ast.ClassKindClass
	}
}

// declare creates the declaration of spec and of every class nested in it,
// registering their names before any member type is resolved.
func (b *builder) declare(spec *ClassSpec, prefix string) *ast.ClassDeclaration {
	decl := ast.NewClass(spec.Name, classKind(spec.Kind))
	decl.Module = b.module
	decl.TypeParams = spec.TypeParams
	b.classes[spec] = decl

	qualified := decl.Name
	if prefix != "" && decl.IsRegular() {
		qualified = prefix + "." + spec.Name
		decl.Sym = symbols.NewClass(qualified)
	}
	if decl.IsRegular() {
		b.table.DefineClass(decl.Sym, b.module)
	}

	for _, members := range [][]MemberSpec{spec.Members, spec.Deferred} {
		for i := range members {
			if nested := members[i].Class; nested != nil {
				b.declare(nested, qualified)
			}
		}
	}
	return decl
}

// fill builds the members of an already declared class.
func (b *builder) fill(spec *ClassSpec, outer *symbols.SymbolTable) {
	decl := b.classes[spec]

	scope := symbols.NewEnclosedSymbolTable(outer, symbols.ScopeClass)
	for _, p := range spec.TypeParams {
		scope.DefineTypeParameter(p)
	}
	for _, members := range [][]MemberSpec{spec.Members, spec.Deferred} {
		for i := range members {
			if nested := members[i].Class; nested != nil && nested.Name != "" {
				scope.DefineClassAs(nested.Name, b.classes[nested].Sym, b.module)
			}
		}
	}

	for i := range spec.Members {
		decl.Add(b.member(&spec.Members[i], decl, scope))
	}

	if len(spec.Deferred) > 0 {
		deferred := make([]ast.Declaration, 0, len(spec.Deferred))
		for i := range spec.Deferred {
			deferred = append(deferred, b.member(&spec.Deferred[i], decl, scope))
		}
		decl.Sym.SetPendingCompletion(func() {
			decl.Add(deferred...)
		})
	}
}

func (b *builder) member(spec *MemberSpec, owner *ast.ClassDeclaration, scope *symbols.SymbolTable) ast.Declaration {
	switch {
	case spec.Function != "":
		returns := b.typeOrDefault(spec.Returns, config.UnitTypeName, scope)
		return ast.NewFunction(spec.Function, returns, b.params(spec.Params, scope)...)
	case spec.Property != "":
		p := ast.NewProperty(spec.Property, b.typeOrDefault(spec.Type, config.AnyTypeName, scope), ast.PropertyKindProperty)
		p.Mutable = spec.Mutable
		return p
	case spec.Field != "":
		f := ast.NewProperty(spec.Field, b.typeOrDefault(spec.Type, config.AnyTypeName, scope), ast.PropertyKindField)
		f.Mutable = spec.Mutable
		return f
	case spec.EnumEntry != "":
		return ast.NewProperty(spec.EnumEntry, owner.SelfType(), ast.PropertyKindEnumEntry)
	case spec.Constructor:
		return ast.NewConstructor(b.params(spec.Params, scope)...)
	default:
		b.fill(spec.Class, scope)
		return b.classes[spec.Class]
	}
}

func (b *builder) params(specs []ParamSpec, scope *symbols.SymbolTable) []ast.Parameter {
	params := make([]ast.Parameter, 0, len(specs))
	for _, p := range specs {
		params = append(params, ast.Parameter{Name: p.Name, Type: b.typeOf(p.Type, scope)})
	}
	return params
}

func (b *builder) typeOrDefault(spec *TypeSpec, name string, scope *symbols.SymbolTable) typesystem.Type {
	if spec == nil {
		spec = &TypeSpec{Name: name}
	}
	return b.typeOf(spec, scope)
}

func (b *builder) typeOf(spec *TypeSpec, scope *symbols.SymbolTable) typesystem.Type {
	if spec.Error != "" {
		return typesystem.NewErrorType(spec.Error)
	}

	var t typesystem.Type
	if spec.Lower != nil {
		t = typesystem.NewFlexible(
			b.typeOf(spec.Lower, scope).(typesystem.TSimple),
			b.typeOf(spec.Upper, scope).(typesystem.TSimple),
		)
	} else {
		sym, ok := scope.Find(spec.Name)
		if !ok {
			return typesystem.NewErrorType("unresolved reference: " + spec.Name)
		}
		simple := typesystem.TSimple{
			Con:         sym.TCon(),
			Args:        b.args(spec.Args, scope),
			Nullable:    spec.Nullable,
			Annotations: annotations(spec.Annotations),
		}
		t = simple
		if spec.Platform {
			t = platformType(simple)
		}
	}

	if spec.Enhancement != nil {
		t = typesystem.WithDecoration(t, typesystem.Enhancement, b.typeOf(spec.Enhancement, scope))
	}
	if spec.Alternative != nil {
		t = typesystem.WithDecoration(t, typesystem.Alternative, b.typeOf(spec.Alternative, scope))
	}
	return t
}

// platformType builds (T..T?) and enhances it when the declaration carries a
// nullability annotation.
func platformType(t typesystem.TSimple) typesystem.Type {
	lower := t.MakeNullable(false).(typesystem.TSimple)
	upper := t.MakeNullable(true).(typesystem.TSimple)
	flexible := typesystem.NewFlexible(lower, upper)

	switch {
	case t.Annotations.Has(config.NonnullAnnotation):
		return typesystem.WithDecoration(flexible, typesystem.Enhancement, lower)
	case t.Annotations.Has(config.NullableAnnotation):
		return typesystem.WithDecoration(flexible, typesystem.Enhancement, upper)
	}
	return flexible
}

func (b *builder) args(specs []ArgSpec, scope *symbols.SymbolTable) []typesystem.Projection {
	if len(specs) == 0 {
		return nil
	}
	args := make([]typesystem.Projection, 0, len(specs))
	for _, a := range specs {
		if a.Star {
			args = append(args, typesystem.StarProjection)
			continue
		}
		variance := typesystem.Invariant
		switch a.Variance {
		case "in":
			variance = typesystem.In
		case "out":
			variance = typesystem.Out
		}
		args = append(args, typesystem.Projection{Variance: variance, Type: b.typeOf(a.Type, scope)})
	}
	return args
}

func annotations(names []string) typesystem.Annotations {
	if len(names) == 0 {
		return nil
	}
	out := make(typesystem.Annotations, 0, len(names))
	for _, name := range names {
		out = append(out, typesystem.Annotation{Name: name})
	}
	return out
}

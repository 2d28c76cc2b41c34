package typesystem

import (
	"fmt"
	"strings"

	"github.com/funvibe/fxresolve/internal/config"
)

// Type is the interface for all types in our system.
// The set of implementations is closed: every type is either a TSimple or a
// TFlexible. Decorations are optional slots carried by both shapes.
type Type interface {
	String() string

	// Apply substitutes type parameters.
	Apply(Subst) Type
	// MakeNullable returns the type with the nullability flag set as specified.
	MakeNullable(nullable bool) Type
	// ReplaceAnnotations returns the type with its annotation set replaced.
	ReplaceAnnotations(Annotations) Type
	// Refine re-points classifier references through the given refiner.
	Refine(Refiner) Type

	// IsError reports whether the type is the error/unresolved marker.
	IsError() bool

	// Enhancement returns the Enhancement payload, or nil.
	Enhancement() Type
	// Alternative returns the Alternative payload, or nil.
	Alternative() Type

	decorations() decorations
	withDecorations(decorations) Type
}

// ConKind distinguishes what a classifier reference points to.
type ConKind int

const (
	ClassCon ConKind = iota // A class, interface or object
	ParamCon                // A type parameter
	ErrorCon                // Error/unresolved marker
)

// TCon represents a classifier reference (e.g. Int, List, or a type parameter T).
type TCon struct {
	Name   string
	Module string // Optional module/package the classifier comes from
	Kind   ConKind
}

func (c TCon) String() string {
	if c.Kind == ErrorCon {
		if c.Name == "" {
			return config.ErrorTypeName
		}
		return fmt.Sprintf("%s(%s)", config.ErrorTypeName, c.Name)
	}
	return c.Name
}

// Variance of a type projection.
type Variance int

const (
	Invariant Variance = iota
	In
	Out
)

func (v Variance) String() string {
	switch v {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return ""
	}
}

// Projection is a type argument: a type with a use-site variance, or a star
// projection which carries no type at all.
type Projection struct {
	Variance Variance
	Type     Type
	Star     bool
}

// StarProjection is the `*` argument.
var StarProjection = Projection{Star: true}

func (p Projection) String() string {
	if p.Star {
		return "*"
	}
	if p.Variance != Invariant {
		return p.Variance.String() + " " + p.Type.String()
	}
	return p.Type.String()
}

// Annotation is a single annotation entry, e.g. @Nonnull or @Named("x").
type Annotation struct {
	Name string
	Args []string
}

func (a Annotation) String() string {
	if len(a.Args) == 0 {
		return "@" + a.Name
	}
	return fmt.Sprintf("@%s(%s)", a.Name, strings.Join(a.Args, ", "))
}

// Annotations is an ordered annotation set.
type Annotations []Annotation

// Has reports whether an annotation with the given name is present.
func (as Annotations) Has(name string) bool {
	for _, a := range as {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (as Annotations) String() string {
	parts := make([]string, 0, len(as))
	for _, a := range as {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

// TSimple represents a classifier applied to arguments
// (e.g. List<out String>?).
type TSimple struct {
	Con         TCon
	Args        []Projection
	Nullable    bool
	Annotations Annotations

	decor decorations
}

// NewErrorType returns the error/unresolved marker type.
func NewErrorType(reason string) TSimple {
	return TSimple{Con: TCon{Name: reason, Kind: ErrorCon}}
}

func (t TSimple) IsError() bool { return t.Con.Kind == ErrorCon }

func (t TSimple) Enhancement() Type { return t.decor.enhancement }
func (t TSimple) Alternative() Type { return t.decor.alternative }

func (t TSimple) decorations() decorations { return t.decor }

// withDecorations leaves error types bare.
func (t TSimple) withDecorations(d decorations) Type {
	if t.IsError() {
		return t
	}
	t.decor = d
	return t
}

// undecorated returns the core of t without any decoration slot.
func (t TSimple) undecorated() TSimple {
	t.decor = decorations{}
	return t
}

func (t TSimple) String() string {
	var sb strings.Builder
	if len(t.Annotations) > 0 {
		sb.WriteString(t.Annotations.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(t.Con.String())
	if len(t.Args) > 0 {
		args := make([]string, 0, len(t.Args))
		for _, arg := range t.Args {
			args = append(args, arg.String())
		}
		sb.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	sb.WriteString(t.decor.String())
	return sb.String()
}

// TFlexible represents a platform type range (lower..upper).
// Bounds are stored undecorated; their decorated views are derived from the
// flexible-level decorations by LowerBound and UpperBound.
type TFlexible struct {
	lower TSimple
	upper TSimple

	decor decorations
}

// NewFlexible builds a flexible type from two bounds. Any decoration carried
// by the bounds is dropped: bound decorations only exist as views derived from
// the flexible-level ones.
func NewFlexible(lower, upper TSimple) TFlexible {
	return TFlexible{lower: lower.undecorated(), upper: upper.undecorated()}
}

// LowerBound returns the lower bound, decorated with the lower projection of
// every flexible-level decoration payload.
func (t TFlexible) LowerBound() TSimple {
	return t.lower.withDecorations(t.decor.project(LowerIfFlexible)).(TSimple)
}

// UpperBound returns the upper bound, decorated with the upper projection of
// every flexible-level decoration payload.
func (t TFlexible) UpperBound() TSimple {
	return t.upper.withDecorations(t.decor.project(UpperIfFlexible)).(TSimple)
}

func (t TFlexible) IsError() bool { return false }

func (t TFlexible) Enhancement() Type { return t.decor.enhancement }
func (t TFlexible) Alternative() Type { return t.decor.alternative }

func (t TFlexible) decorations() decorations { return t.decor }

func (t TFlexible) withDecorations(d decorations) Type {
	t.decor = d
	return t
}

func (t TFlexible) undecorated() TFlexible {
	t.decor = decorations{}
	return t
}

func (t TFlexible) String() string {
	return fmt.Sprintf("(%s..%s)%s", t.lower.String(), t.upper.String(), t.decor.String())
}

// LowerIfFlexible returns the lower bound of a flexible type, or t itself.
func LowerIfFlexible(t Type) Type {
	if f, ok := t.(TFlexible); ok {
		return f.LowerBound()
	}
	return t
}

// UpperIfFlexible returns the upper bound of a flexible type, or t itself.
func UpperIfFlexible(t Type) Type {
	if f, ok := t.(TFlexible); ok {
		return f.UpperBound()
	}
	return t
}

// lowerSimple and upperSimple collapse a type that must occupy a bound slot.
func lowerSimple(t Type) TSimple {
	return LowerIfFlexible(t).(TSimple)
}

func upperSimple(t Type) TSimple {
	return UpperIfFlexible(t).(TSimple)
}

package typesystem

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var classNames = []string{"Int", "String", "List", "Map", "Box"}

// randomType builds a type of at most the given depth, with decorations on
// arbitrary nodes.
func randomType(r *rand.Rand, depth int) Type {
	var t Type
	switch n := r.Intn(10); {
	case n == 0:
		return NewErrorType("random")
	case n < 3:
		p := param([]string{"T", "K"}[r.Intn(2)])
		p.Nullable = r.Intn(2) == 0
		t = p
	case n < 5:
		s := randomSimple(r, depth)
		t = NewFlexible(s.MakeNullable(false).(TSimple), s.MakeNullable(true).(TSimple))
	default:
		t = randomSimple(r, depth)
	}

	if depth > 0 && r.Intn(3) == 0 {
		t = WithDecoration(t, Enhancement, randomType(r, depth-1))
	}
	if depth > 0 && r.Intn(3) == 0 {
		t = WithDecoration(t, Alternative, randomType(r, depth-1))
	}
	return t
}

func randomSimple(r *rand.Rand, depth int) TSimple {
	s := class(classNames[r.Intn(len(classNames))])
	s.Nullable = r.Intn(4) == 0
	if depth == 0 {
		return s
	}
	for i := r.Intn(3); i > 0; i-- {
		if r.Intn(5) == 0 {
			s.Args = append(s.Args, StarProjection)
			continue
		}
		s.Args = append(s.Args, Projection{Variance: Variance(r.Intn(3)), Type: randomType(r, depth-1)})
	}
	return s
}

func genType() gopter.Gen {
	return gen.Int64().Map(func(seed int64) Type {
		return randomType(rand.New(rand.NewSource(seed)), 3)
	})
}

func TestPublishProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("publish is idempotent", prop.ForAll(
		func(typ Type) bool {
			once := Publish(typ)
			return Equal(once, Publish(once))
		},
		genType(),
	))

	properties.Property("published types carry no alternative", prop.ForAll(
		func(typ Type) bool {
			return !Contains(Publish(typ), hasAlternative)
		},
		genType(),
	))

	properties.Property("types without alternatives are published as is", prop.ForAll(
		func(typ Type) bool {
			if Contains(typ, hasAlternative) {
				return true
			}
			return Equal(typ, Publish(typ))
		},
		genType(),
	))

	properties.TestingRun(t)
}

func TestTransformProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	s := Subst{"T": class("String"), "K": platform(class("Int"))}

	properties.Property("substitution keeps decoration slots", prop.ForAll(
		func(typ Type) bool {
			got := typ.Apply(s)
			for _, kind := range []DecorationKind{Enhancement, Alternative} {
				payload := DecorationOf(typ, kind)
				if payload == nil {
					continue
				}
				if !Equal(DecorationOf(got, kind), payload.Apply(s)) {
					return false
				}
			}
			return true
		},
		genType(),
	))

	properties.Property("nullability change keeps decoration slots", prop.ForAll(
		func(typ Type, nullable bool) bool {
			got := typ.MakeNullable(nullable)
			for _, kind := range []DecorationKind{Enhancement, Alternative} {
				if (DecorationOf(typ, kind) == nil) != (DecorationOf(got, kind) == nil) {
					return false
				}
			}
			return true
		},
		genType(),
		gen.Bool(),
	))

	properties.Property("error types are never rewritten", prop.ForAll(
		func(reason string) bool {
			e := NewErrorType(reason)
			return Equal(e, Publish(e)) &&
				Equal(e, e.Apply(s)) &&
				Equal(e, e.MakeNullable(true)) &&
				!IsDecorated(WithDecoration(e, Alternative, class("Int")))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	s := Subst{"T": class("String"), "K": platform(class("Int"))}

	tests := []struct {
		name     string
		input    Type
		expected string
	}{
		{"param", param("T"), "String"},
		{"unknown param", param("U"), "U"},
		{"nullable use", nullable(param("T")), "String?"},
		{"argument", class("List", param("T")), "List<String>"},
		{"flexible replacement", class("Map", param("K"), param("T")), "Map<(Int..Int?), String>"},
		{"flexible bound", platform(param("K")), "(Int..Int?)"},
		{"star kept", class("List").ReplaceArgs([]Projection{StarProjection}), "List<*>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Apply(s).String())
		})
	}
}

func TestApplyKeepsEnhancement(t *testing.T) {
	s := Subst{"T": class("String")}
	e := class("MutableList", param("T"))
	input := enhanced(class("List", param("T")), e)

	got := input.Apply(s)

	require.NotNil(t, got.Enhancement())
	assert.True(t, Equal(e.Apply(s), got.Enhancement()))
	assert.Equal(t, "List<String> [enhancement: MutableList<String>]", got.String())
}

func TestTransformsKeepSlotsApart(t *testing.T) {
	input := alternated(
		enhanced(class("Box", param("T")), class("Enh", param("T"))),
		class("Alt", param("T")),
	)

	got := input.Apply(Subst{"T": class("Int")})
	assert.Equal(t, "Box<Int> [enhancement: Enh<Int>] [alternative: Alt<Int>]", got.String())

	got = input.MakeNullable(true)
	assert.Equal(t, "Box<T>? [enhancement: Enh<T>?] [alternative: Alt<T>?]", got.String())

	got = input.ReplaceAnnotations(Annotations{{Name: "A"}})
	assert.Equal(t, "@A Box<T> [enhancement: @A Enh<T>] [alternative: @A Alt<T>]", got.String())
}

func TestMakeNullableFlexible(t *testing.T) {
	f := enhanced(platform(class("Int")), class("Int"))

	got := f.MakeNullable(true)
	assert.Equal(t, "(Int?..Int?) [enhancement: Int?]", got.String())

	got = got.MakeNullable(false)
	assert.Equal(t, "(Int..Int) [enhancement: Int]", got.String())
}

func TestErrorTypeAbsorbsTransforms(t *testing.T) {
	e := NewErrorType("unresolved reference: Foo")

	assert.True(t, Equal(e, e.Apply(Subst{"T": class("Int")})))
	assert.True(t, Equal(e, e.MakeNullable(true)))
	assert.True(t, Equal(e, e.ReplaceAnnotations(Annotations{{Name: "A"}})))
	assert.True(t, Equal(e, e.Refine(RefinerFunc(func(c TCon) TCon { return TCon{Name: "X"} }))))
	assert.True(t, Equal(e, WithDecoration(e, Enhancement, class("Int"))))
}

func TestApplyEmptySubst(t *testing.T) {
	input := enhanced(class("List", param("T")), param("T"))
	assert.True(t, Equal(input, input.Apply(nil)))
	assert.True(t, Equal(input, input.Apply(Subst{})))
}

func TestCompose(t *testing.T) {
	s1 := Subst{"T": class("List", param("U"))}
	s2 := Subst{"U": class("Int")}

	s := s1.Compose(s2)

	assert.Equal(t, "List<Int>", s["T"].String())
	assert.Equal(t, "Int", s["U"].String())
}

func TestContains(t *testing.T) {
	isLong := func(t Type) bool {
		s, ok := t.(TSimple)
		return ok && s.Con.Name == "Long"
	}

	tests := []struct {
		name     string
		input    Type
		expected bool
	}{
		{"self", class("Long"), true},
		{"argument", class("List", class("Long")), true},
		{"bound", NewFlexible(class("Long"), nullable(class("Int"))), true},
		{"enhancement", enhanced(class("Int"), class("Long")), true},
		{"payload argument", alternated(class("Int"), class("List", class("Long"))), true},
		{"absent", class("Map", class("Int"), class("String")), false},
		{"star", class("List").ReplaceArgs([]Projection{StarProjection}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Contains(tt.input, isLong))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(class("List", class("Int")), class("List", class("Int"))))
	assert.False(t, Equal(class("List", class("Int")), class("List", class("Long"))))
	assert.False(t, Equal(class("Int"), nullable(class("Int"))))
	assert.False(t, Equal(class("Int"), enhanced(class("Int"), class("Long"))))
	assert.False(t, Equal(class("Int"), platform(class("Int"))))
	assert.False(t, Equal(class("Int"), nil))
	assert.True(t, Equal(nil, nil))
}

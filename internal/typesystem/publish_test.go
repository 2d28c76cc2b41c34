package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish(t *testing.T) {
	tests := []struct {
		name     string
		input    Type
		expected string
	}{
		{"plain", class("List", class("Int")), "List<Int>"},
		{"alternative", alternated(class("Int"), class("String")), "String"},
		{"argument", class("List", alternated(class("Int"), class("Long"))), "List<Long>"},
		{"alternative wins over arguments",
			alternated(class("List", alternated(class("Int"), class("Long"))), class("Set", class("Short"))),
			"Set<Short>"},
		{"alternative inside alternative",
			alternated(class("Int"), class("Box", alternated(class("A"), class("B")))),
			"Box<B>"},
		{"enhancement kept",
			enhanced(class("List", alternated(class("Int"), class("Long"))), class("MutableList", alternated(class("Int"), class("Long")))),
			"List<Long> [enhancement: MutableList<Long>]"},
		{"enhancement dropped with its node",
			alternated(enhanced(class("Int"), class("Long")), class("String")),
			"String"},
		{"flexible", alternated(platform(class("A")), platform(class("B"))), "(B..B?)"},
		{"flexible bounds",
			platform(class("List", alternated(class("Int"), class("Long")))),
			"(List<Long>..List<Long>?)"},
		{"error target", alternated(class("Int"), NewErrorType("gone")), "<error>(gone)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Publish(tt.input)
			assert.Equal(t, tt.expected, got.String())
			assert.False(t, Contains(got, hasAlternative))
			assert.True(t, Equal(got, Publish(got)))
		})
	}
}

func TestPublishWithoutAlternativeIsIdentity(t *testing.T) {
	input := enhanced(platform(class("Map", param("K"), class("Int"))), class("Map", param("K"), class("Int")))
	assert.True(t, Equal(input, Publish(input)))
	assert.Nil(t, Publish(nil))
}

func TestPublishLeavesErrorTypes(t *testing.T) {
	e := NewErrorType("unresolved reference: Foo")
	assert.True(t, Equal(e, Publish(e)))

	nested := class("Pair", e, alternated(class("Int"), class("Long")))
	got := Publish(nested).(TSimple)
	assert.Equal(t, "Pair<<error>(unresolved reference: Foo), Long>", got.String())
	assert.True(t, Equal(e, got.Args[0].Type))
}

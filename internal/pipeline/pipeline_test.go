package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiModel = `
classes:
  - name: Api
    members:
      - function: id
        returns: {name: Int, alternative: {name: Long}}
      - property: name
        type: {name: String}
      - class:
          name: Impl
          members:
            - constructor: true
    deferred:
      - property: late
        type:
          name: List
          args:
            - type: {name: Int, alternative: {name: Short}}
`

func TestDefaultPipeline(t *testing.T) {
	ctx := Default().Run(NewPipelineContext(apiModel))

	require.Empty(t, ctx.Errors)
	require.NotNil(t, ctx.Program)
	require.NotNil(t, ctx.SymbolTable)
	assert.Equal(t, 2, ctx.Session.Len())

	var got []string
	for _, p := range ctx.Published {
		got = append(got, p.Symbol.Owner+"."+p.Symbol.Name+": "+p.Published.String())
	}
	assert.Equal(t, []string{
		"Api.id: Long",
		"Api.name: String",
		"Api.late: List<Short>",
		"Impl.<init>: Api.Impl",
	}, got)

	changed := 0
	for _, p := range ctx.Published {
		if p.Changed() {
			changed++
		}
	}
	assert.Equal(t, 2, changed)
}

func TestPublishWithoutIndexStage(t *testing.T) {
	ctx := New(&LoadProcessor{}, &PublishProcessor{}).Run(NewPipelineContext(apiModel))

	require.Empty(t, ctx.Errors)
	assert.Len(t, ctx.Published, 4)
	for _, c := range ctx.Classes() {
		assert.True(t, ctx.Session.DeclaredMemberScope(c).Built(), c.Name)
	}
}

func TestIndexStageRunsDeferredCompletion(t *testing.T) {
	ctx := New(&LoadProcessor{}, &IndexProcessor{}).Run(NewPipelineContext(apiModel))

	require.Empty(t, ctx.Errors)
	api, ok := ctx.Program.Class("Api")
	require.True(t, ok)
	assert.False(t, api.Sym.HasPendingCompletion())
	assert.Len(t, api.Members, 4)
	assert.Empty(t, ctx.Published)
}

func TestErrorTypesAreReported(t *testing.T) {
	ctx := Default().Run(NewPipelineContext(`
classes:
  - name: A
    members:
      - function: f
        returns: {name: Missing}
`))

	require.Len(t, ctx.Errors, 1)
	assert.Contains(t, ctx.Errors[0].Error(), "function A.f has type <error>(unresolved reference: Missing)")
	require.Len(t, ctx.Published, 1)
	assert.False(t, ctx.Published[0].Changed())
}

func TestNestedErrorTypesAreReported(t *testing.T) {
	ctx := Default().Run(NewPipelineContext(`
classes:
  - name: A
    members:
      - property: items
        type: {name: List, args: [{type: {name: Missing}}]}
`))

	require.Len(t, ctx.Errors, 1)
	assert.Contains(t, ctx.Errors[0].Error(), "property A.items has type List<<error>(unresolved reference: Missing)>")
}

func TestLoadFailureSkipsLaterStages(t *testing.T) {
	tests := []struct {
		name string
		ctx  *PipelineContext
		want string
	}{
		{"invalid model", NewPipelineContext("classes: []"), "<input>: no classes defined"},
		{"no source", NewPipelineContext(""), "no model source given"},
		{"missing file", NewFileContext("does/not/exist.yaml", NewPipelineContext("").Log), "reading model does/not/exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Default().Run(tt.ctx)
			require.Len(t, ctx.Errors, 1)
			assert.Contains(t, ctx.Errors[0].Error(), tt.want)
			assert.Nil(t, ctx.Program)
			assert.Nil(t, ctx.Session)
			assert.Empty(t, ctx.Classes())
		})
	}
}

package pipeline

import (
	"github.com/pkg/errors"

	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/model"
	"github.com/funvibe/fxresolve/internal/scopes"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

// LoadProcessor parses the model and builds declarations from it.
type LoadProcessor struct{}

func (lp *LoadProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Model == nil {
		var (
			m   *model.Model
			err error
		)
		switch {
		case ctx.Source != "":
			m, err = model.ParseModel([]byte(ctx.Source), sourceName(ctx))
		case ctx.FilePath != "":
			m, err = model.LoadModel(ctx.FilePath)
		default:
			err = errors.New("no model source given")
		}
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			return ctx
		}
		ctx.Model = m
	}

	ctx.Program, ctx.SymbolTable = ctx.Model.Build(sourceName(ctx))
	ctx.Log.Debug().
		Str("file", sourceName(ctx)).
		Int("classes", len(ctx.Program.Classes)).
		Msg("model loaded")
	return ctx
}

func sourceName(ctx *PipelineContext) string {
	if ctx.FilePath != "" {
		return ctx.FilePath
	}
	return "<input>"
}

// IndexProcessor builds the member scope of every class, nested classes
// included, through the context's session.
type IndexProcessor struct{}

func (ip *IndexProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	if ctx.Session == nil {
		ctx.Session = scopes.NewSession(ctx.Log)
	}
	for _, c := range ctx.Classes() {
		ctx.Session.DeclaredMemberScope(c).CallableNames()
	}
	return ctx
}

// PublishProcessor publishes the type of every declared callable. It indexes
// classes itself when the index stage did not run, so deferred members are
// published too.
type PublishProcessor struct{}

func (pp *PublishProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	if ctx.Session == nil {
		ctx.Session = scopes.NewSession(ctx.Log)
	}

	ctx.Published = ctx.Published[:0]
	for _, c := range ctx.Classes() {
		ctx.Session.DeclaredMemberScope(c).CallableNames()
		for _, m := range c.Members {
			callable, ok := m.(ast.CallableDeclaration)
			if !ok {
				continue
			}
			sym := callable.Symbol()
			if sym.Type == nil {
				continue
			}
			if typesystem.Contains(sym.Type, typesystem.Type.IsError) {
				ctx.Errors = append(ctx.Errors, errors.Errorf("%s: %s has type %s", sourceName(ctx), sym, sym.Type))
			}
			ctx.Published = append(ctx.Published, PublishedMember{
				Symbol:    sym,
				Declared:  sym.Type,
				Published: typesystem.Publish(sym.Type),
			})
		}
	}
	return ctx
}

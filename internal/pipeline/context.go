package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/model"
	"github.com/funvibe/fxresolve/internal/scopes"
	"github.com/funvibe/fxresolve/internal/symbols"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

// Processor is one stage of a Pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state shared between stages.
type PipelineContext struct {
	FilePath string // Model path, used for reading and in messages
	Source   string // Model content; read from FilePath when empty

	Model       *model.Model
	Program     *ast.Program
	SymbolTable *symbols.SymbolTable
	Session     *scopes.Session

	Published []PublishedMember
	Errors    []error

	Log zerolog.Logger
}

// PublishedMember is a callable's declared type next to its published form.
type PublishedMember struct {
	Symbol    *symbols.Callable
	Declared  typesystem.Type
	Published typesystem.Type
}

// Changed reports whether publishing rewrote the declared type.
func (p PublishedMember) Changed() bool {
	return !typesystem.Equal(p.Declared, p.Published)
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		Source: source,
		Log:    zerolog.Nop(),
	}
}

// NewFileContext creates a context that reads the model at path.
func NewFileContext(path string, log zerolog.Logger) *PipelineContext {
	return &PipelineContext{
		FilePath: path,
		Log:      log,
	}
}

// Classes returns every class declaration of the program, outer classes
// before the classes nested in them.
func (ctx *PipelineContext) Classes() []*ast.ClassDeclaration {
	if ctx.Program == nil {
		return nil
	}
	var out []*ast.ClassDeclaration
	var walk func(c *ast.ClassDeclaration)
	walk = func(c *ast.ClassDeclaration) {
		out = append(out, c)
		for _, m := range c.Members {
			if nested, ok := m.(*ast.ClassDeclaration); ok {
				walk(nested)
			}
		}
	}
	for _, c := range ctx.Program.Classes {
		walk(c)
	}
	return out
}

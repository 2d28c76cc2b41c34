package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/funvibe/fxresolve/internal/ast"
	"github.com/funvibe/fxresolve/internal/config"
	"github.com/funvibe/fxresolve/internal/model"
	"github.com/funvibe/fxresolve/internal/pipeline"
	"github.com/funvibe/fxresolve/internal/scopes"
)

// app holds what every command shares: output streams, global options and
// the color palette.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   *Options

	au *aurora.Aurora
}

// setup configures logging and colors once global options are parsed.
func (a *app) setup() {
	colors := !a.opts.NoColor && !config.IsTestMode && colorsEnabled(a.stdout)
	a.au = aurora.New(aurora.WithColors(colors))

	level := zerolog.InfoLevel
	if a.opts.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        a.stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !colors,
	}).Level(level)
}

func (a *app) modelPath(opt ModelOption) (string, error) {
	if opt.Model != "" {
		return opt.Model, nil
	}
	path, err := model.FindModel(".")
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.Errorf("no %s found in the working directory or its parents", config.ModelFileNames[0])
	}
	return path, nil
}

// load runs the given stages on the model selected by opt. Diagnostics that
// do not prevent building declarations are logged as warnings.
func (a *app) load(opt ModelOption, stages ...pipeline.Processor) (*pipeline.PipelineContext, error) {
	path, err := a.modelPath(opt)
	if err != nil {
		return nil, err
	}

	ctx := pipeline.NewFileContext(path, log.Logger)
	ctx = pipeline.New(stages...).Run(ctx)
	if ctx.Program == nil {
		if len(ctx.Errors) > 0 {
			return nil, ctx.Errors[0]
		}
		return nil, errors.Errorf("%s: nothing loaded", path)
	}
	for _, err := range ctx.Errors {
		log.Warn().Err(err).Msg("diagnostic")
	}
	return ctx, nil
}

// findClass resolves a possibly qualified class name (Outer.Inner).
func (a *app) findClass(ctx *pipeline.PipelineContext, name string) (*ast.ClassDeclaration, error) {
	parts := strings.Split(name, ".")

	class, ok := ctx.Program.Class(parts[0])
	if !ok {
		candidates := make([]string, 0, len(ctx.Program.Classes))
		for _, c := range ctx.Program.Classes {
			candidates = append(candidates, c.Name)
		}
		return nil, unknownClass(parts[0], candidates)
	}

	for _, part := range parts[1:] {
		nested := ctx.Session.DeclaredMemberScope(class).NestedClassifiers()
		next, ok := nested.Class(part)
		if !ok {
			return nil, unknownClass(class.Name+"."+part, qualify(class.Name, nested.ClassifierNames()))
		}
		class = next
	}
	return class, nil
}

func qualify(outer string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, outer+"."+name)
	}
	return out
}

func unknownClass(name string, candidates []string) error {
	if suggestion := closestName(name, candidates); suggestion != "" {
		return errors.Errorf("unknown class %q; did you mean %q?", name, suggestion)
	}
	return errors.Errorf("unknown class %q", name)
}

func (a *app) session(ctx *pipeline.PipelineContext) *scopes.Session {
	if ctx.Session == nil {
		ctx.Session = scopes.NewSession(log.Logger)
	}
	return ctx.Session
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}

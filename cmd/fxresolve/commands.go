package main

import (
	"github.com/funvibe/fxresolve/internal/pipeline"
	"github.com/funvibe/fxresolve/internal/prettyprinter"
	"github.com/funvibe/fxresolve/internal/scopes"
	"github.com/funvibe/fxresolve/internal/symbols"
	"github.com/funvibe/fxresolve/internal/typesystem"
)

func (c *MembersCommand) Execute([]string) error {
	a := c.app
	a.setup()

	ctx, err := a.load(c.ModelOption, &pipeline.LoadProcessor{})
	if err != nil {
		return err
	}
	a.session(ctx)
	class, err := a.findClass(ctx, c.Args.Class)
	if err != nil {
		return err
	}

	scope := ctx.Session.DeclaredMemberScope(class)
	names := scope.CallableNames()
	if c.Name != "" {
		names = []string{c.Name}
	}

	for _, name := range names {
		var found []*symbols.Callable
		if c.Kind != "properties" {
			found = append(found, scopes.CollectFunctions(scope, name)...)
		}
		if c.Kind != "functions" {
			found = append(found, scopes.CollectProperties(scope, name)...)
		}
		for _, sym := range found {
			t := sym.Type
			if c.Published && t != nil {
				t = typesystem.Publish(t)
			}
			a.printf("%s %s: %s\n", sym.Kind, a.au.Bold(name), typeString(t))
		}
	}

	if c.Name == "" && c.Kind == "all" {
		for _, name := range scope.NestedClassifiers().ClassifierNames() {
			a.printf("class %s\n", a.au.Bold(name))
		}
	}
	return nil
}

func (c *PublishCommand) Execute([]string) error {
	a := c.app
	a.setup()

	ctx, err := a.load(c.ModelOption, &pipeline.LoadProcessor{}, &pipeline.IndexProcessor{}, &pipeline.PublishProcessor{})
	if err != nil {
		return err
	}

	for _, p := range ctx.Published {
		if !c.All && !p.Changed() {
			continue
		}
		a.printf("%s.%s: %s => %s\n",
			p.Symbol.Owner,
			p.Symbol.Name,
			typeString(p.Declared),
			a.au.Yellow(typeString(p.Published)),
		)
	}
	return nil
}

func (c *DumpCommand) Execute([]string) error {
	a := c.app
	a.setup()

	ctx, err := a.load(c.ModelOption, &pipeline.LoadProcessor{}, &pipeline.IndexProcessor{})
	if err != nil {
		return err
	}

	printer := prettyprinter.NewCodePrinter()
	if c.Published {
		printer = prettyprinter.NewPublishedPrinter()
	}
	ctx.Program.Accept(printer)
	a.printf("%s", printer.String())
	return nil
}

func typeString(t typesystem.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}

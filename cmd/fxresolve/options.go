package main

type Options struct {
	Members *MembersCommand `command:"members" description:"list the declared members of a class"`
	Publish *PublishCommand `command:"publish" description:"show member types as published outside their module"`
	Dump    *DumpCommand    `command:"dump" description:"print the declarations of a model"`

	Verbose bool `short:"v" long:"verbose" description:"log scope builds and pipeline stages"`
	NoColor bool `long:"no-color" description:"disable colored output"`
}

func NewOptions(a *app) *Options {
	return &Options{
		Members: &MembersCommand{app: a},
		Publish: &PublishCommand{app: a},
		Dump:    &DumpCommand{app: a},
	}
}

// ModelOption selects the model file. When empty, fxresolve.yaml is looked up
// from the working directory upwards.
type ModelOption struct {
	Model string `short:"m" long:"model" description:"class model file"`
}

type MembersCommand struct {
	ModelOption
	Kind      string `short:"k" long:"kind" choice:"all" choice:"functions" choice:"properties" default:"all" description:"which callables to list"`
	Name      string `short:"n" long:"name" description:"only list members with this name"`
	Published bool   `short:"p" long:"published" description:"print published member types"`
	Args      struct {
		Class string `positional-arg-name:"class" description:"class name, Outer.Inner for nested classes"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

type PublishCommand struct {
	ModelOption
	All bool `short:"a" long:"all" description:"also list members whose type does not change"`

	app *app
}

type DumpCommand struct {
	ModelOption
	Published bool `short:"p" long:"published" description:"print published member types"`

	app *app
}

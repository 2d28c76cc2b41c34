// Package model loads class models: YAML descriptions of classes, their
// members and member types.
//
// A model stands in for the parser and binder of a full front end. It is
// the input of the fxresolve command and of the pipeline:
//   - Parsing and validating fxresolve.yaml
//   - Building declarations and symbols from it
//   - Resolving type references against the prelude, the model's classes
//     and class type parameters
package model

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/fxresolve/internal/config"
)

// Model represents the top-level fxresolve.yaml document.
type Model struct {
	// Module is recorded as the origin of every class of the model.
	// Defaults to "main".
	Module string `yaml:"module,omitempty"`

	// Classes lists the top-level classes in declaration order.
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec describes one class-like declaration.
type ClassSpec struct {
	Name string `yaml:"name,omitempty"`

	// Kind is one of class, interface, enum, object or anonymous.
	// Defaults to class. Anonymous objects have no name.
	Kind string `yaml:"kind,omitempty"`

	TypeParams []string `yaml:"type_params,omitempty"`

	Members []MemberSpec `yaml:"members,omitempty"`

	// Deferred members are attached by the class symbol's pending
	// completion, i.e. only when the member scope is first built.
	Deferred []MemberSpec `yaml:"deferred,omitempty"`
}

// MemberSpec describes a single member. Exactly one of Function, Property,
// Field, EnumEntry, Constructor or Class must be set.
type MemberSpec struct {
	Function  string `yaml:"function,omitempty"`
	Property  string `yaml:"property,omitempty"`
	Field     string `yaml:"field,omitempty"`
	EnumEntry string `yaml:"enum_entry,omitempty"`

	// Constructor declares a constructor of the enclosing class.
	Constructor bool `yaml:"constructor,omitempty"`

	// Class declares a nested class.
	Class *ClassSpec `yaml:"class,omitempty"`

	Params []ParamSpec `yaml:"params,omitempty"`

	// Returns is the return type of a function. Defaults to Unit.
	Returns *TypeSpec `yaml:"returns,omitempty"`

	// Type is the type of a property or field. Defaults to Any.
	Type *TypeSpec `yaml:"type,omitempty"`

	Mutable bool `yaml:"mutable,omitempty"`
}

// ParamSpec is a value parameter.
type ParamSpec struct {
	Name string    `yaml:"name"`
	Type *TypeSpec `yaml:"type"`
}

// TypeSpec describes a type.
//
// A plain type names a classifier; `platform: true` turns it into the
// flexible range (T..T?) and the Nonnull/Nullable annotations then add the
// matching enhancement. Lower and Upper give an explicit flexible type.
// Enhancement and Alternative attach decorations. Error produces the error
// type with the given reason.
type TypeSpec struct {
	Name        string    `yaml:"name,omitempty"`
	Args        []ArgSpec `yaml:"args,omitempty"`
	Nullable    bool      `yaml:"nullable,omitempty"`
	Annotations []string  `yaml:"annotations,omitempty"`
	Platform    bool      `yaml:"platform,omitempty"`

	Lower *TypeSpec `yaml:"lower,omitempty"`
	Upper *TypeSpec `yaml:"upper,omitempty"`

	Enhancement *TypeSpec `yaml:"enhancement,omitempty"`
	Alternative *TypeSpec `yaml:"alternative,omitempty"`

	Error string `yaml:"error,omitempty"`
}

// ArgSpec is a type argument: a type with an optional variance (in, out),
// or a star projection.
type ArgSpec struct {
	Type     *TypeSpec `yaml:"type,omitempty"`
	Variance string    `yaml:"variance,omitempty"`
	Star     bool      `yaml:"star,omitempty"`
}

// LoadModel reads and parses a model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading model %s", path)
	}
	return ParseModel(data, path)
}

// ParseModel parses model content from bytes.
// The path argument is used only for error messages.
func ParseModel(data []byte, path string) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	m.setDefaults()
	return &m, nil
}

// FindModel searches for fxresolve.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the model file and nil error if found,
// or empty string and nil error if not found.
func FindModel(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		for _, name := range config.ModelFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

func (m *Model) setDefaults() {
	if m.Module == "" {
		m.Module = "main"
	}
	for i := range m.Classes {
		m.Classes[i].setDefaults()
	}
}

func (c *ClassSpec) setDefaults() {
	if c.Kind == "" {
		c.Kind = "class"
	}
	for i := range c.Members {
		if nested := c.Members[i].Class; nested != nil {
			nested.setDefaults()
		}
	}
	for i := range c.Deferred {
		if nested := c.Deferred[i].Class; nested != nil {
			nested.setDefaults()
		}
	}
}

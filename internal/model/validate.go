package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var classKinds = map[string]bool{
	"class":     true,
	"interface": true,
	"enum":      true,
	"object":    true,
	"anonymous": true,
}

// validate checks the model for semantic errors.
func (m *Model) validate(path string) error {
	if len(m.Classes) == 0 {
		return errors.Errorf("%s: no classes defined", path)
	}

	seen := make(map[string]bool)
	for i := range m.Classes {
		c := &m.Classes[i]
		where := fmt.Sprintf("%s: classes[%d]", path, i)
		if c.Kind == "anonymous" {
			return errors.Errorf("%s: anonymous objects can only be nested", where)
		}
		if err := c.validate(where); err != nil {
			return err
		}
		if seen[c.Name] {
			return errors.Errorf("%s (%s): duplicate class name", where, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func (c *ClassSpec) validate(where string) error {
	kind := c.Kind
	if kind == "" {
		kind = "class"
	}
	if !classKinds[kind] {
		return errors.Errorf("%s: unknown kind %q", where, c.Kind)
	}
	if kind == "anonymous" {
		if c.Name != "" {
			return errors.Errorf("%s: anonymous objects have no name", where)
		}
	} else if c.Name == "" {
		return errors.Errorf("%s: name is required", where)
	}

	params := make(map[string]bool)
	for _, p := range c.TypeParams {
		if p == "" {
			return errors.Errorf("%s (%s): empty type parameter name", where, c.Name)
		}
		if params[p] {
			return errors.Errorf("%s (%s): duplicate type parameter %s", where, c.Name, p)
		}
		params[p] = true
	}

	for j := range c.Members {
		if err := c.Members[j].validate(fmt.Sprintf("%s.members[%d]", where, j), kind); err != nil {
			return err
		}
	}
	for j := range c.Deferred {
		if err := c.Deferred[j].validate(fmt.Sprintf("%s.deferred[%d]", where, j), kind); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemberSpec) validate(where, ownerKind string) error {
	specCount := 0
	for _, set := range []bool{
		m.Function != "",
		m.Property != "",
		m.Field != "",
		m.EnumEntry != "",
		m.Constructor,
		m.Class != nil,
	} {
		if set {
			specCount++
		}
	}
	if specCount == 0 {
		return errors.Errorf("%s: one of function, property, field, enum_entry, constructor or class is required", where)
	}
	if specCount > 1 {
		return errors.Errorf("%s: function, property, field, enum_entry, constructor and class are mutually exclusive", where)
	}

	if m.Constructor && ownerKind == "interface" {
		return errors.Errorf("%s: interfaces cannot declare constructors", where)
	}
	if m.EnumEntry != "" && ownerKind != "enum" {
		return errors.Errorf("%s (%s): enum entries are only valid in enum classes", where, m.EnumEntry)
	}
	if len(m.Params) > 0 && m.Function == "" && !m.Constructor {
		return errors.Errorf("%s: params are only valid for functions and constructors", where)
	}
	if m.Returns != nil && m.Function == "" {
		return errors.Errorf("%s: returns is only valid for functions", where)
	}
	if m.Type != nil && m.Property == "" && m.Field == "" {
		return errors.Errorf("%s: type is only valid for properties and fields", where)
	}
	if m.Mutable && m.Property == "" && m.Field == "" {
		return errors.Errorf("%s: mutable is only valid for properties and fields", where)
	}

	for k, p := range m.Params {
		pw := fmt.Sprintf("%s.params[%d]", where, k)
		if p.Name == "" {
			return errors.Errorf("%s: name is required", pw)
		}
		if p.Type == nil {
			return errors.Errorf("%s (%s): type is required", pw, p.Name)
		}
		if err := p.Type.validate(pw + ".type"); err != nil {
			return err
		}
	}
	if m.Returns != nil {
		if err := m.Returns.validate(where + ".returns"); err != nil {
			return err
		}
	}
	if m.Type != nil {
		if err := m.Type.validate(where + ".type"); err != nil {
			return err
		}
	}
	if m.Class != nil {
		return m.Class.validate(where + ".class")
	}
	return nil
}

func (t *TypeSpec) validate(where string) error {
	shapes := 0
	if t.Name != "" {
		shapes++
	}
	if t.Error != "" {
		shapes++
	}
	if t.Lower != nil || t.Upper != nil {
		if t.Lower == nil || t.Upper == nil {
			return errors.Errorf("%s: lower and upper must be given together", where)
		}
		shapes++
	}
	if shapes != 1 {
		return errors.Errorf("%s: exactly one of name, error or lower/upper is required", where)
	}

	if t.Error != "" && (t.Enhancement != nil || t.Alternative != nil) {
		return errors.Errorf("%s: error types cannot be decorated", where)
	}
	if t.Platform && t.Name == "" {
		return errors.Errorf("%s: platform is only valid with name", where)
	}
	if t.Lower != nil && (len(t.Args) > 0 || t.Nullable || len(t.Annotations) > 0) {
		return errors.Errorf("%s: args, nullable and annotations belong on the bounds of a flexible type", where)
	}

	for i, arg := range t.Args {
		aw := fmt.Sprintf("%s.args[%d]", where, i)
		if arg.Star {
			if arg.Type != nil || arg.Variance != "" {
				return errors.Errorf("%s: star projections carry no type or variance", aw)
			}
			continue
		}
		if arg.Type == nil {
			return errors.Errorf("%s: type or star is required", aw)
		}
		if arg.Variance != "" && arg.Variance != "in" && arg.Variance != "out" {
			return errors.Errorf("%s: unknown variance %q", aw, arg.Variance)
		}
		if err := arg.Type.validate(aw + ".type"); err != nil {
			return err
		}
	}

	for _, nested := range []struct {
		spec *TypeSpec
		name string
	}{
		{t.Lower, "lower"},
		{t.Upper, "upper"},
		{t.Enhancement, "enhancement"},
		{t.Alternative, "alternative"},
	} {
		if nested.spec == nil {
			continue
		}
		if nested.name == "lower" || nested.name == "upper" {
			if nested.spec.Lower != nil || nested.spec.Platform {
				return errors.Errorf("%s.%s: flexible bounds must be simple types", where, nested.name)
			}
		}
		if err := nested.spec.validate(where + "." + nested.name); err != nil {
			return err
		}
	}
	return nil
}

package typesystem

// Subst is a mapping from type parameter names to types.
type Subst map[string]Type

// Compose combines two substitutions. Entries of s2 are kept and the values
// of s1 get s2 applied to them.
func (s1 Subst) Compose(s2 Subst) Subst {
	subst := Subst{}
	for k, v := range s2 {
		subst[k] = v
	}
	for k, v := range s1 {
		subst[k] = v.Apply(s2)
	}
	return subst
}

// Every transformation below follows the same rule for decorated nodes:
// transform the undecorated core, then rewrap with the payloads transformed
// the same way. The error type is returned as is.

func (t TSimple) Apply(s Subst) Type {
	if t.IsError() || len(s) == 0 {
		return t
	}
	return rewrap(t.undecorated().substitute(s), t.decor, func(p Type) Type { return p.Apply(s) })
}

func (t TSimple) substitute(s Subst) Type {
	if t.Con.Kind == ParamCon {
		replacement, ok := s[t.Con.Name]
		if !ok {
			return t
		}
		if t.Nullable {
			return replacement.MakeNullable(true)
		}
		return replacement
	}
	if len(t.Args) == 0 {
		return t
	}
	t.Args = mapArgs(t.Args, func(arg Type) Type { return arg.Apply(s) })
	return t
}

func (t TFlexible) Apply(s Subst) Type {
	if len(s) == 0 {
		return t
	}
	core := NewFlexible(lowerSimple(t.lower.Apply(s)), upperSimple(t.upper.Apply(s)))
	return rewrap(core, t.decor, func(p Type) Type { return p.Apply(s) })
}

func (t TSimple) MakeNullable(nullable bool) Type {
	if t.IsError() {
		return t
	}
	core := t.undecorated()
	core.Nullable = nullable
	return rewrap(core, t.decor, func(p Type) Type { return p.MakeNullable(nullable) })
}

func (t TFlexible) MakeNullable(nullable bool) Type {
	core := NewFlexible(
		t.lower.MakeNullable(nullable).(TSimple),
		t.upper.MakeNullable(nullable).(TSimple),
	)
	return rewrap(core, t.decor, func(p Type) Type { return p.MakeNullable(nullable) })
}

func (t TSimple) ReplaceAnnotations(annotations Annotations) Type {
	if t.IsError() {
		return t
	}
	core := t.undecorated()
	core.Annotations = annotations
	return rewrap(core, t.decor, func(p Type) Type { return p.ReplaceAnnotations(annotations) })
}

func (t TFlexible) ReplaceAnnotations(annotations Annotations) Type {
	core := NewFlexible(
		t.lower.ReplaceAnnotations(annotations).(TSimple),
		t.upper.ReplaceAnnotations(annotations).(TSimple),
	)
	return rewrap(core, t.decor, func(p Type) Type { return p.ReplaceAnnotations(annotations) })
}

// ReplaceArgs returns t with its argument list replaced, keeping decorations
// as they are.
func (t TSimple) ReplaceArgs(args []Projection) TSimple {
	t.Args = args
	return t
}

func mapArgs(args []Projection, f func(Type) Type) []Projection {
	out := make([]Projection, len(args))
	for i, arg := range args {
		if arg.Star {
			out[i] = arg
			continue
		}
		out[i] = Projection{Variance: arg.Variance, Type: f(arg.Type)}
	}
	return out
}

// Contains reports whether pred holds for t or for any type nested in it:
// argument types, flexible bounds and decoration payloads. The walk is
// top-down and stops at the first hit.
func Contains(t Type, pred func(Type) bool) bool {
	if t == nil {
		return false
	}
	if pred(t) {
		return true
	}
	switch typ := t.(type) {
	case TSimple:
		for _, arg := range typ.Args {
			if !arg.Star && Contains(arg.Type, pred) {
				return true
			}
		}
	case TFlexible:
		if Contains(typ.lower, pred) || Contains(typ.upper, pred) {
			return true
		}
	}
	d := t.decorations()
	return Contains(d.enhancement, pred) || Contains(d.alternative, pred)
}

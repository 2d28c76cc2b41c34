package typesystem

// Refiner re-points classifier references, e.g. to the declarations visible
// from a particular module.
type Refiner interface {
	RefineClassifier(TCon) TCon
}

// RefinerFunc adapts a function to the Refiner interface.
type RefinerFunc func(TCon) TCon

func (f RefinerFunc) RefineClassifier(c TCon) TCon { return f(c) }

func (t TSimple) Refine(r Refiner) Type {
	if t.IsError() || r == nil {
		return t
	}
	core := t.undecorated()
	if core.Con.Kind == ClassCon {
		core.Con = r.RefineClassifier(core.Con)
	}
	if len(core.Args) > 0 {
		core.Args = mapArgs(core.Args, func(arg Type) Type { return arg.Refine(r) })
	}
	return rewrap(core, t.decor, func(p Type) Type { return p.Refine(r) })
}

func (t TFlexible) Refine(r Refiner) Type {
	if r == nil {
		return t
	}
	core := NewFlexible(t.lower.Refine(r).(TSimple), t.upper.Refine(r).(TSimple))
	return rewrap(core, t.decor, func(p Type) Type { return p.Refine(r) })
}

// ReplaceTCon replaces all class references with the given name by the
// replacement classifier. This is useful for re-pointing references once a
// forward-declared classifier is finalized.
func ReplaceTCon(t Type, name string, replacement TCon) Type {
	if t == nil {
		return nil
	}
	return t.Refine(RefinerFunc(func(c TCon) TCon {
		if c.Name == name {
			return replacement
		}
		return c
	}))
}

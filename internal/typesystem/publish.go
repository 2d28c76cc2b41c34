package typesystem

// Publish replaces every Alternative-decorated node of t by its alternative,
// recursively, producing a type with no Alternative decoration left.
// It is called whenever an internally computed type is about to be attached
// to a publicly observable symbol.
//
// An alternative replaces its node outright; it is never merged with the
// node's own arguments. Error types are returned unchanged.
func Publish(t Type) Type {
	if t == nil || !Contains(t, hasAlternative) {
		return t
	}
	return replaceAlternatives(t)
}

func hasAlternative(t Type) bool {
	return t.Alternative() != nil
}

func replaceAlternatives(t Type) Type {
	if t.IsError() {
		return t
	}
	if alternative := t.Alternative(); alternative != nil {
		return replaceAlternatives(alternative)
	}
	// Only the enhancement slot can be left at this point.
	switch typ := t.(type) {
	case TSimple:
		return rewrap(publishArgs(typ.undecorated()), typ.decor, replaceAlternatives)
	case TFlexible:
		core := NewFlexible(publishArgs(typ.lower), publishArgs(typ.upper))
		return rewrap(core, typ.decor, replaceAlternatives)
	}
	return t
}

func publishArgs(t TSimple) TSimple {
	if len(t.Args) == 0 {
		return t
	}
	return t.ReplaceArgs(mapArgs(t.Args, replaceAlternatives))
}

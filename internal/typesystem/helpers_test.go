package typesystem

func class(name string, args ...Type) TSimple {
	t := TSimple{Con: TCon{Name: name, Kind: ClassCon}}
	for _, arg := range args {
		t.Args = append(t.Args, Projection{Type: arg})
	}
	return t
}

func param(name string) TSimple {
	return TSimple{Con: TCon{Name: name, Kind: ParamCon}}
}

func nullable(t TSimple) TSimple {
	t.Nullable = true
	return t
}

func platform(t TSimple) TFlexible {
	return NewFlexible(t, nullable(t))
}

func enhanced(t Type, payload Type) Type {
	return WithDecoration(t, Enhancement, payload)
}

func alternated(t Type, payload Type) Type {
	return WithDecoration(t, Alternative, payload)
}

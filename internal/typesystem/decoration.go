package typesystem

// DecorationKind identifies one of the independent decoration slots.
type DecorationKind int

const (
	// Enhancement carries additional (e.g. interop-derived) information
	// without changing the primary type's identity.
	Enhancement DecorationKind = iota
	// Alternative carries the type that must be exposed publicly in place
	// of the decorated node.
	Alternative
)

func (k DecorationKind) String() string {
	switch k {
	case Enhancement:
		return "enhancement"
	case Alternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// decorations holds at most one payload per kind.
// A nil payload means the slot is empty.
type decorations struct {
	enhancement Type
	alternative Type
}

func (d decorations) empty() bool {
	return d.enhancement == nil && d.alternative == nil
}

func (d decorations) get(kind DecorationKind) Type {
	switch kind {
	case Enhancement:
		return d.enhancement
	case Alternative:
		return d.alternative
	}
	return nil
}

func (d decorations) with(kind DecorationKind, payload Type) decorations {
	switch kind {
	case Enhancement:
		d.enhancement = payload
	case Alternative:
		d.alternative = payload
	}
	return d
}

// project maps every present payload through f, leaving empty slots empty.
func (d decorations) project(f func(Type) Type) decorations {
	var out decorations
	if d.enhancement != nil {
		out.enhancement = f(d.enhancement)
	}
	if d.alternative != nil {
		out.alternative = f(d.alternative)
	}
	return out
}

func (d decorations) String() string {
	s := ""
	if d.enhancement != nil {
		s += " [enhancement: " + d.enhancement.String() + "]"
	}
	if d.alternative != nil {
		s += " [alternative: " + d.alternative.String() + "]"
	}
	return s
}

// WithDecoration attaches payload to t under the given kind, replacing any
// payload of the same kind. Other kinds are left untouched.
// A nil payload and the error type both return t unchanged.
func WithDecoration(t Type, kind DecorationKind, payload Type) Type {
	if t == nil || payload == nil || t.IsError() {
		return t
	}
	return t.withDecorations(t.decorations().with(kind, payload))
}

// DecorationOf returns the payload attached to t under kind, or nil.
func DecorationOf(t Type, kind DecorationKind) Type {
	if t == nil {
		return nil
	}
	return t.decorations().get(kind)
}

// IsDecorated reports whether t carries any decoration.
func IsDecorated(t Type) bool {
	return t != nil && !t.decorations().empty()
}

// Unwrap strips every decoration from t.
func Unwrap(t Type) Type {
	if t == nil {
		return nil
	}
	return t.withDecorations(decorations{})
}

// UnwrapEnhancement returns the enhancement of t if there is one, t otherwise.
func UnwrapEnhancement(t Type) Type {
	if e := DecorationOf(t, Enhancement); e != nil {
		return e
	}
	return t
}

// InheritEnhancement copies the enhancement of from onto to, passing the
// payload through f first (f may be nil).
func InheritEnhancement(to, from Type, f func(Type) Type) Type {
	e := DecorationOf(from, Enhancement)
	if e == nil {
		return to
	}
	if f != nil {
		e = f(e)
	}
	return WithDecoration(to, Enhancement, e)
}

// rewrap re-attaches the decorations d to the transformed core, passing every
// payload through the same transformation f. Slots are handled separately so
// transforming one payload never touches the other.
func rewrap(core Type, d decorations, f func(Type) Type) Type {
	if d.empty() || core.IsError() {
		return core
	}
	if d.enhancement != nil {
		core = WithDecoration(core, Enhancement, f(d.enhancement))
	}
	if d.alternative != nil {
		core = WithDecoration(core, Alternative, f(d.alternative))
	}
	return core
}

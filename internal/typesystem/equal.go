package typesystem

// Equal reports whether a and b are structurally identical, decorations
// included.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case TSimple:
		y, ok := b.(TSimple)
		if !ok || x.Con != y.Con || x.Nullable != y.Nullable || len(x.Args) != len(y.Args) {
			return false
		}
		if !annotationsEqual(x.Annotations, y.Annotations) {
			return false
		}
		for i := range x.Args {
			if !projectionsEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return decorationsEqual(x.decor, y.decor)
	case TFlexible:
		y, ok := b.(TFlexible)
		if !ok {
			return false
		}
		return Equal(x.lower, y.lower) && Equal(x.upper, y.upper) && decorationsEqual(x.decor, y.decor)
	}
	return false
}

func projectionsEqual(a, b Projection) bool {
	if a.Star || b.Star {
		return a.Star == b.Star
	}
	return a.Variance == b.Variance && Equal(a.Type, b.Type)
}

func decorationsEqual(a, b decorations) bool {
	return Equal(a.enhancement, b.enhancement) && Equal(a.alternative, b.alternative)
}

func annotationsEqual(a, b Annotations) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Args) != len(b[i].Args) {
			return false
		}
		for j := range a[i].Args {
			if a[i].Args[j] != b[i].Args[j] {
				return false
			}
		}
	}
	return true
}

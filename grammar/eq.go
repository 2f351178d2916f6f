package grammar

// Eq returns whether two parameters are syntactically equal.
func Eq(a, b Parameter) bool {
	switch a := a.(type) {
	case Var:
		o, ok := b.(Var)
		return ok && a == o
	case *RigidTy:
		o, ok := b.(*RigidTy)
		return ok && a.Name == o.Name && allEq(a.Params, o.Params)
	case *AliasTy:
		o, ok := b.(*AliasTy)
		return ok && a.Trait == o.Trait && a.Item == o.Item && allEq(a.Params, o.Params)
	case Static:
		_, ok := b.(Static)
		return ok
	default:
		return false
	}
}

func allEq(as, bs []Parameter) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Eq(as[i], bs[i]) {
			return false
		}
	}
	return true
}

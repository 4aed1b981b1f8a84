package ada

// Bound is a value endpoint: either Unbounded (meaning -infinity when used
// as a lower bound, +infinity when used as an upper bound) or Inclusive of
// a concrete scalar. Arithmetic on bounds is lifted pointwise: combining any
// Unbounded bound with anything yields Unbounded, since the extremes are
// absorbing for addition and for the min/max used by join.
type Bound struct {
	unbounded bool
	value     scalar
}

// Unbounded constructs the unbounded endpoint.
func Unbounded() Bound { return Bound{unbounded: true} }

// Inclusive constructs a finite endpoint at the given scalar.
func Inclusive(v scalar) Bound { return Bound{value: v} }

func (b Bound) IsUnbounded() bool { return b.unbounded }

// Value returns the finite scalar and true, or the zero value and false if
// the bound is unbounded.
func (b Bound) Value() (scalar, bool) {
	if b.unbounded {
		return nil, false
	}
	return b.value, true
}

func (b Bound) String() string {
	if b.unbounded {
		return "unbounded"
	}
	return b.value.String()
}

// addBound lifts scalar addition over bounds: unbounded is absorbing.
func addBound(a, b Bound) Bound {
	if a.unbounded || b.unbounded {
		return Unbounded()
	}
	return Inclusive(a.value.Add(b.value))
}

// negBound lifts scalar negation; negating an unbounded bound stays unbounded
// (the caller is responsible for swapping which side it plays, e.g. negating
// a lower bound produces a value meant to be used as an upper bound).
func negBound(a Bound) Bound {
	if a.unbounded {
		return Unbounded()
	}
	return Inclusive(a.value.Neg())
}

// mulScalarBound lifts multiplication by a fixed, known-sign scalar factor
// over a bound. The sign of factor determines whether Unbounded is preserved
// as-is or flips (handled by the caller, which picks which bound plays which
// role); a zero factor collapses any bound, including Unbounded, to zero,
// since 0 * (+-infinity) is defined as 0 for this domain's purposes (the
// result range is always the singleton {0} when either factor is the exact
// value 0).
func mulScalarBound(factor scalar, b Bound) Bound {
	if factor.IsZero() {
		return Inclusive(zeroLike(factor))
	}
	if b.unbounded {
		return Unbounded()
	}
	return Inclusive(b.value.Mul(factor))
}

func zeroLike(s scalar) scalar {
	switch s.(type) {
	case intScalar:
		return intScalarOf(0)
	case ratScalar:
		return ratScalarOfInt(0)
	default:
		panic("ada: unknown scalar kind")
	}
}

// minAsLow returns the bound that is smaller when both bounds play the role
// of a range's lower endpoint (so Unbounded, standing for -infinity, always
// wins).
func minAsLow(a, b Bound) Bound {
	switch {
	case a.unbounded || b.unbounded:
		return Unbounded()
	case a.value.Cmp(b.value) <= 0:
		return a
	default:
		return b
	}
}

// maxAsHigh returns the bound that is larger when both bounds play the role
// of a range's upper endpoint (so Unbounded, standing for +infinity, always
// wins).
func maxAsHigh(a, b Bound) Bound {
	switch {
	case a.unbounded || b.unbounded:
		return Unbounded()
	case a.value.Cmp(b.value) >= 0:
		return a
	default:
		return b
	}
}

// leqLowHigh reports whether a low-bound a is at most a high-bound b,
// treating Unbounded on either side as the respective infinity (so it is
// always true for at least one unbounded operand).
func leqLowHigh(lo, hi Bound) bool {
	if lo.unbounded || hi.unbounded {
		return true
	}
	return lo.value.Cmp(hi.value) <= 0
}

// ltHighLow reports whether a high-bound a is strictly less than a low-bound
// b; used to detect that two ranges are disjoint.
func ltHighLow(hi, lo Bound) bool {
	if hi.unbounded || lo.unbounded {
		return false
	}
	return hi.value.Cmp(lo.value) < 0
}

// boundsEq reports whether two bounds denote the same endpoint.
func boundsEq(a, b Bound) bool {
	if a.unbounded != b.unbounded {
		return false
	}
	if a.unbounded {
		return true
	}
	return a.value.Cmp(b.value) == 0
}

package ada

import "math/big"

// RAV (RealAbstractValue) abstracts a set of reals as a convex Range
// together with a tri-state flag recording whether every element of that
// set is known to be an integer, known not to be, or undetermined. The flag
// is tracked separately from the range because a range with non-integer
// bounds can still be known to contain only integers (e.g. after joining
// two singleton integers that happen to straddle a fraction is NOT such a
// case, but an operation that propagates "both operands were integral"
// facts can assert integrality even once the bounds themselves are
// fractional due to widening elsewhere in the surrounding analysis).
type RAV struct {
	Range     Range
	IsInteger Tri
}

// RAVOfInt builds an exact, known-integer RAV from a concrete integer. RAV
// always carries a rational-valued Range (even when that value happens to
// be a whole number), so every RAV mixes freely under ravAdd/ravMul/ravJoin
// regardless of how it was built.
func RAVOfInt(n int64) RAV {
	return RAV{Range: single(ratScalarOfInt(n)), IsInteger: TriTrue}
}

// RAVOfRat builds an exact RAV from a concrete rational, inferring
// integrality from the value itself.
func RAVOfRat(v *big.Rat) RAV {
	s := newRatScalar(v)
	return RAV{Range: single(s), IsInteger: TriOfBool(s.IsIntegral())}
}

// RAVTop is the least-informative RAV for a fully unconstrained real.
func RAVTop() RAV {
	return RAV{Range: multi(Unbounded(), Unbounded()), IsInteger: TriUnknown}
}

// RAVOfIntegerRange builds a RAV from a range that is known, by
// construction, to only ever take integer values — typically an Integer-sort
// abstract value being widened into Real sort for mixed arithmetic. This is
// the one place IsInteger is allowed to be Yes on a non-singleton range: the
// range's own Rational representation can't distinguish "continuous interval
// of rationals" from "the integers between lo and hi", so the caller must
// assert which one it is.
func RAVOfIntegerRange(lo, hi int64) RAV {
	r := multi(Inclusive(ratScalarOfInt(lo)), Inclusive(ratScalarOfInt(hi)))
	return RAV{Range: r, IsInteger: TriTrue}
}

func (a RAV) String() string {
	return a.Range.String() + " (integer: " + a.IsInteger.String() + ")"
}

// ravJoin computes the least upper bound of two RAVs: the range is joined
// pointwise and the integrality flag is joined in the tri-state lattice, so
// two integer RAVs stay known-integer but an integer joined with a
// known-fractional value becomes Unknown rather than silently losing the
// fact that could still hold once the range is widened further.
func ravJoin(a, b RAV) RAV {
	return RAV{Range: joinRange(a.Range, b.Range), IsInteger: TriJoin(a.IsInteger, b.IsInteger)}
}

// ravAdd computes the pointwise sum of two RAVs. Integer + integer is
// integer; for any other combination the flag is recomputed from the sum
// range with rangeIsInteger rather than propagated, since a known
// non-integer plus a known non-integer can still be integral (e.g.
// 0.5 + 0.5 = 1, which rangeIsInteger reports as True).
func ravAdd(a, b RAV) RAV {
	result := addRange(a.Range, b.Range)
	isInt := TriUnknown
	if a.IsInteger == TriTrue && b.IsInteger == TriTrue {
		isInt = TriTrue
	} else {
		isInt = rangeIsInteger(result)
	}
	return RAV{Range: result, IsInteger: isInt}
}

// ravMul computes the pointwise product of two RAVs, with the same
// integrality rule as ravAdd: integer * integer is known integral, and any
// other combination falls back to rangeIsInteger on the product range.
func ravMul(a, b RAV) RAV {
	result := mulRange(a.Range, b.Range)
	isInt := TriUnknown
	if a.IsInteger == TriTrue && b.IsInteger == TriTrue {
		isInt = TriTrue
	} else {
		isInt = rangeIsInteger(result)
	}
	return RAV{Range: result, IsInteger: isInt}
}

// ravScalarMul multiplies a RAV by a fixed concrete integer factor (always
// denominator 1). Integer * integer-factor is integer; any other case falls
// back to rangeIsInteger on the computed result, same as ravAdd/ravMul.
func ravScalarMul(factor int64, a RAV) RAV {
	f := ratScalarOfInt(factor)
	result := scalarMulRange(f, a.Range)
	isInt := TriUnknown
	if a.IsInteger == TriTrue {
		isInt = TriTrue
	} else {
		isInt = rangeIsInteger(result)
	}
	return RAV{Range: result, IsInteger: isInt}
}

// ravOverlap reports whether the two RAVs' ranges could denote the same
// concrete real.
func ravOverlap(a, b RAV) bool { return overlap(a.Range, b.Range) }

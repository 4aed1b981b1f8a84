package ada

import "math/big"

// IntegerSingle constructs the exact integer range {n}.
func IntegerSingle(n *big.Int) Range { return single(newIntScalar(n)) }

// IntegerTop constructs the unconstrained integer range (-infinity, +infinity).
func IntegerTop() Range { return multi(Unbounded(), Unbounded()) }

// IntegerInterval constructs the integer range [lo, hi]; a nil bound denotes
// the corresponding infinity.
func IntegerInterval(lo, hi *big.Int) Range {
	return multi(intBoundOf(lo), intBoundOf(hi))
}

func intBoundOf(v *big.Int) Bound {
	if v == nil {
		return Unbounded()
	}
	return Inclusive(newIntScalar(v))
}

// RealSingle constructs the exact real range {v}.
func RealSingle(v *big.Rat) Range { return single(newRatScalar(v)) }

// RealTop constructs the unconstrained real range (-infinity, +infinity).
func RealTop() Range { return multi(Unbounded(), Unbounded()) }

// RealInterval constructs the real range [lo, hi]; a nil bound denotes the
// corresponding infinity.
func RealInterval(lo, hi *big.Rat) Range {
	return multi(ratBoundOf(lo), ratBoundOf(hi))
}

func ratBoundOf(v *big.Rat) Bound {
	if v == nil {
		return Unbounded()
	}
	return Inclusive(newRatScalar(v))
}

// Range is a convex abstraction of a set of scalars: either the exact
// Single value, or the Multi interval [lo, hi]. Multi with equal finite
// bounds is always normalized down to Single by the constructors below, so
// equality of two Range values can be checked structurally.
type Range struct {
	single bool
	value  scalar
	lo, hi Bound
}

// single constructs the exact range containing only v.
func single(v scalar) Range { return Range{single: true, value: v} }

// multi constructs the interval range [lo, hi], normalizing to Single when
// both bounds are the same finite value.
func multi(lo, hi Bound) Range {
	if !lo.unbounded && !hi.unbounded && lo.value.Cmp(hi.value) == 0 {
		return single(lo.value)
	}
	return Range{lo: lo, hi: hi}
}

// bounds returns the (lo, hi) pair for a range, treating Single(v) as the
// degenerate interval [v, v].
func (r Range) bounds() (lo, hi Bound) {
	if r.single {
		return Inclusive(r.value), Inclusive(r.value)
	}
	return r.lo, r.hi
}

func (r Range) String() string {
	if r.single {
		return r.value.String()
	}
	lo, hi := r.bounds()
	return "[" + lo.String() + ", " + hi.String() + "]"
}

// IsSingle reports whether r denotes an exact value, returning it.
func (r Range) IsSingle() (scalar, bool) {
	if r.single {
		return r.value, true
	}
	return nil, false
}

// rangeEq reports whether two ranges denote the same abstract value.
func rangeEq(a, b Range) bool {
	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()
	return boundsEq(aLo, bLo) && boundsEq(aHi, bHi)
}

// joinRange computes the least upper bound of two ranges: the smallest
// interval containing both. Idempotent, commutative and associative.
func joinRange(a, b Range) Range {
	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()
	return multi(minAsLow(aLo, bLo), maxAsHigh(aHi, bHi))
}

// addRange computes the pointwise sum of two ranges: [a.lo+b.lo, a.hi+b.hi].
// Sound for the concrete addition of any x in a and y in b, commutative and
// associative since scalar addition is.
func addRange(a, b Range) Range {
	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()
	return multi(addBound(aLo, bLo), addBound(aHi, bHi))
}

// negRange negates every bound of a range and flips lo/hi, since negation
// reverses order.
func negRange(a Range) Range {
	lo, hi := a.bounds()
	return multi(negBound(hi), negBound(lo))
}

// scalarMulRange multiplies every element of a range by a fixed, concrete
// scalar factor. A negative factor flips which endpoint becomes lo and which
// becomes hi.
func scalarMulRange(factor scalar, a Range) Range {
	lo, hi := a.bounds()
	switch factor.Sign() {
	case 0:
		return single(zeroLike(factor))
	case 1:
		return multi(mulScalarBound(factor, lo), mulScalarBound(factor, hi))
	default:
		return multi(mulScalarBound(factor, hi), mulScalarBound(factor, lo))
	}
}

// isNonNeg reports whether a bound playing the role of a range's lower
// endpoint is known to be >= 0 (false for Unbounded, which as a lower bound
// means -infinity).
func isNonNeg(lo Bound) bool { return !lo.unbounded && lo.value.Sign() >= 0 }

// isNonPos reports whether a bound playing the role of a range's upper
// endpoint is known to be <= 0 (false for Unbounded, which as an upper
// bound means +infinity).
func isNonPos(hi Bound) bool { return !hi.unbounded && hi.value.Sign() <= 0 }

// mulRange computes the range of products {x*y : x in a, y in b} via the
// standard sign-case split for interval multiplication: each operand is
// classified as entirely non-negative, entirely non-positive, or straddling
// zero, and the extremal product is read off the two corners that case
// dictates. This is more precise than folding the join of all four corner
// products unconditionally — e.g. for [0,+inf) * (-inf,0], the corner
// +inf * -inf is one that mulBoundBound can only report as Unbounded (it
// cannot tell which infinity a bare Unbounded represents), so a fold would
// read it as both -inf and +inf and widen to full top; the case split uses
// it only as the lower bound and pairs it with the corner 0 * 0, giving
// (-inf, 0].
func mulRange(a, b Range) Range {
	if av, ok := a.IsSingle(); ok {
		return scalarMulRange(av, b)
	}
	if bv, ok := b.IsSingle(); ok {
		return scalarMulRange(bv, a)
	}

	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()

	switch {
	case isNonNeg(aLo):
		switch {
		case isNonNeg(bLo):
			return multi(mulBoundBound(aLo, bLo), mulBoundBound(aHi, bHi))
		case isNonPos(bHi):
			return multi(mulBoundBound(aHi, bLo), mulBoundBound(aLo, bHi))
		default:
			return multi(mulBoundBound(aHi, bLo), mulBoundBound(aHi, bHi))
		}
	case isNonPos(aHi):
		switch {
		case isNonNeg(bLo):
			return multi(mulBoundBound(aLo, bHi), mulBoundBound(aHi, bLo))
		case isNonPos(bHi):
			return multi(mulBoundBound(aHi, bHi), mulBoundBound(aLo, bLo))
		default:
			return multi(mulBoundBound(aLo, bHi), mulBoundBound(aLo, bLo))
		}
	default:
		switch {
		case isNonNeg(bLo):
			return multi(mulBoundBound(aLo, bHi), mulBoundBound(aHi, bHi))
		case isNonPos(bHi):
			return multi(mulBoundBound(aHi, bLo), mulBoundBound(aLo, bLo))
		default:
			return multi(
				minAsLow(mulBoundBound(aLo, bHi), mulBoundBound(aHi, bLo)),
				maxAsHigh(mulBoundBound(aLo, bLo), mulBoundBound(aHi, bHi)),
			)
		}
	}
}

// mulBoundBound multiplies two bounds, each possibly unbounded. An unbounded
// operand with an operand whose sign is not yet known (it too could be
// unbounded) cannot be classified as +infinity or -infinity without both
// signs, so true corner products that multiply two unbounded operands
// collapse to Unbounded; multiplying an unbounded operand by a finite
// scalar defers to mulScalarBound, which yields 0 for a zero factor and
// Unbounded otherwise (the caller's case split decides which infinity that
// Unbounded stands for).
func mulBoundBound(x, y Bound) Bound {
	switch {
	case !x.unbounded && !y.unbounded:
		return Inclusive(x.value.Mul(y.value))
	case !x.unbounded:
		return mulScalarBound(x.value, y)
	case !y.unbounded:
		return mulScalarBound(y.value, x)
	default:
		return Unbounded()
	}
}

// overlap reports whether two ranges share at least one concrete value.
// Two intervals overlap exactly when neither is entirely above the other.
func overlap(a, b Range) bool {
	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()
	return !ltHighLow(aHi, bLo) && !ltHighLow(bHi, aLo)
}

// rangeCheckEq reports whether a and b could be equal (they overlap) and
// whether they must be equal (both are the same singleton).
func rangeCheckEq(a, b Range) (maybe, must bool) {
	maybe = overlap(a, b)
	av, aOk := a.IsSingle()
	bv, bOk := b.IsSingle()
	must = aOk && bOk && av.Cmp(bv) == 0
	return
}

// rangeCheckLe reports whether some x in a and y in b could satisfy x <= y,
// and whether every such pair must satisfy it.
func rangeCheckLe(a, b Range) (maybe, must bool) {
	aLo, aHi := a.bounds()
	bLo, bHi := b.bounds()
	maybe = leqLowHigh(aLo, bHi)
	must = !aHi.unbounded && !bLo.unbounded && aHi.value.Cmp(bLo.value) <= 0
	if aHi.unbounded || bLo.unbounded {
		must = false
	}
	return
}

// rangeIsInteger classifies whether a rational range's value is necessarily
// an integer: Yes for an integral singleton, No when the range is narrow
// enough and bounded by two non-integers that no integer can fall inside it
// (⌊lo⌋+1 ≥ ⌈hi⌉), Unknown otherwise (including any unbounded side, which
// the floor/ceil test cannot be applied to).
func rangeIsInteger(a Range) Tri {
	if v, ok := a.IsSingle(); ok {
		return TriOfBool(v.IsIntegral())
	}
	lo, hi := a.bounds()
	if lo.unbounded || hi.unbounded {
		return TriUnknown
	}
	loRat, loOk := lo.value.(ratScalar)
	hiRat, hiOk := hi.value.(ratScalar)
	if !loOk || !hiOk {
		// Integer-sort ranges: every finite bound is already integral, so a
		// non-singleton interval always contains more than one integer.
		return TriUnknown
	}
	if loRat.IsIntegral() || hiRat.IsIntegral() {
		return TriUnknown
	}
	loFloor, _ := floorCeil(loRat)
	_, hiCeil := floorCeil(hiRat)
	if new(big.Rat).Add(loFloor.v, big.NewRat(1, 1)).Cmp(hiCeil.v) >= 0 {
		return TriFalse
	}
	return TriUnknown
}

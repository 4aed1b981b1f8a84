// Package ada implements the Abstract Domain Algebra: a lattice of abstract
// values over the base sorts used by the surrounding symbolic executor
// (booleans, naturals, integers, reals, bit-vectors, complex numbers, arrays
// and structs), together with join, overlap, containment and
// arithmetic-propagation operators.
//
// Every operation in this package is a total, pure function: there is no
// error channel and no shared mutable state, so values can be freely passed
// between goroutines.
package ada

import (
	"fmt"
	"math/big"
)

// scalar is the totally-ordered numeric value that range bounds are built
// from. Two concrete instantiations are provided: intScalar (arbitrary
// precision integers) and ratScalar (arbitrary precision rationals). Keeping
// the sign-case multiplication and join/meet logic behind this interface
// lets the range algebra in range.go be written once and reused for both
// the Integer and Real sorts, instead of duplicating the straddle-by-straddle
// case analysis for each numeric kind.
type scalar interface {
	fmt.Stringer

	// Cmp returns -1, 0 or 1 according to whether the receiver is less
	// than, equal to, or greater than other.
	Cmp(other scalar) int
	Add(other scalar) scalar
	Sub(other scalar) scalar
	Mul(other scalar) scalar
	Neg() scalar
	Sign() int
	IsZero() bool
	// IsIntegral reports whether the scalar denotes a whole number. It is
	// always true for intScalar and conditionally true for ratScalar.
	IsIntegral() bool
}

type intScalar struct{ v *big.Int }

func newIntScalar(v *big.Int) intScalar { return intScalar{v: v} }

func intScalarOf(i int64) intScalar { return intScalar{v: big.NewInt(i)} }

func (a intScalar) String() string { return a.v.String() }

func (a intScalar) Cmp(other scalar) int { return a.v.Cmp(other.(intScalar).v) }

func (a intScalar) Add(other scalar) scalar {
	return intScalar{v: new(big.Int).Add(a.v, other.(intScalar).v)}
}

func (a intScalar) Sub(other scalar) scalar {
	return intScalar{v: new(big.Int).Sub(a.v, other.(intScalar).v)}
}

func (a intScalar) Mul(other scalar) scalar {
	return intScalar{v: new(big.Int).Mul(a.v, other.(intScalar).v)}
}

func (a intScalar) Neg() scalar { return intScalar{v: new(big.Int).Neg(a.v)} }

func (a intScalar) Sign() int { return a.v.Sign() }

func (a intScalar) IsZero() bool { return a.v.Sign() == 0 }

func (a intScalar) IsIntegral() bool { return true }

type ratScalar struct{ v *big.Rat }

func newRatScalar(v *big.Rat) ratScalar { return ratScalar{v: v} }

func ratScalarOfInt(i int64) ratScalar { return ratScalar{v: new(big.Rat).SetInt64(i)} }

func (a ratScalar) String() string { return a.v.RatString() }

func (a ratScalar) Cmp(other scalar) int { return a.v.Cmp(other.(ratScalar).v) }

func (a ratScalar) Add(other scalar) scalar {
	return ratScalar{v: new(big.Rat).Add(a.v, other.(ratScalar).v)}
}

func (a ratScalar) Sub(other scalar) scalar {
	return ratScalar{v: new(big.Rat).Sub(a.v, other.(ratScalar).v)}
}

func (a ratScalar) Mul(other scalar) scalar {
	return ratScalar{v: new(big.Rat).Mul(a.v, other.(ratScalar).v)}
}

func (a ratScalar) Neg() scalar { return ratScalar{v: new(big.Rat).Neg(a.v)} }

func (a ratScalar) Sign() int { return a.v.Sign() }

func (a ratScalar) IsZero() bool { return a.v.Sign() == 0 }

func (a ratScalar) IsIntegral() bool { return a.v.IsInt() }

// floorCeil returns the floor and ceiling of a rational scalar as scalars.
func floorCeil(a ratScalar) (floor, ceil ratScalar) {
	num, den := a.v.Num(), a.v.Denom()
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(num, den, r)
	switch {
	case r.Sign() == 0:
		return ratScalar{v: new(big.Rat).SetInt(q)}, ratScalar{v: new(big.Rat).SetInt(q)}
	case num.Sign() > 0:
		ceilInt := new(big.Int).Add(q, big.NewInt(1))
		return ratScalar{v: new(big.Rat).SetInt(q)}, ratScalar{v: new(big.Rat).SetInt(ceilInt)}
	default:
		floorInt := new(big.Int).Sub(q, big.NewInt(1))
		return ratScalar{v: new(big.Rat).SetInt(floorInt)}, ratScalar{v: new(big.Rat).SetInt(q)}
	}
}

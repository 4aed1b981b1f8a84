package ada

import "github.com/symlift/corelift/bvd"

// Complex abstracts a complex number as an independent pair of real
// abstract values for its real and imaginary parts. The two components are
// never correlated (e.g. "this complex lies on the unit circle" cannot be
// expressed), matching the precision the rest of this domain commits to.
type Complex struct {
	Re, Im RAV
}

func complexJoin(a, b Complex) Complex {
	return Complex{Re: ravJoin(a.Re, b.Re), Im: ravJoin(a.Im, b.Im)}
}

func complexOverlap(a, b Complex) bool {
	return ravOverlap(a.Re, b.Re) && ravOverlap(a.Im, b.Im)
}

// Value is a sort-indexed abstract value: exactly one of the typed fields
// below is meaningful, selected by Sort. Struct recurses into one Value per
// field so join/overlap can be computed field-wise. Array recurses into a
// single Value describing every element: the index is not part of this
// domain, so an array abstraction is exactly AbstractValue<elem>.
type Value struct {
	sort Sort

	b   Tri
	nat NatValueRange
	i   Range
	rav RAV
	bv  bvd.Domain
	cpx Complex

	elts    []Value // per-field abstractions, SortStruct only
	arrElem *Value  // element abstraction, SortArray only
}

func (v Value) Sort() Sort { return v.sort }

func (v Value) String() string {
	switch v.sort {
	case SortBool:
		return v.b.String()
	case SortNat:
		return v.nat.String()
	case SortInteger:
		return v.i.String()
	case SortReal:
		return v.rav.String()
	case SortBV:
		return v.bv.String()
	case SortComplex:
		return v.cpx.Re.String() + " + " + v.cpx.Im.String() + "i"
	case SortStruct:
		s := "{"
		for i, f := range v.elts {
			if i > 0 {
				s += ", "
			}
			s += f.String()
		}
		return s + "}"
	case SortArray:
		return "[" + v.AsArrayElem().String() + ", ...]"
	default:
		return v.sort.String()
	}
}

func BoolValue(t Tri) Value { return Value{sort: SortBool, b: t} }

func (v Value) AsBool() Tri { return v.b }

func NatValue(n NatValueRange) Value { return Value{sort: SortNat, nat: n} }

func (v Value) AsNat() NatValueRange { return v.nat }

func IntegerValue(r Range) Value { return Value{sort: SortInteger, i: r} }

func (v Value) AsInteger() Range { return v.i }

func RealValue(r RAV) Value { return Value{sort: SortReal, rav: r} }

func (v Value) AsReal() RAV { return v.rav }

func BVValue(d bvd.Domain) Value { return Value{sort: SortBV, bv: d} }

func (v Value) AsBV() bvd.Domain { return v.bv }

func ComplexValue(c Complex) Value { return Value{sort: SortComplex, cpx: c} }

func (v Value) AsComplex() Complex { return v.cpx }

// StructValue builds a struct-sorted abstract value from one abstraction
// per field, in declaration order.
func StructValue(fields []Value) Value { return Value{sort: SortStruct, elts: fields} }

func (v Value) AsStructFields() []Value { return v.elts }

// ArrayValue builds an array-sorted abstract value: one abstraction
// covering every element, the index itself is not modeled.
func ArrayValue(elem Value) Value { return Value{sort: SortArray, arrElem: &elem} }

func (v Value) AsArrayElem() Value { return *v.arrElem }

// Top returns the least-informative (most over-approximate) abstract value
// of the given sort. Bool/Nat/Integer/Real/Complex have a canonical top. BV
// needs a width, which a Sort does not carry, so Top panics for SortBV; the
// full BV domain is built with BVValue(bvd.Any(width)). Struct and Array
// require a shape (field sorts, or an element sort), so Top panics for
// those two sorts as well; their tops are built via StructValue/ArrayValue
// with per-component tops.
func Top(sort Sort) Value {
	switch sort {
	case SortBool:
		return BoolValue(TriUnknown)
	case SortNat:
		return NatValue(NatMulti(0, 0, true))
	case SortInteger:
		return IntegerValue(IntegerTop())
	case SortReal:
		return RealValue(RAVTop())
	case SortBV:
		panic("ada: BV top needs a width; use BVValue(bvd.Any(width))")
	case SortComplex:
		return ComplexValue(Complex{Re: RAVTop(), Im: RAVTop()})
	default:
		panic("ada: Top requires a shape for sort " + sort.String())
	}
}

// Single lifts a concrete value to its exact abstraction.
func Single(c ConcreteValue) Value {
	switch c.sort {
	case SortBool:
		return BoolValue(TriOfBool(c.b))
	case SortNat:
		return NatValue(NatSingle(c.nat))
	case SortInteger:
		return IntegerValue(IntegerSingle(c.i))
	case SortReal:
		return RealValue(RAVOfRat(c.r))
	case SortBV:
		return BVValue(bvd.Singleton(c.bvW, c.bvN))
	case SortComplex:
		return ComplexValue(Complex{Re: RAVOfRat(c.reC), Im: RAVOfRat(c.imC)})
	case SortArray:
		// The index is not part of this domain, so the exact abstraction of
		// a concrete array is the join of every element's exact abstraction:
		// the one thing true of "the element at any index" is that it is
		// one of these concrete values.
		if len(c.elts) == 0 {
			panic("ada: Single given an empty concrete array, which has no element sort to infer")
		}
		elem := Single(c.elts[0])
		for _, e := range c.elts[1:] {
			elem = Join(elem, Single(e))
		}
		return ArrayValue(elem)
	case SortStruct:
		fields := make([]Value, len(c.elts))
		for i, e := range c.elts {
			fields[i] = Single(e)
		}
		return StructValue(fields)
	default:
		panic("ada: Single given unknown sort")
	}
}

// Join computes the least upper bound of two same-sorted abstract values.
func Join(a, b Value) Value {
	if a.sort != b.sort {
		panic("ada: Join of mismatched sorts " + a.sort.String() + " and " + b.sort.String())
	}
	switch a.sort {
	case SortBool:
		return BoolValue(TriJoin(a.b, b.b))
	case SortNat:
		return NatValue(NatJoin(a.nat, b.nat))
	case SortInteger:
		return IntegerValue(joinRange(a.i, b.i))
	case SortReal:
		return RealValue(ravJoin(a.rav, b.rav))
	case SortBV:
		return BVValue(bvd.Union(bvd.DefaultParams, a.bv.Width(), a.bv, b.bv))
	case SortComplex:
		return ComplexValue(complexJoin(a.cpx, b.cpx))
	case SortStruct:
		return StructValue(zipJoin(a.elts, b.elts))
	case SortArray:
		return ArrayValue(Join(a.AsArrayElem(), b.AsArrayElem()))
	default:
		panic("ada: Join given unknown sort")
	}
}

func zipJoin(a, b []Value) []Value {
	if len(a) != len(b) {
		panic("ada: Join of structs with differing field counts")
	}
	out := make([]Value, len(a))
	for i := range a {
		out[i] = Join(a[i], b[i])
	}
	return out
}

// Overlap reports whether two same-sorted abstract values could denote the
// same concrete value.
func Overlap(a, b Value) bool {
	if a.sort != b.sort {
		panic("ada: Overlap of mismatched sorts " + a.sort.String() + " and " + b.sort.String())
	}
	switch a.sort {
	case SortBool:
		return a.b == TriUnknown || b.b == TriUnknown || a.b == b.b
	case SortNat:
		return NatOverlap(a.nat, b.nat)
	case SortInteger:
		return overlap(a.i, b.i)
	case SortReal:
		return ravOverlap(a.rav, b.rav)
	case SortBV:
		return bvd.DomainsOverlap(a.bv, b.bv)
	case SortComplex:
		return complexOverlap(a.cpx, b.cpx)
	case SortStruct:
		if len(a.elts) != len(b.elts) {
			return false
		}
		for i := range a.elts {
			if !Overlap(a.elts[i], b.elts[i]) {
				return false
			}
		}
		return true
	case SortArray:
		return Overlap(a.AsArrayElem(), b.AsArrayElem())
	default:
		panic("ada: Overlap given unknown sort")
	}
}

// Contains reports whether the abstract value a subsumes the concrete value
// c. c must have the same sort as a. It is computed as
// Overlap(Single(c), a). For values that contain no array, Single(c) is an
// exact singleton, so this is exactly a subsumption test; for an array,
// Single(c) is the join of its elements' abstractions, so the result
// reports whether that join overlaps a's element abstraction.
func Contains(c ConcreteValue, a Value) bool {
	if c.sort != a.sort {
		panic("ada: Contains of mismatched sorts " + c.sort.String() + " and " + a.sort.String())
	}
	return Overlap(Single(c), a)
}

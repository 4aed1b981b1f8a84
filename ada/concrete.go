package ada

import "math/big"

// ConcreteValue is a fully evaluated value in one of the base sorts. It is
// the input to Single (lift a concrete value to its exact abstraction) and
// to Contains (test whether an abstract value subsumes a concrete one).
type ConcreteValue struct {
	sort Sort
	b    bool
	nat  uint64
	i    *big.Int
	r    *big.Rat
	bvW  uint
	bvN  *big.Int
	reC  *big.Rat
	imC  *big.Rat
	elts []ConcreteValue
}

func (c ConcreteValue) Sort() Sort { return c.sort }

func ConcreteBool(b bool) ConcreteValue { return ConcreteValue{sort: SortBool, b: b} }

func ConcreteNat(n uint64) ConcreteValue { return ConcreteValue{sort: SortNat, nat: n} }

func ConcreteInteger(n *big.Int) ConcreteValue { return ConcreteValue{sort: SortInteger, i: n} }

func ConcreteReal(v *big.Rat) ConcreteValue { return ConcreteValue{sort: SortReal, r: v} }

func ConcreteBV(width uint, n *big.Int) ConcreteValue {
	return ConcreteValue{sort: SortBV, bvW: width, bvN: n}
}

func ConcreteComplex(re, im *big.Rat) ConcreteValue {
	return ConcreteValue{sort: SortComplex, reC: re, imC: im}
}

func ConcreteArray(elts []ConcreteValue) ConcreteValue {
	return ConcreteValue{sort: SortArray, elts: elts}
}

func ConcreteStruct(fields []ConcreteValue) ConcreteValue {
	return ConcreteValue{sort: SortStruct, elts: fields}
}

package ada

import (
	"math/big"
	"testing"

	"github.com/symlift/corelift/bvd"
)

func TestSingleAndContainsBool(t *testing.T) {
	v := Single(ConcreteBool(true))
	if !Contains(ConcreteBool(true), v) {
		t.Fatalf("exact bool must contain itself")
	}
	if Contains(ConcreteBool(false), v) {
		t.Fatalf("exact true must not contain false")
	}
}

func TestJoinBoolToUnknown(t *testing.T) {
	a := Single(ConcreteBool(true))
	b := Single(ConcreteBool(false))
	joined := Join(a, b)
	if joined.AsBool() != TriUnknown {
		t.Fatalf("joining true and false must yield Unknown")
	}
}

func TestJoinIntegerRange(t *testing.T) {
	a := IntegerValue(IntegerInterval(big.NewInt(0), big.NewInt(2)))
	b := IntegerValue(IntegerInterval(big.NewInt(5), big.NewInt(9)))
	joined := Join(a, b)
	want := IntegerInterval(big.NewInt(0), big.NewInt(9))
	if !rangeEq(joined.AsInteger(), want) {
		t.Fatalf("Join(%v,%v).AsInteger() = %v, want %v", a, b, joined.AsInteger(), want)
	}
}

func TestBVJoinAndOverlap(t *testing.T) {
	a := BVValue(bvd.Singleton(8, big.NewInt(1)))
	b := BVValue(bvd.Singleton(8, big.NewInt(2)))
	joined := Join(a, b)
	if !Overlap(joined, a) || !Overlap(joined, b) {
		t.Fatalf("joined BV domain must overlap both originals")
	}
	if Overlap(a, b) {
		t.Fatalf("two distinct BV singletons must not overlap")
	}
}

func TestStructJoinFieldwise(t *testing.T) {
	s1 := StructValue([]Value{
		IntegerValue(IntegerSingle(big.NewInt(1))),
		BoolValue(TriTrue),
	})
	s2 := StructValue([]Value{
		IntegerValue(IntegerSingle(big.NewInt(3))),
		BoolValue(TriTrue),
	})
	joined := Join(s1, s2)
	fields := joined.AsStructFields()
	want := IntegerInterval(big.NewInt(1), big.NewInt(3))
	if !rangeEq(fields[0].AsInteger(), want) {
		t.Fatalf("struct field 0 after join = %v, want %v", fields[0].AsInteger(), want)
	}
	if fields[1].AsBool() != TriTrue {
		t.Fatalf("struct field 1 (agreeing bool) should stay TriTrue")
	}
}

func TestArrayJoinIgnoresIndexAndJoinsElements(t *testing.T) {
	a1 := ArrayValue(IntegerValue(IntegerSingle(big.NewInt(0))))
	a2 := ArrayValue(IntegerValue(IntegerSingle(big.NewInt(10))))
	joined := Join(a1, a2)
	want := IntegerInterval(big.NewInt(0), big.NewInt(10))
	if !rangeEq(joined.AsArrayElem().AsInteger(), want) {
		t.Fatalf("array elem after join = %v, want %v", joined.AsArrayElem().AsInteger(), want)
	}
}

func TestSingleArrayJoinsEveryConcreteElement(t *testing.T) {
	arr := ConcreteArray([]ConcreteValue{
		ConcreteInteger(big.NewInt(0)),
		ConcreteInteger(big.NewInt(6)),
	})
	v := Single(arr)
	want := IntegerInterval(big.NewInt(0), big.NewInt(6))
	if !rangeEq(v.AsArrayElem().AsInteger(), want) {
		t.Fatalf("Single(array).AsArrayElem() = %v, want %v", v.AsArrayElem().AsInteger(), want)
	}
}

func TestArrayOverlapIgnoresIndex(t *testing.T) {
	a1 := ArrayValue(IntegerValue(IntegerSingle(big.NewInt(3))))
	a2 := ArrayValue(IntegerValue(IntegerInterval(big.NewInt(0), big.NewInt(5))))
	if !Overlap(a1, a2) {
		t.Fatalf("arrays with overlapping element abstractions must overlap regardless of shape")
	}
}

func TestComplexJoinOverlap(t *testing.T) {
	c1 := ComplexValue(Complex{Re: RAVOfInt(0), Im: RAVOfInt(0)})
	c2 := ComplexValue(Complex{Re: RAVOfInt(1), Im: RAVOfInt(1)})
	joined := Join(c1, c2)
	if !Overlap(joined, c1) || !Overlap(joined, c2) {
		t.Fatalf("joined complex value must overlap both originals")
	}
}

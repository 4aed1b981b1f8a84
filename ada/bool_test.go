package ada

import "testing"

func TestTriJoinIdempotentCommutative(t *testing.T) {
	for _, x := range []Tri{TriTrue, TriFalse, TriUnknown} {
		if TriJoin(x, x) != x {
			t.Fatalf("TriJoin(%v,%v) not idempotent", x, x)
		}
	}
	if TriJoin(TriTrue, TriFalse) != TriUnknown {
		t.Fatalf("joining disagreeing facts must yield Unknown")
	}
	if TriJoin(TriTrue, TriFalse) != TriJoin(TriFalse, TriTrue) {
		t.Fatalf("TriJoin must be commutative")
	}
}

func TestTriAndOrAbsorbing(t *testing.T) {
	if TriAnd(TriFalse, TriUnknown) != TriFalse {
		t.Fatalf("false is absorbing for and, even against unknown")
	}
	if TriOr(TriTrue, TriUnknown) != TriTrue {
		t.Fatalf("true is absorbing for or, even against unknown")
	}
	if TriAnd(TriUnknown, TriUnknown) != TriUnknown {
		t.Fatalf("and of two unknowns is unknown")
	}
	if TriOr(TriFalse, TriFalse) != TriFalse {
		t.Fatalf("or of two falses is false")
	}
}

func TestTriNot(t *testing.T) {
	if TriNot(TriTrue) != TriFalse || TriNot(TriFalse) != TriTrue {
		t.Fatalf("TriNot must flip true/false")
	}
	if TriNot(TriUnknown) != TriUnknown {
		t.Fatalf("TriNot(Unknown) must stay Unknown")
	}
}

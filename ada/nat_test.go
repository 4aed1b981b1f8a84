package ada

import "testing"

func TestNatJoinAndContains(t *testing.T) {
	a := NatMulti(0, 3, false)
	b := NatMulti(2, 8, false)
	joined := NatJoin(a, b)
	if !NatContains(0, joined) || !NatContains(8, joined) {
		t.Fatalf("joined range %v should contain both original endpoints", joined)
	}
	if NatContains(9, joined) {
		t.Fatalf("joined range %v should not contain 9", joined)
	}
}

func TestNatAddUnbounded(t *testing.T) {
	a := NatMulti(1, 0, true)
	b := NatSingle(5)
	got := NatAdd(a, b)
	if !NatContains(1000000, got) {
		t.Fatalf("adding a finite value to an unbounded-above range must stay unbounded above")
	}
}

func TestNatOverlap(t *testing.T) {
	a := NatMulti(0, 5, false)
	b := NatMulti(6, 10, false)
	if NatOverlap(a, b) {
		t.Fatalf("expected %v and %v to be disjoint", a, b)
	}
	c := NatMulti(5, 10, false)
	if !NatOverlap(a, c) {
		t.Fatalf("expected %v and %v to overlap at 5", a, c)
	}
}

func TestNatMul(t *testing.T) {
	a := NatMulti(2, 3, false)
	b := NatMulti(4, 5, false)
	got := NatMul(a, b)
	if !NatContains(8, got) || !NatContains(15, got) {
		t.Fatalf("NatMul(%v,%v) = %v, want to contain [8,15]", a, b, got)
	}
}

package ada

import (
	"math/big"
	"testing"

	"github.com/symlift/corelift/utils/set"
)

// TestJoinRangeIsCommutativeAndAssociativeOverSubsets exhaustively checks
// joinRange against every subset of a small sample of ranges: folding a
// subset left-to-right must agree with folding it in reverse, which can
// only hold if joinRange is both commutative and associative over this
// sample. set.SubsetsV drives the enumeration rather than a hand-rolled
// bit-mask loop.
func TestJoinRangeIsCommutativeAndAssociativeOverSubsets(t *testing.T) {
	sample := []interface{}{
		IntegerSingle(big.NewInt(1)),
		IntegerSingle(big.NewInt(5)),
		IntegerInterval(big.NewInt(0), big.NewInt(3)),
		IntegerInterval(big.NewInt(4), big.NewInt(10)),
		IntegerTop(),
	}

	checked := 0
	set.SubsetsV(sample...).ForEach(func(subset []interface{}) {
		if len(subset) < 2 {
			return
		}
		checked++

		ranges := make([]Range, len(subset))
		for i, v := range subset {
			ranges[i] = v.(Range)
		}

		forward := ranges[0]
		for _, r := range ranges[1:] {
			forward = joinRange(forward, r)
		}

		backward := ranges[len(ranges)-1]
		for i := len(ranges) - 2; i >= 0; i-- {
			backward = joinRange(backward, ranges[i])
		}

		if !rangeEq(forward, backward) {
			t.Fatalf("join over subset %v is order-dependent: forward %v, backward %v", ranges, forward, backward)
		}
	})

	if checked == 0 {
		t.Fatalf("expected at least one subset of size >= 2 to be exercised")
	}
}

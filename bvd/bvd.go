// Package bvd is a minimal stand-in for the bit-vector domain service that
// the abstract domain algebra treats as an opaque external collaborator.
// Implementing the bit-vector domain itself (disjunctive intervals,
// knownbits, strided sets, and their widening) is explicitly out of scope
// for this module: ada only ever calls Any, Singleton, Union and
// DomainsOverlap and never inspects a Domain's internals. This package
// exists so the rest of the module has something concrete to link against
// and exercise in tests; a production deployment would swap it out for the
// real solver-backed bit-vector domain without ada noticing the difference.
package bvd

import (
	"fmt"
	"math/big"
)

// Params configures the precision/cost tradeoff of Union. A real bit-vector
// domain would expose many more knobs (stride detection, known-bits
// tracking, widening thresholds); this stand-in only needs the one that
// bounds how many disjoint exact values it is willing to track before
// collapsing to Top.
type Params struct {
	MaxDisjuncts int
}

// DefaultParams is a reasonable starting point for callers that don't have
// a specific precision budget in mind.
var DefaultParams = Params{MaxDisjuncts: 8}

// Domain is an abstraction of a set of w-bit machine words. The two
// constructors below (Any, Singleton) and the two combinators (Union,
// DomainsOverlap) are the entire surface ada depends on.
type Domain struct {
	width  uint
	top    bool
	values []*big.Int // deduplicated, masked to width, in no fixed order; empty means bottom
}

// Width reports the bit width this domain abstracts over.
func (d Domain) Width() uint { return d.width }

// IsTop reports whether the domain denotes "any w-bit value".
func (d Domain) IsTop() bool { return d.top }

// IsBottom reports whether the domain denotes no value at all.
func (d Domain) IsBottom() bool { return !d.top && len(d.values) == 0 }

func (d Domain) String() string {
	switch {
	case d.top:
		return fmt.Sprintf("bv%d:any", d.width)
	case len(d.values) == 0:
		return fmt.Sprintf("bv%d:bottom", d.width)
	case len(d.values) == 1:
		return fmt.Sprintf("bv%d:%s", d.width, d.values[0].String())
	default:
		return fmt.Sprintf("bv%d:{%d values}", d.width, len(d.values))
	}
}

func mask(w uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), w)
	return m.Sub(m, big.NewInt(1))
}

// Any constructs the top element of the w-bit domain: every value is
// possible.
func Any(w uint) Domain {
	return Domain{width: w, top: true}
}

// Singleton constructs the exact domain containing only n, reduced modulo
// 2^w to the unsigned representative.
func Singleton(w uint, n *big.Int) Domain {
	v := new(big.Int).And(n, mask(w))
	return Domain{width: w, values: []*big.Int{v}}
}

// Union computes a domain that over-approximates both a and b, using params
// to bound how many exact values it will track before giving up precision
// and returning Any. a and b must share the same width.
func Union(params Params, w uint, a, b Domain) Domain {
	if a.top || b.top {
		return Any(w)
	}
	seen := make(map[string]*big.Int)
	for _, v := range a.values {
		seen[v.String()] = v
	}
	for _, v := range b.values {
		seen[v.String()] = v
	}
	if len(seen) > params.MaxDisjuncts {
		return Any(w)
	}
	out := make([]*big.Int, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	return Domain{width: w, values: out}
}

// DomainsOverlap reports whether a and b could denote the same concrete
// w-bit value. Top always overlaps anything non-bottom.
func DomainsOverlap(a, b Domain) bool {
	if a.IsBottom() || b.IsBottom() {
		return false
	}
	if a.top || b.top {
		return true
	}
	for _, x := range a.values {
		for _, y := range b.values {
			if x.Cmp(y) == 0 {
				return true
			}
		}
	}
	return false
}

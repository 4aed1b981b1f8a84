package ltl

import "testing"

func TestLookupMetadata(t *testing.T) {
	_, ctx := ctxFor(t)
	md := ValMd{Kind: "!DILocation", Operands: []string{"line:1"}}
	// MkContext only accepts metadata via its map argument; rebuild with one.
	_, ctx = MkContext(ctx.dataLayout, map[int]ValMd{7: md}, nil)
	got, ok := LookupMetadata(ctx, 7)
	if !ok || got.Kind != "!DILocation" {
		t.Fatalf("expected metadata node 7 to round-trip, got %v ok=%v", got, ok)
	}
	if _, ok := LookupMetadata(ctx, 8); ok {
		t.Fatalf("expected no metadata at an unset index")
	}
}

func TestLiftTypeDoesNotMutateContext(t *testing.T) {
	_, ctx := ctxFor(t, Decl{ID: "A", Raw: RawInt{Width: 32}})

	sym, ok := LiftType(ctx, RawPtr{Elem: RawAlias{ID: "A"}})
	if !ok {
		t.Fatalf("expected LiftType to succeed")
	}
	mt, ok := AsMemType(ctx, sym)
	if !ok {
		t.Fatalf("expected the lifted pointer to resolve to a MemType")
	}
	if _, isPtr := mt.(PtrType); !isPtr {
		t.Fatalf("expected a pointer type, got %T", mt)
	}

	// A itself must be untouched by the query-mode lift.
	aSym, _ := LookupAlias(ctx, "A")
	if _, isMem := aSym.(Mem); !isMem {
		t.Fatalf("expected A's own binding to be unaffected by LiftType")
	}
}

func TestLiftTypeFailsOnUnsupported(t *testing.T) {
	_, ctx := ctxFor(t)
	_, ok := LiftType(ctx, RawOther{Name: "x86_fp80"})
	if ok {
		t.Fatalf("expected LiftType of an unsupported primitive to fail")
	}
}

func TestLiftMemTypeAndLiftRetType(t *testing.T) {
	_, ctx := ctxFor(t, Decl{ID: "A", Raw: RawInt{Width: 64}})

	mt, ok := LiftMemType(ctx, RawAlias{ID: "A"})
	if !ok {
		t.Fatalf("expected LiftMemType to resolve the alias")
	}
	if it, isInt := mt.(IntType); !isInt || it.Width != 64 {
		t.Fatalf("expected Int(64), got %v", mt)
	}

	rt, ok := LiftRetType(ctx, RawVoid{})
	if !ok || !rt.IsVoid {
		t.Fatalf("expected a void return type")
	}
}

package ltl

import (
	"testing"

	"github.com/symlift/corelift/dlayout"
)

func ctxFor(t *testing.T, decls ...Decl) ([]LiftError, LLVMContext) {
	t.Helper()
	return MkContext(dlayout.Default(), nil, decls)
}

func TestLinearAliases(t *testing.T) {
	errs, ctx := ctxFor(t,
		Decl{ID: "A", Raw: RawInt{Width: 32}},
		Decl{ID: "B", Raw: RawAlias{ID: "A"}},
	)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	bSym, ok := LookupAlias(ctx, "B")
	if !ok {
		t.Fatalf("expected B to be present in the alias map")
	}
	if _, isAlias := bSym.(Alias); !isAlias {
		t.Fatalf("expected aliasMap[B] to stay an unexpanded Alias, got %T", bSym)
	}

	mt, ok := AsMemType(ctx, bSym)
	if !ok {
		t.Fatalf("expected asMemType(B) to succeed")
	}
	it, ok := mt.(IntType)
	if !ok || it.Width != 32 {
		t.Fatalf("expected Int(32), got %v", mt)
	}
}

func TestUnsupportedPrimitive(t *testing.T) {
	errs, ctx := ctxFor(t, Decl{ID: "A", Raw: RawOther{Name: "x86_fp80"}})
	if len(errs) != 1 || !errs[0].IsUnsupportedType() {
		t.Fatalf("expected exactly one UnsupportedType error, got %v", errs)
	}
	sym, ok := LookupAlias(ctx, "A")
	if !ok {
		t.Fatalf("expected A in alias map")
	}
	if _, isUnsupported := sym.(Unsupported); !isUnsupported {
		t.Fatalf("expected aliasMap[A] = UnsupportedType, got %T", sym)
	}
}

func TestDanglingReference(t *testing.T) {
	errs, ctx := ctxFor(t, Decl{ID: "A", Raw: RawAlias{ID: "B"}})
	if len(errs) != 1 || !errs[0].IsUnresolvableIdent() || errs[0].Ident() != "B" {
		t.Fatalf("expected exactly one UnresolvableIdent(B) error, got %v", errs)
	}
	sym, _ := LookupAlias(ctx, "A")
	u, ok := sym.(Unsupported)
	if !ok {
		t.Fatalf("expected aliasMap[A] = UnsupportedType(Alias(B)), got %T", sym)
	}
	ra, ok := u.Raw.(RawAlias)
	if !ok || ra.ID != "B" {
		t.Fatalf("expected the unsupported sentinel to record Alias(B), got %v", u.Raw)
	}
}

func TestSelfCycleThroughPointer(t *testing.T) {
	nodeRaw := RawStruct{Fields: []RawType{
		RawInt{Width: 32},
		RawPtr{Elem: RawAlias{ID: "Node"}},
	}}
	errs, ctx := ctxFor(t, Decl{ID: "Node", Raw: nodeRaw})
	if len(errs) != 0 {
		t.Fatalf("expected no errors for a pointer-broken cycle, got %v", errs)
	}

	sym, _ := LookupAlias(ctx, "Node")
	mem, ok := sym.(Mem)
	if !ok {
		t.Fatalf("expected aliasMap[Node] to be a MemType, got %T", sym)
	}
	st, ok := mem.MT.(StructMemType)
	if !ok || len(st.Info.Fields) != 2 {
		t.Fatalf("expected a 2-field struct, got %v", mem.MT)
	}
	if _, ok := st.Info.Fields[0].(IntType); !ok {
		t.Fatalf("expected field 0 to be Int(32), got %v", st.Info.Fields[0])
	}
	ptr, ok := st.Info.Fields[1].(PtrType)
	if !ok {
		t.Fatalf("expected field 1 to be a pointer, got %v", st.Info.Fields[1])
	}
	alias, ok := ptr.Elem.(Alias)
	if !ok || alias.ID != "Node" {
		t.Fatalf("expected the pointee to remain Alias(Node), got %v", ptr.Elem)
	}
}

// TestPureCycleWithoutPointer grounds the spec's "pure reference cycle with
// no pointer indirection": two named types that are each bare aliases of
// the other. Both identifiers must be reported as unresolvable and both
// must end up as unsupported sentinels.
func TestPureCycleWithoutPointer(t *testing.T) {
	errs, ctx := ctxFor(t,
		Decl{ID: "A", Raw: RawAlias{ID: "B"}},
		Decl{ID: "B", Raw: RawAlias{ID: "A"}},
	)

	seen := map[Ident]bool{}
	for _, e := range errs {
		if e.IsUnresolvableIdent() {
			seen[e.Ident()] = true
		}
	}
	if !seen["A"] || !seen["B"] {
		t.Fatalf("expected UnresolvableIdent(A) and UnresolvableIdent(B), got %v", errs)
	}

	for _, id := range []Ident{"A", "B"} {
		sym, ok := LookupAlias(ctx, id)
		if !ok {
			t.Fatalf("expected %s in alias map", id)
		}
		if _, isUnsupported := sym.(Unsupported); !isUnsupported {
			t.Fatalf("expected aliasMap[%s] to be an unsupported sentinel, got %T", id, sym)
		}
	}
}

// TestCycleThroughStructContainment covers the non-pointer composite
// variant of the same problem: two structs each holding the other by
// value, which is genuinely impossible to lay out.
func TestCycleThroughStructContainment(t *testing.T) {
	errs, ctx := ctxFor(t,
		Decl{ID: "A", Raw: RawStruct{Fields: []RawType{RawAlias{ID: "B"}}}},
		Decl{ID: "B", Raw: RawStruct{Fields: []RawType{RawAlias{ID: "A"}}}},
	)
	if len(errs) == 0 {
		t.Fatalf("expected at least one error for a non-pointer containment cycle")
	}
	for _, id := range []Ident{"A", "B"} {
		sym, _ := LookupAlias(ctx, id)
		if _, isUnsupported := sym.(Unsupported); !isUnsupported {
			t.Fatalf("expected aliasMap[%s] to be an unsupported sentinel, got %T", id, sym)
		}
	}
}

func TestMkContextPure(t *testing.T) {
	decls := []Decl{
		{ID: "A", Raw: RawInt{Width: 32}},
		{ID: "B", Raw: RawAlias{ID: "A"}},
	}
	errs1, ctx1 := ctxFor(t, decls...)
	errs2, ctx2 := ctxFor(t, decls...)
	if len(errs1) != len(errs2) {
		t.Fatalf("mkContext not idempotent on errors: %v vs %v", errs1, errs2)
	}
	s1, _ := LookupAlias(ctx1, "B")
	s2, _ := LookupAlias(ctx2, "B")
	if s1.String() != s2.String() {
		t.Fatalf("mkContext not idempotent on results: %v vs %v", s1, s2)
	}
}

func TestEveryDeclAppearsInAliasMap(t *testing.T) {
	_, ctx := ctxFor(t,
		Decl{ID: "A", Raw: RawInt{Width: 8}},
		Decl{ID: "B", Raw: RawOther{Name: "x86_fp80"}},
		Decl{ID: "C", Raw: RawAlias{ID: "Missing"}},
	)
	for _, id := range []Ident{"A", "B", "C"} {
		if _, ok := LookupAlias(ctx, id); !ok {
			t.Fatalf("expected declared identifier %s to appear in aliasMap", id)
		}
	}
}

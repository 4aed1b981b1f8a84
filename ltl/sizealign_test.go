package ltl

import (
	"testing"

	"github.com/symlift/corelift/dlayout"
)

func TestStructLayoutThroughMkContext(t *testing.T) {
	raw := RawStruct{Fields: []RawType{RawInt{Width: 8}, RawInt{Width: 32}}}
	errs, ctx := ctxFor(t, Decl{ID: "Pair", Raw: raw})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	sym, _ := LookupAlias(ctx, "Pair")
	mt, ok := AsMemType(ctx, sym)
	if !ok {
		t.Fatalf("expected Pair to resolve to a MemType")
	}
	st, ok := mt.(StructMemType)
	if !ok {
		t.Fatalf("expected a struct, got %T", mt)
	}
	if st.Info.Layout.FieldOffsets[1] != 4 {
		t.Fatalf("expected the i32 field padded to offset 4, got %d", st.Info.Layout.FieldOffsets[1])
	}
	if st.Info.Layout.SizeBytes != 8 {
		t.Fatalf("expected struct size 8, got %d", st.Info.Layout.SizeBytes)
	}
}

func TestArraySizeAlign(t *testing.T) {
	at := ArrayType{N: 4, Elem: IntType{Width: 32}}
	size, align := at.SizeAlign(dlayout.Default())
	if size != 16 || align != 4 {
		t.Fatalf("expected size 16 align 4, got size=%d align=%d", size, align)
	}
}

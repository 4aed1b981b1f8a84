package ltl

import "testing"

func TestCompatMemTypesIntWidths(t *testing.T) {
	if !CompatMemTypes(IntType{Width: 32}, IntType{Width: 32}) {
		t.Fatalf("expected i32 compatible with i32")
	}
	if CompatMemTypes(IntType{Width: 32}, IntType{Width: 64}) {
		t.Fatalf("expected i32 incompatible with i64")
	}
}

func TestCompatMemTypesPointersIgnorePointee(t *testing.T) {
	a := PtrType{Elem: Mem{MT: IntType{Width: 8}}}
	b := PtrType{Elem: Mem{MT: IntType{Width: 64}}}
	if !CompatMemTypes(a, b) {
		t.Fatalf("expected pointers to be compatible regardless of pointee")
	}
}

func TestCompatMemTypesStructsFieldwise(t *testing.T) {
	a := StructMemType{Info: StructInfo{Fields: []MemType{IntType{Width: 32}, FloatType{}}}}
	b := StructMemType{Info: StructInfo{Fields: []MemType{IntType{Width: 32}, FloatType{}}}}
	c := StructMemType{Info: StructInfo{Fields: []MemType{IntType{Width: 32}, DoubleType{}}}}
	if !CompatMemTypes(a, b) {
		t.Fatalf("expected identical-shaped structs to be compatible")
	}
	if CompatMemTypes(a, c) {
		t.Fatalf("expected structs with a differing field to be incompatible")
	}
}

func TestCompatRetTypesVoid(t *testing.T) {
	if !CompatRetTypes(VoidRet(), VoidRet()) {
		t.Fatalf("expected void compatible with void")
	}
	if CompatRetTypes(VoidRet(), MemRet(IntType{Width: 32})) {
		t.Fatalf("expected void incompatible with a concrete return type")
	}
	if !CompatRetTypes(MemRet(IntType{Width: 32}), MemRet(IntType{Width: 32})) {
		t.Fatalf("expected matching concrete return types to be compatible")
	}
}

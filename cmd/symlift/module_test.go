package main

import (
	"testing"

	"gopkg.in/yaml.v2"

	"github.com/symlift/corelift/ltl"
)

func TestModuleFileLoadsStructWithAliasAndPointer(t *testing.T) {
	src := `
datalayout: "p:64:64-i32:32"
decls:
  - id: Node
    type:
      kind: struct
      fields:
        - {kind: int, width: 32}
        - {kind: ptr, elem: {kind: alias, id: Node}}
metadata:
  - {index: 0, kind: "!dbg", operands: ["!1"]}
`
	var mf moduleFile
	if err := yaml.Unmarshal([]byte(src), &mf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	dl, metadata, decls, err := mf.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if dl.PointerSize != 8 {
		t.Fatalf("expected 8-byte pointers from p:64:64, got %d", dl.PointerSize)
	}
	if len(decls) != 1 || decls[0].ID != "Node" {
		t.Fatalf("expected one Node decl, got %v", decls)
	}
	if _, ok := decls[0].Raw.(ltl.RawStruct); !ok {
		t.Fatalf("expected Node to raw-lift to a struct, got %T", decls[0].Raw)
	}
	if len(metadata) != 1 || metadata[0].Kind != "!dbg" {
		t.Fatalf("expected one metadata row, got %v", metadata)
	}
}

func TestModuleFileRejectsUnknownKind(t *testing.T) {
	src := `
decls:
  - id: Bad
    type: {kind: nonsense}
`
	var mf moduleFile
	if err := yaml.Unmarshal([]byte(src), &mf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, _, _, err := mf.load(); err == nil {
		t.Fatalf("expected an error for an unknown raw type kind")
	}
}

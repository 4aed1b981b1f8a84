// Package ltl lifts a module's named LLVM type declarations, possibly
// mutually referential, into a closed, self-consistent symbolic type system
// suitable for memory-model reasoning. It never parses LLVM text or
// bitcode: raw types are handed in already as a small Go type family
// (RawType), and the data layout is consumed through the dlayout package as
// an opaque sizing/alignment service.
package ltl

import (
	"strconv"

	"github.com/symlift/corelift/dlayout"
)

// Ident names a declared type, e.g. an LLVM identified struct like `%Node`.
type Ident string

// RawType is the input type family the lifter consumes: the shape of an
// LLVM type as it comes out of parsing, before resolution. It intentionally
// stays small and shallow; this package does no LLVM text/bitcode parsing
// of its own.
type RawType interface {
	isRawType()
}

type (
	RawInt      struct{ Width int }
	RawFloat    struct{}
	RawDouble   struct{}
	RawVoid     struct{}
	RawMetadata struct{}
	// RawOther is the catch-all for primitives this lifter does not model
	// precisely (e.g. x86_fp80, ppc_fp128); it always lifts to
	// UnsupportedType. Name is kept only for error reporting.
	RawOther struct{ Name string }
	RawAlias struct{ ID Ident }
	RawArray struct {
		N    int
		Elem RawType
	}
	RawVector struct {
		N    int
		Elem RawType
	}
	RawPtr struct{ Elem RawType }
	RawStruct struct {
		Fields []RawType
		Packed bool
	}
	RawFunc struct {
		Ret    RawType
		Args   []RawType
		Vararg bool
	}
	RawOpaque struct{}
)

func (RawInt) isRawType()      {}
func (RawFloat) isRawType()    {}
func (RawDouble) isRawType()   {}
func (RawVoid) isRawType()     {}
func (RawMetadata) isRawType() {}
func (RawOther) isRawType()    {}
func (RawAlias) isRawType()    {}
func (RawArray) isRawType()    {}
func (RawVector) isRawType()   {}
func (RawPtr) isRawType()      {}
func (RawStruct) isRawType()   {}
func (RawFunc) isRawType()     {}
func (RawOpaque) isRawType()   {}

// SymType is the lifted, symbolic form of an LLVM type.
type SymType interface {
	isSymType()
	String() string
}

// Mem wraps a MemType as a SymType.
type Mem struct{ MT MemType }

// Alias is an unresolved or recursive reference to a named type, kept
// unexpanded; callers follow it via asMemType/asRetType or a context query.
type Alias struct{ ID Ident }

// Fun is a function signature.
type Fun struct{ Decl FunDecl }

type Void struct{}

// Opaque is a named type with no known structure; legal to form pointers
// to.
type Opaque struct{}

// Unsupported records that a raw type constructor could not be lifted. It
// is a sentinel value, not a panic: the resolver always produces something
// for every declaration.
type Unsupported struct{ Raw RawType }

func (Mem) isSymType()         {}
func (Alias) isSymType()       {}
func (Fun) isSymType()         {}
func (Void) isSymType()        {}
func (Opaque) isSymType()      {}
func (Unsupported) isSymType() {}

func (m Mem) String() string         { return m.MT.String() }
func (a Alias) String() string       { return "%" + string(a.ID) }
func (f Fun) String() string         { return f.Decl.String() }
func (Void) String() string          { return "void" }
func (Opaque) String() string        { return "opaque" }
func (u Unsupported) String() string { return "unsupported(" + rawTypeName(u.Raw) + ")" }

// MemType is a concrete in-memory type: something with a size and
// alignment once the data layout is known.
type MemType interface {
	isMemType()
	String() string
	SizeAlign(dl dlayout.DataLayout) (size, align uint64)
}

type (
	IntType struct{ Width int }
	FloatType struct{}
	DoubleType struct{}
	// PtrType's element need not itself be a MemType: pointers to Opaque
	// types and to unresolved aliases are legal LLVM, and downstream
	// memory operations are expected to handle that rather than have the
	// lifter reject it.
	PtrType struct{ Elem SymType }
	ArrayType struct {
		N    int
		Elem MemType
	}
	VecType struct {
		N    int
		Elem MemType
	}
	StructMemType struct{ Info StructInfo }
	MetadataType  struct{}
)

func (IntType) isMemType()       {}
func (FloatType) isMemType()     {}
func (DoubleType) isMemType()    {}
func (PtrType) isMemType()       {}
func (ArrayType) isMemType()     {}
func (VecType) isMemType()       {}
func (StructMemType) isMemType() {}
func (MetadataType) isMemType()  {}

func (t IntType) String() string    { return "i" + strconv.Itoa(t.Width) }
func (FloatType) String() string    { return "float" }
func (DoubleType) String() string   { return "double" }
func (t PtrType) String() string    { return t.Elem.String() + "*" }
func (t ArrayType) String() string  { return "[" + strconv.Itoa(t.N) + " x " + t.Elem.String() + "]" }
func (t VecType) String() string    { return "<" + strconv.Itoa(t.N) + " x " + t.Elem.String() + ">" }
func (t StructMemType) String() string {
	return t.Info.String()
}
func (MetadataType) String() string { return "metadata" }

// RetType is a function's return type: None models void.
type RetType struct {
	MT    MemType
	IsVoid bool
}

func VoidRet() RetType        { return RetType{IsVoid: true} }
func MemRet(mt MemType) RetType { return RetType{MT: mt} }

func (r RetType) String() string {
	if r.IsVoid {
		return "void"
	}
	return r.MT.String()
}

// FunDecl is a function signature.
type FunDecl struct {
	Ret    RetType
	Args   []MemType
	Vararg bool
}

func (f FunDecl) String() string {
	s := f.Ret.String() + " ("
	for i, a := range f.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	if f.Vararg {
		if len(f.Args) > 0 {
			s += ", "
		}
		s += "..."
	}
	return s + ")"
}

// StructInfo is the lifted form of a struct, including the size/alignment
// layout derived by the data-layout service from its (packed, fields)
// shape.
type StructInfo struct {
	Packed bool
	Fields []MemType
	Layout dlayout.Layout
}

func (s StructInfo) String() string {
	prefix := "struct"
	if s.Packed {
		prefix = "<packed struct>"
	}
	out := prefix + " { "
	for i, f := range s.Fields {
		if i > 0 {
			out += ", "
		}
		out += f.String()
	}
	return out + " }"
}

func rawTypeName(r RawType) string {
	switch t := r.(type) {
	case RawInt:
		return "i" + strconv.Itoa(t.Width)
	case RawFloat:
		return "float"
	case RawDouble:
		return "double"
	case RawVoid:
		return "void"
	case RawMetadata:
		return "metadata"
	case RawOther:
		return t.Name
	case RawAlias:
		return "%" + string(t.ID)
	case RawArray:
		return "array"
	case RawVector:
		return "vector"
	case RawPtr:
		return "pointer"
	case RawStruct:
		return "struct"
	case RawFunc:
		return "function"
	case RawOpaque:
		return "opaque"
	default:
		return "?"
	}
}

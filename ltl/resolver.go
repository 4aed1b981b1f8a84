package ltl

import "github.com/symlift/corelift/dlayout"

type bindingState int

const (
	statePending bindingState = iota
	stateActive
	stateResolved
)

type binding struct {
	state bindingState
	raw   RawType // meaningful while Pending
	sym   SymType // meaningful once Resolved
}

// resolver is the transient, single-call state machine that mkContext and
// the query-mode lifters (liftType et al.) both run. It never outlives the
// call that created it; the LLVMContext it eventually produces holds only
// the immutable result (aliasMap, metadataMap, dataLayout).
type resolver struct {
	dl       dlayout.DataLayout
	bindings map[Ident]*binding
	errs     *errorSet
}

func newResolver(dl dlayout.DataLayout, decls []Decl) *resolver {
	bindings := make(map[Ident]*binding, len(decls))
	for _, d := range decls {
		bindings[d.ID] = &binding{state: statePending, raw: d.Raw}
	}
	return &resolver{dl: dl, bindings: bindings, errs: newErrorSet()}
}

// Decl is one named type declaration fed to mkContext: an identifier paired
// with its raw (unlifted) type.
type Decl struct {
	ID  Ident
	Raw RawType
}

// tcIdent is the cycle-breaking step: it resolves the identifier's own
// declared type, short-circuiting on values already computed and turning
// re-entrance (a true cycle) or a missing declaration (a dangling
// reference) into the same UnsupportedType sentinel.
func (r *resolver) tcIdent(id Ident) SymType {
	b, known := r.bindings[id]
	if !known {
		r.errs.add(UnresolvableIdentError(id))
		return Unsupported{Raw: RawAlias{ID: id}}
	}

	switch b.state {
	case stateResolved:
		return b.sym
	case statePending:
		b.state = stateActive
		var sym SymType
		if alias, isBareAlias := b.raw.(RawAlias); isBareAlias {
			// A declaration whose entire definition is "= another named
			// type" is a transparent synonym: unlike an Alias nested inside
			// a Ptr/Struct/Array (which tcType always leaves unexpanded,
			// see below), this is the one spot where the target must be
			// validated eagerly, or a pure alias-to-alias cycle with no
			// pointer indirection would never be discovered.
			sym = r.tcBareAlias(alias)
		} else {
			sym = r.tcType(b.raw)
		}
		b.state = stateResolved
		b.sym = sym
		return sym
	default: // stateActive: re-entered this identifier while resolving it
		r.errs.add(UnresolvableIdentError(id))
		return Unsupported{Raw: RawAlias{ID: id}}
	}
}

// tcBareAlias forces resolution of a top-level alias declaration's target,
// to catch cycles and dangling references that never pass through a
// composite field (and so would never otherwise call tcMemType). On
// success the result stays an unexpanded Alias, same as a nested one.
func (r *resolver) tcBareAlias(alias RawAlias) SymType {
	target := r.tcIdent(alias.ID)
	if _, bad := target.(Unsupported); bad {
		r.errs.add(UnresolvableIdentError(alias.ID))
		return Unsupported{Raw: alias}
	}
	return Alias{ID: alias.ID}
}

// tcType structurally lifts a raw type to a SymType. Alias references are
// returned unexpanded: resolving what they point to is the job of
// resolveMemType/resolveRetType (for composite fields that need a concrete
// MemType) or of the query layer (for callers that just want to follow a
// SymType by hand).
func (r *resolver) tcType(raw RawType) SymType {
	switch t := raw.(type) {
	case RawInt:
		return Mem{MT: IntType{Width: t.Width}}
	case RawFloat:
		return Mem{MT: FloatType{}}
	case RawDouble:
		return Mem{MT: DoubleType{}}
	case RawVoid:
		return Void{}
	case RawMetadata:
		return Mem{MT: MetadataType{}}
	case RawAlias:
		return Alias{ID: t.ID}
	case RawArray:
		elemMT, ok := r.tcMemType(t.Elem)
		if !ok {
			r.errs.add(UnsupportedTypeError(raw))
			return Unsupported{Raw: raw}
		}
		return Mem{MT: ArrayType{N: t.N, Elem: elemMT}}
	case RawVector:
		elemMT, ok := r.tcMemType(t.Elem)
		if !ok {
			r.errs.add(UnsupportedTypeError(raw))
			return Unsupported{Raw: raw}
		}
		return Mem{MT: VecType{N: t.N, Elem: elemMT}}
	case RawPtr:
		// The pointee need not resolve to a MemType: pointers to Opaque
		// types and to unresolved aliases are legal LLVM, so tcType's raw
		// output (whatever it is) becomes the pointer's element as-is.
		return Mem{MT: PtrType{Elem: r.tcType(t.Elem)}}
	case RawStruct:
		fields := make([]MemType, len(t.Fields))
		for i, f := range t.Fields {
			mt, ok := r.tcMemType(f)
			if !ok {
				r.errs.add(UnsupportedTypeError(raw))
				return Unsupported{Raw: raw}
			}
			fields[i] = mt
		}
		layout := dlayout.MkStructInfo(r.dl, t.Packed, memTypesToSized(fields))
		return Mem{MT: StructMemType{Info: StructInfo{Packed: t.Packed, Fields: fields, Layout: layout}}}
	case RawFunc:
		retType, ok := r.resolveRetType(r.tcType(t.Ret))
		if !ok {
			r.errs.add(UnsupportedTypeError(raw))
			return Unsupported{Raw: raw}
		}
		args := make([]MemType, len(t.Args))
		for i, a := range t.Args {
			mt, ok := r.tcMemType(a)
			if !ok {
				r.errs.add(UnsupportedTypeError(raw))
				return Unsupported{Raw: raw}
			}
			args[i] = mt
		}
		return Fun{Decl: FunDecl{Ret: retType, Args: args, Vararg: t.Vararg}}
	case RawOpaque:
		return Opaque{}
	case RawOther:
		r.errs.add(UnsupportedTypeError(raw))
		return Unsupported{Raw: raw}
	default:
		r.errs.add(UnsupportedTypeError(raw))
		return Unsupported{Raw: raw}
	}
}

// tcMemType lifts raw and requires the result to be a concrete MemType,
// chasing Alias hops as needed.
func (r *resolver) tcMemType(raw RawType) (MemType, bool) {
	return r.resolveMemType(r.tcType(raw))
}

// resolveMemType expands Alias hops (via tcIdent, so a reference to a
// still-Pending or currently-Active identifier is resolved or flagged as a
// cycle on demand) until it reaches a concrete MemType, or gives up.
func (r *resolver) resolveMemType(sym SymType) (MemType, bool) {
	for {
		switch t := sym.(type) {
		case Mem:
			return t.MT, true
		case Alias:
			next := r.tcIdent(t.ID)
			if a, stillAlias := next.(Alias); stillAlias && a.ID == t.ID {
				return nil, false
			}
			sym = next
		default:
			return nil, false
		}
	}
}

// resolveRetType is resolveMemType's counterpart for function return types,
// additionally accepting VoidType.
func (r *resolver) resolveRetType(sym SymType) (RetType, bool) {
	for {
		switch t := sym.(type) {
		case Mem:
			return MemRet(t.MT), true
		case Void:
			return VoidRet(), true
		case Alias:
			next := r.tcIdent(t.ID)
			if a, stillAlias := next.(Alias); stillAlias && a.ID == t.ID {
				return RetType{}, false
			}
			sym = next
		default:
			return RetType{}, false
		}
	}
}

package ltl

import (
	"github.com/benbjohnson/immutable"
	"github.com/symlift/corelift/dlayout"
	"github.com/symlift/corelift/utils"
)

// ValMd is an unnamed metadata node value. The lifter treats metadata
// content opaquely (see MetadataType); this carrier only needs to survive a
// round trip from the input map to LookupMetadata.
type ValMd struct {
	Kind     string
	Operands []string
}

// Hash and Equal let Ident key an immutable.Map without reaching for
// interface{} boxing.
func (id Ident) Hash() uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(id); i++ {
		h ^= uint32(id[i])
		h *= 16777619
	}
	return h
}

func (id Ident) Equal(other Ident) bool { return id == other }

type intKey int

func (k intKey) Hash() uint32 {
	u := uint32(k)
	u ^= u >> 16
	u *= 0x45d9f3b
	u ^= u >> 16
	return u
}

func (k intKey) Equal(other intKey) bool { return k == other }

// LLVMContext is the immutable result of mkContext: a resolved alias map,
// an unnamed-metadata map, and the data layout they were resolved against.
// Nothing in this package ever mutates a constructed LLVMContext; query
// helpers in query.go take it by value (it is a handful of pointers) and
// run a fresh, local resolver seeded from its aliasMap.
type LLVMContext struct {
	dataLayout   dlayout.DataLayout
	metadataMap  *immutable.Map[intKey, ValMd]
	aliasMap     *immutable.Map[Ident, SymType]
}

// MkContext resolves every declaration in decls against dl and metadata,
// returning the accumulated errors (empty if everything lifted cleanly)
// alongside the resulting context. A context is always produced, even when
// errors are non-empty: unresolved declarations simply end up mapped to an
// UnsupportedType sentinel, so downstream code can see every problem at
// once and keep working with whatever did resolve.
func MkContext(dl dlayout.DataLayout, metadata map[int]ValMd, decls []Decl) ([]LiftError, LLVMContext) {
	r := newResolver(dl, decls)

	for _, d := range decls {
		r.tcIdent(d.ID)
	}

	aliasMap := utils.NewImmMap[Ident, SymType]()
	for _, d := range decls {
		b := r.bindings[d.ID]
		aliasMap = aliasMap.Set(d.ID, b.sym)
	}

	metadataMap := immutable.NewMap[intKey, ValMd](utils.HashableHasher[intKey]())
	for k, v := range metadata {
		metadataMap = metadataMap.Set(intKey(k), v)
	}

	ctx := LLVMContext{dataLayout: dl, metadataMap: metadataMap, aliasMap: aliasMap}
	return r.errs.errors(), ctx
}

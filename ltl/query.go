package ltl

// LookupAlias looks up id's resolved SymType directly in ctx's alias map.
func LookupAlias(ctx LLVMContext, id Ident) (SymType, bool) {
	return ctx.aliasMap.Get(id)
}

// ForEachAlias visits every declared identifier in ctx's alias map with its
// resolved SymType, in unspecified order. It never mutates ctx; callers
// such as visualize.BuildAliasGraph use it to project the whole alias map
// without this package exposing its internal immutable.Map representation.
func ForEachAlias(ctx LLVMContext, do func(Ident, SymType)) {
	itr := ctx.aliasMap.Iterator()
	for !itr.Done() {
		id, sym, _ := itr.Next()
		do(id, sym)
	}
}

// LookupMetadata looks up unnamed metadata node i.
func LookupMetadata(ctx LLVMContext, i int) (ValMd, bool) {
	return ctx.metadataMap.Get(intKey(i))
}

// AsMemType follows sym's Alias hops through ctx's already-resolved alias
// map until it reaches a MemType, returning false if it instead reaches
// Void/Opaque/Fun/Unsupported, an undeclared identifier, or (defensively)
// an alias cycle. It never mutates ctx.
func AsMemType(ctx LLVMContext, sym SymType) (MemType, bool) {
	visited := make(map[Ident]bool)
	for {
		switch t := sym.(type) {
		case Mem:
			return t.MT, true
		case Alias:
			if visited[t.ID] {
				return nil, false
			}
			visited[t.ID] = true
			next, ok := ctx.aliasMap.Get(t.ID)
			if !ok {
				return nil, false
			}
			sym = next
		default:
			return nil, false
		}
	}
}

// AsRetType is AsMemType's counterpart for function return types,
// additionally accepting Void.
func AsRetType(ctx LLVMContext, sym SymType) (RetType, bool) {
	visited := make(map[Ident]bool)
	for {
		switch t := sym.(type) {
		case Mem:
			return MemRet(t.MT), true
		case Void:
			return VoidRet(), true
		case Alias:
			if visited[t.ID] {
				return RetType{}, false
			}
			visited[t.ID] = true
			next, ok := ctx.aliasMap.Get(t.ID)
			if !ok {
				return RetType{}, false
			}
			sym = next
		default:
			return RetType{}, false
		}
	}
}

// queryResolver builds a resolver whose bindings are pre-seeded as Resolved
// from ctx's alias map, so running it never re-triggers cycle detection
// (every binding it could reach is already a terminal value) and never
// writes back into ctx.
func queryResolver(ctx LLVMContext) *resolver {
	bindings := make(map[Ident]*binding)
	itr := ctx.aliasMap.Iterator()
	for !itr.Done() {
		id, sym, _ := itr.Next()
		bindings[id] = &binding{state: stateResolved, sym: sym}
	}
	return &resolver{dl: ctx.dataLayout, bindings: bindings, errs: newErrorSet()}
}

// LiftType runs a query-mode lift of raw against ctx: a fresh resolver
// seeded from ctx's alias map, never mutating ctx. If any error is raised
// during this lift, the whole result degrades to (zero value, false)
// rather than returning a partially-unsupported SymType.
func LiftType(ctx LLVMContext, raw RawType) (SymType, bool) {
	r := queryResolver(ctx)
	sym := r.tcType(raw)
	if !r.errs.isEmpty() {
		return nil, false
	}
	return sym, true
}

// LiftMemType composes LiftType with AsMemType.
func LiftMemType(ctx LLVMContext, raw RawType) (MemType, bool) {
	sym, ok := LiftType(ctx, raw)
	if !ok {
		return nil, false
	}
	return AsMemType(ctx, sym)
}

// LiftRetType composes LiftType with AsRetType.
func LiftRetType(ctx LLVMContext, raw RawType) (RetType, bool) {
	sym, ok := LiftType(ctx, raw)
	if !ok {
		return RetType{}, false
	}
	return AsRetType(ctx, sym)
}

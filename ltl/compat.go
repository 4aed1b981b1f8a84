package ltl

// CompatMemTypes checks bit-level compatibility: structural equality by
// shape, where pointers are mutually compatible regardless of pointee and
// aliases are never expanded (callers are expected to have already run
// asMemType/liftMemType, which is exactly why this function takes MemType
// rather than SymType).
func CompatMemTypes(a, b MemType) bool {
	switch x := a.(type) {
	case IntType:
		y, ok := b.(IntType)
		return ok && x.Width == y.Width
	case FloatType:
		_, ok := b.(FloatType)
		return ok
	case DoubleType:
		_, ok := b.(DoubleType)
		return ok
	case PtrType:
		_, ok := b.(PtrType)
		return ok
	case ArrayType:
		y, ok := b.(ArrayType)
		return ok && x.N == y.N && CompatMemTypes(x.Elem, y.Elem)
	case VecType:
		y, ok := b.(VecType)
		return ok && x.N == y.N && CompatMemTypes(x.Elem, y.Elem)
	case StructMemType:
		y, ok := b.(StructMemType)
		if !ok || x.Info.Packed != y.Info.Packed || len(x.Info.Fields) != len(y.Info.Fields) {
			return false
		}
		for i := range x.Info.Fields {
			if !CompatMemTypes(x.Info.Fields[i], y.Info.Fields[i]) {
				return false
			}
		}
		return true
	case MetadataType:
		_, ok := b.(MetadataType)
		return ok
	default:
		return false
	}
}

// CompatRetTypes equates void-to-void and otherwise defers to
// CompatMemTypes.
func CompatRetTypes(a, b RetType) bool {
	if a.IsVoid || b.IsVoid {
		return a.IsVoid == b.IsVoid
	}
	return CompatMemTypes(a.MT, b.MT)
}

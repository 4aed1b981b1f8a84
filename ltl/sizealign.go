package ltl

import "github.com/symlift/corelift/dlayout"

// SizeAlign implements dlayout.Sized for every MemType, letting
// dlayout.MkStructInfo compute a struct's layout without needing to know
// about MemType itself.

func (t IntType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) { return dl.IntSizeAlign(t.Width) }

func (FloatType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) { return dl.FloatSizeAlign() }

func (DoubleType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) { return dl.DoubleSizeAlign() }

func (PtrType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) { return dl.PtrSizeAlign() }

func (t ArrayType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) {
	elemSize, elemAlign := t.Elem.SizeAlign(dl)
	return elemSize * uint64(t.N), elemAlign
}

func (t VecType) SizeAlign(dl dlayout.DataLayout) (uint64, uint64) {
	elemSize, elemAlign := t.Elem.SizeAlign(dl)
	return elemSize * uint64(t.N), elemAlign
}

func (t StructMemType) SizeAlign(dlayout.DataLayout) (uint64, uint64) {
	return t.Info.Layout.SizeBytes, t.Info.Layout.AlignBytes
}

// MetadataType has no concrete memory representation; callers should not
// generally need its size, but a stable answer keeps SizeAlign total.
func (MetadataType) SizeAlign(dlayout.DataLayout) (uint64, uint64) { return 0, 1 }

func memTypesToSized(fields []MemType) []dlayout.Sized {
	out := make([]dlayout.Sized, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

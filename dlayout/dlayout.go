// Package dlayout is a minimal stand-in for the data-layout service that
// the type lifter treats as an opaque external collaborator: size and
// alignment of primitive types, and struct layout derived from a field
// list. Parsing a real LLVM datalayout string's full grammar (endianness,
// per-address-space pointer specs, native integer widths, mangling) is
// out of scope here; ParseDataLayout only extracts the handful of
// alignment facts the lifter's struct-layout computation actually needs.
package dlayout

import (
	"strconv"
	"strings"
)

// DataLayout holds byte sizes and alignments for the primitive kinds the
// lifter cares about. Zero values are never valid layouts; use Default or
// ParseDataLayout.
type DataLayout struct {
	PointerSize, PointerAlign   uint64
	IntAlign                    map[int]uint64 // bit width -> byte alignment
	FloatAlign, DoubleAlign     uint64
	AggregateAlign               uint64
}

// Default returns the layout of a typical 64-bit little-endian target,
// matching LLVM's "e-m:e-i64:64-f80:128-n8:16:32:64-S128" family closely
// enough for size/alignment purposes.
func Default() DataLayout {
	return DataLayout{
		PointerSize:  8,
		PointerAlign: 8,
		IntAlign: map[int]uint64{
			1: 1, 8: 1, 16: 2, 32: 4, 64: 8, 128: 16,
		},
		FloatAlign:    4,
		DoubleAlign:   8,
		AggregateAlign: 1,
	}
}

// ParseDataLayout parses the subset of LLVM's datalayout mini-language this
// package understands: "p:<size>:<align>" for pointer size/align in bits,
// and "i<width>:<align>" for integer alignment in bits. Unrecognized
// specifications are ignored rather than rejected, since a full grammar
// implementation is out of scope; callers that need exact conformance
// should supply a DataLayout built by hand instead.
func ParseDataLayout(text string) DataLayout {
	dl := Default()
	for _, spec := range strings.Split(text, "-") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.Split(spec, ":")
		switch {
		case strings.HasPrefix(spec, "p:") && len(parts) >= 3:
			if size, err := strconv.Atoi(parts[1]); err == nil {
				dl.PointerSize = uint64(size) / 8
			}
			if align, err := strconv.Atoi(parts[2]); err == nil {
				dl.PointerAlign = uint64(align) / 8
			}
		case strings.HasPrefix(spec, "i") && len(parts) >= 2:
			if width, err := strconv.Atoi(parts[0][1:]); err == nil {
				if align, err := strconv.Atoi(parts[1]); err == nil {
					dl.IntAlign[width] = uint64(align) / 8
				}
			}
		}
	}
	return dl
}

// IntSizeAlign returns the byte size and alignment of an i<width> integer.
// Size always rounds up to a whole byte; alignment defaults to the size,
// capped at the pointer alignment, for widths the layout has no explicit
// entry for.
func (dl DataLayout) IntSizeAlign(width int) (size, align uint64) {
	size = uint64(width+7) / 8
	if a, ok := dl.IntAlign[width]; ok {
		return size, a
	}
	align = size
	if align > dl.PointerAlign {
		align = dl.PointerAlign
	}
	if align == 0 {
		align = 1
	}
	return size, align
}

func (dl DataLayout) FloatSizeAlign() (size, align uint64) { return 4, dl.FloatAlign }

func (dl DataLayout) DoubleSizeAlign() (size, align uint64) { return 8, dl.DoubleAlign }

func (dl DataLayout) PtrSizeAlign() (size, align uint64) { return dl.PointerSize, dl.PointerAlign }

// Sized is the minimal shape MkStructInfo needs from an already-lifted
// field: its size and alignment in bytes. Callers (the ltl package) adapt
// their MemType values to this interface rather than this package knowing
// anything about MemType.
type Sized interface {
	SizeAlign(dl DataLayout) (size, align uint64)
}

// Layout is the size/alignment/per-field-offset information derived for a
// field list.
type Layout struct {
	SizeBytes    uint64
	AlignBytes   uint64
	FieldOffsets []uint64
}

// MkStructInfo computes the layout of a struct with the given fields under
// dl, following the standard C ABI rule: packed structs have byte
// alignment and no inter-field padding; unpacked structs align each field
// to its natural alignment and pad the overall size up to the struct's own
// alignment (the max of its fields' alignments).
func MkStructInfo(dl DataLayout, packed bool, fields []Sized) Layout {
	var offset, maxAlign uint64
	maxAlign = 1
	offsets := make([]uint64, len(fields))

	for i, f := range fields {
		size, align := f.SizeAlign(dl)
		if packed {
			align = 1
		}
		if align > maxAlign {
			maxAlign = align
		}
		offset = alignUp(offset, align)
		offsets[i] = offset
		offset += size
	}

	if !packed {
		offset = alignUp(offset, maxAlign)
	} else {
		maxAlign = 1
	}

	return Layout{SizeBytes: offset, AlignBytes: maxAlign, FieldOffsets: offsets}
}

func alignUp(offset, align uint64) uint64 {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + (align - rem)
}

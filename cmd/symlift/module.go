package main

import (
	"fmt"

	"github.com/symlift/corelift/dlayout"
	"github.com/symlift/corelift/ltl"
)

// moduleFile is the on-disk shape of a -module YAML fixture: a data-layout
// spec string (fed to dlayout.ParseDataLayout) plus a flat list of named
// type declarations. It exists only to give yaml.v2 something concrete to
// unmarshal into before rawNode.toRaw lowers each entry into ltl.RawType.
type moduleFile struct {
	DataLayout string        `yaml:"datalayout"`
	Decls      []declNode    `yaml:"decls"`
	Metadata   []metadataRow `yaml:"metadata"`
}

type declNode struct {
	ID   string  `yaml:"id"`
	Type rawNode `yaml:"type"`
}

type metadataRow struct {
	Index    int      `yaml:"index"`
	Kind     string   `yaml:"kind"`
	Operands []string `yaml:"operands"`
}

// rawNode is the YAML-facing mirror of ltl.RawType: a single "kind" tag plus
// whichever fields that kind needs. yaml.v2 cannot unmarshal into an
// interface directly, so every fixture decodes into this flat struct first.
type rawNode struct {
	Kind   string    `yaml:"kind"`
	Width  int       `yaml:"width,omitempty"`
	Name   string    `yaml:"name,omitempty"`
	ID     string    `yaml:"id,omitempty"`
	N      int       `yaml:"n,omitempty"`
	Elem   *rawNode  `yaml:"elem,omitempty"`
	Fields []rawNode `yaml:"fields,omitempty"`
	Packed bool      `yaml:"packed,omitempty"`
	Ret    *rawNode  `yaml:"ret,omitempty"`
	Args   []rawNode `yaml:"args,omitempty"`
	Vararg bool      `yaml:"vararg,omitempty"`
}

func (n rawNode) toRaw() (ltl.RawType, error) {
	switch n.Kind {
	case "int":
		return ltl.RawInt{Width: n.Width}, nil
	case "float":
		return ltl.RawFloat{}, nil
	case "double":
		return ltl.RawDouble{}, nil
	case "void":
		return ltl.RawVoid{}, nil
	case "metadata":
		return ltl.RawMetadata{}, nil
	case "other":
		return ltl.RawOther{Name: n.Name}, nil
	case "alias":
		return ltl.RawAlias{ID: ltl.Ident(n.ID)}, nil
	case "opaque":
		return ltl.RawOpaque{}, nil
	case "array", "vector", "ptr":
		if n.Elem == nil {
			return nil, fmt.Errorf("%s: missing elem", n.Kind)
		}
		elem, err := n.Elem.toRaw()
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case "array":
			return ltl.RawArray{N: n.N, Elem: elem}, nil
		case "vector":
			return ltl.RawVector{N: n.N, Elem: elem}, nil
		default:
			return ltl.RawPtr{Elem: elem}, nil
		}
	case "struct":
		fields := make([]ltl.RawType, len(n.Fields))
		for i, f := range n.Fields {
			raw, err := f.toRaw()
			if err != nil {
				return nil, fmt.Errorf("struct field %d: %w", i, err)
			}
			fields[i] = raw
		}
		return ltl.RawStruct{Fields: fields, Packed: n.Packed}, nil
	case "func":
		if n.Ret == nil {
			return nil, fmt.Errorf("func: missing ret")
		}
		ret, err := n.Ret.toRaw()
		if err != nil {
			return nil, err
		}
		args := make([]ltl.RawType, len(n.Args))
		for i, a := range n.Args {
			raw, err := a.toRaw()
			if err != nil {
				return nil, fmt.Errorf("func arg %d: %w", i, err)
			}
			args[i] = raw
		}
		return ltl.RawFunc{Ret: ret, Args: args, Vararg: n.Vararg}, nil
	default:
		return nil, fmt.Errorf("unknown raw type kind %q", n.Kind)
	}
}

// load turns a moduleFile into the inputs mkContext wants: a data layout, a
// metadata map, and a decl slice. Metadata/decl conversion errors abort the
// whole load, since a malformed fixture should never silently lose entries.
func (m moduleFile) load() (dlayout.DataLayout, map[int]ltl.ValMd, []ltl.Decl, error) {
	dl := dlayout.ParseDataLayout(m.DataLayout)

	metadata := make(map[int]ltl.ValMd, len(m.Metadata))
	for _, row := range m.Metadata {
		metadata[row.Index] = ltl.ValMd{Kind: row.Kind, Operands: row.Operands}
	}

	decls := make([]ltl.Decl, len(m.Decls))
	for i, d := range m.Decls {
		raw, err := d.Type.toRaw()
		if err != nil {
			return dlayout.DataLayout{}, nil, nil, fmt.Errorf("decl %q: %w", d.ID, err)
		}
		decls[i] = ltl.Decl{ID: ltl.Ident(d.ID), Raw: raw}
	}
	return dl, metadata, decls, nil
}

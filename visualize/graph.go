// Package visualize turns a resolved ltl.LLVMContext into a diagnostic
// Graphviz rendering of its alias graph, grouping named types connected by
// references (a superset of the mutually-recursive ones) into visual
// clusters so a reader can spot a cycle broken only by a pointer edge at a
// glance. It is read-only: nothing here ever feeds back
// into type resolution.
package visualize

import (
	"sort"

	"github.com/spakin/disjoint"

	"github.com/symlift/corelift/ltl"
)

// Node is one declared identifier in an AliasGraph, labeled with the shape
// its resolved SymType printed to.
type Node struct {
	ID          ltl.Ident
	Label       string
	Unsupported bool
}

// Edge is a direct reference from From to To: an Alias hop, a pointer to an
// alias, a struct field, or a function argument/return naming another
// declared identifier.
type Edge struct {
	From, To ltl.Ident
}

// AliasGraph is a rendering-ready projection of an LLVMContext's alias map.
type AliasGraph struct {
	Nodes []Node
	Edges []Edge
	// Clusters groups identifiers connected by Edges, in either direction,
	// via a union-find pass; a group can therefore include identifiers that
	// are not mutually referential (B -> A alone puts A and B together).
	// Only groups with more than one member are kept; every other
	// identifier renders standalone.
	Clusters [][]ltl.Ident
}

// BuildAliasGraph walks every entry of ctx's alias map and produces one node
// per declared identifier plus one edge per direct identifier reference
// reachable from that declaration's resolved SymType.
func BuildAliasGraph(ctx ltl.LLVMContext) AliasGraph {
	var g AliasGraph
	elements := make(map[ltl.Ident]*disjoint.Element)

	elementFor := func(id ltl.Ident) *disjoint.Element {
		if el, ok := elements[id]; ok {
			return el
		}
		el := disjoint.NewElement()
		elements[id] = el
		return el
	}

	ltl.ForEachAlias(ctx, func(id ltl.Ident, sym ltl.SymType) {
		_, unsupported := sym.(ltl.Unsupported)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: sym.String(), Unsupported: unsupported})
		elementFor(id)

		for _, to := range referencedIdents(sym) {
			g.Edges = append(g.Edges, Edge{From: id, To: to})
			disjoint.Union(elementFor(id), elementFor(to))
		}
	})

	sort.Slice(g.Nodes, func(i, j int) bool { return g.Nodes[i].ID < g.Nodes[j].ID })
	sort.Slice(g.Edges, func(i, j int) bool {
		if g.Edges[i].From != g.Edges[j].From {
			return g.Edges[i].From < g.Edges[j].From
		}
		return g.Edges[i].To < g.Edges[j].To
	})

	groups := make(map[*disjoint.Element][]ltl.Ident)
	for _, n := range g.Nodes {
		rep := elements[n.ID].Find()
		groups[rep] = append(groups[rep], n.ID)
	}
	for _, members := range groups {
		if len(members) > 1 {
			sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
			g.Clusters = append(g.Clusters, members)
		}
	}
	sort.Slice(g.Clusters, func(i, j int) bool { return g.Clusters[i][0] < g.Clusters[j][0] })

	return g
}

// referencedIdents collects every identifier directly named by sym, without
// following those references any further (that is the resolver's job, not
// this package's).
func referencedIdents(sym ltl.SymType) []ltl.Ident {
	switch t := sym.(type) {
	case ltl.Alias:
		return []ltl.Ident{t.ID}
	case ltl.Mem:
		return identsInMemType(t.MT)
	case ltl.Fun:
		var out []ltl.Ident
		if !t.Decl.Ret.IsVoid {
			out = append(out, identsInMemType(t.Decl.Ret.MT)...)
		}
		for _, a := range t.Decl.Args {
			out = append(out, identsInMemType(a)...)
		}
		return out
	default:
		return nil
	}
}

func identsInMemType(mt ltl.MemType) []ltl.Ident {
	switch t := mt.(type) {
	case ltl.PtrType:
		return referencedIdentsFromPointee(t.Elem)
	case ltl.ArrayType:
		return identsInMemType(t.Elem)
	case ltl.VecType:
		return identsInMemType(t.Elem)
	case ltl.StructMemType:
		var out []ltl.Ident
		for _, f := range t.Info.Fields {
			out = append(out, identsInMemType(f)...)
		}
		return out
	default:
		return nil
	}
}

// referencedIdentsFromPointee handles a pointer's element, which — unlike
// every other MemType slot — need not itself be a MemType (it can be an
// unresolved Alias or an Opaque).
func referencedIdentsFromPointee(sym ltl.SymType) []ltl.Ident {
	if a, ok := sym.(ltl.Alias); ok {
		return []ltl.Ident{a.ID}
	}
	if m, ok := sym.(ltl.Mem); ok {
		return identsInMemType(m.MT)
	}
	return nil
}

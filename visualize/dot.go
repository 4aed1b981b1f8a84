package visualize

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/goccy/go-graphviz"

	"github.com/symlift/corelift/utils/indenter"
)

const (
	clusterFill     = "#cff3ff"
	unsupportedFill = "#ffd1d1"
	nodeFill        = "honeydew"
)

// RenderDOT emits a Graphviz DOT document for g: one node per identifier
// (unsupported ones filled distinctly so a reader can immediately spot what
// failed to lift), one edge per direct reference, and one cluster subgraph
// per non-trivial equivalence class found by BuildAliasGraph's union-find
// pass.
func RenderDOT(g AliasGraph) []byte {
	clustered := make(map[string]bool)
	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[string(n.ID)] = n
	}

	body := indenter.Indenter().Start("")
	for i, members := range g.Clusters {
		lines := make([]string, len(members))
		for j, id := range members {
			n := byID[string(id)]
			fill := clusterFill
			if n.Unsupported {
				fill = unsupportedFill
			}
			lines[j] = fmt.Sprintf("%q [shape=box style=filled fillcolor=%q tooltip=%q];", id, fill, n.Label)
			clustered[string(id)] = true
		}
		body = body.NestStrings(fmt.Sprintf("subgraph cluster_%d {", i))
		body = body.NestStrings(lines...)
		body = body.NestStrings("}")
	}
	for _, n := range g.Nodes {
		if clustered[string(n.ID)] {
			continue
		}
		fill := nodeFill
		if n.Unsupported {
			fill = unsupportedFill
		}
		body = body.NestStrings(fmt.Sprintf("%q [shape=box style=filled fillcolor=%q tooltip=%q];", n.ID, fill, n.Label))
	}
	for _, e := range g.Edges {
		body = body.NestStrings(fmt.Sprintf("%q -> %q;", e.From, e.To))
	}

	var bodyText string
	if len(g.Clusters) > 0 || len(g.Nodes) > 0 || len(g.Edges) > 0 {
		bodyText = body.End("")
	}

	out := indenter.Indenter().Start("digraph AliasGraph {\n\trankdir=\"LR\";\n\tnode [fontname=\"Verdana\"];\n")
	out = out.NestStrings(bodyText)
	return []byte(out.End("}\n"))
}

var dotExe string

// RenderFile rasterizes g's DOT document to path+"."+format, preferring the
// system `dot` executable (matching how most real deployments already have
// Graphviz installed) and falling back to the in-process go-graphviz layout
// engine when it is not on PATH.
func RenderFile(g AliasGraph, path, format string) (string, error) {
	dot := RenderDOT(g)
	img := fmt.Sprintf("%s.%s", path, format)

	if dotExe == "" {
		if found, err := exec.LookPath("dot"); err == nil {
			dotExe = found
		}
	}
	if dotExe != "" {
		cmd := exec.Command(dotExe, fmt.Sprintf("-T%s", format), "-o", img)
		cmd.Stdin = bytes.NewReader(dot)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err == nil {
			return img, nil
		}
	}

	return renderFileGoGraphviz(dot, img, format)
}

func renderFileGoGraphviz(dot []byte, img, format string) (string, error) {
	gv := graphviz.New()
	defer gv.Close()

	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", fmt.Errorf("visualize: parsing generated dot: %w", err)
	}
	defer graph.Close()

	if err := gv.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", fmt.Errorf("visualize: rendering %s: %w", img, err)
	}
	return img, nil
}

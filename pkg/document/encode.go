package document

import "github.com/matzehuels/bridges/pkg/element"

// LargeGraphThreshold is the node count above which graphs switch to the
// compact encoding.
const LargeGraphThreshold = 1000

// Arc is a link between two node indices together with its visualizer.
type Arc struct {
	From, To int
	Visual   *element.LinkVisualizer
}

// IsLarge reports whether n nodes call for the compact encoding.
func IsLarge(n int) bool {
	return n > LargeGraphThreshold
}

// EncodeIndexed builds a nodes/links section from nodes in index order and
// arcs between those indices. It uses the compact encoding when
// IsLarge(len(nodes)).
func EncodeIndexed(nodes []element.Styled, arcs []Arc) Section {
	if IsLarge(len(nodes)) {
		return encodeCompact(nodes, arcs)
	}
	return encodeVerbose(nodes, arcs)
}

func encodeVerbose(nodes []element.Styled, arcs []Arc) Section {
	ns := make([]Node, len(nodes))
	for i, n := range nodes {
		ns[i] = NodeOf(n)
	}
	ls := make([]Link, len(arcs))
	for i, a := range arcs {
		ls[i] = LinkOf(a.Visual, a.From, a.To)
	}
	return Section{"nodes": ns, "links": ls}
}

func encodeCompact(nodes []element.Styled, arcs []Arc) Section {
	ns := make([]CompactNode, len(nodes))
	for i, n := range nodes {
		ns[i] = CompactNodeOf(n)
	}
	ls := make([]CompactLink, len(arcs))
	for i, a := range arcs {
		ls[i] = CompactLinkOf(a.Visual, a.From, a.To)
	}
	return Section{"nodes": ns, "links": ls}
}

// EncodeLinked walks the structure reachable from root depth-first,
// following Links in order. Each element is visited once, keyed by ID, so
// cycles terminate. Indices follow visitation order and the section always
// uses the verbose encoding. A nil root yields empty node and link lists.
func EncodeLinked(root element.Linked) Section {
	var (
		nodes []element.Styled
		arcs  []Arc
		index = make(map[element.ID]int)
	)

	var visit func(e element.Linked) int
	visit = func(e element.Linked) int {
		if i, ok := index[e.ID()]; ok {
			return i
		}
		i := len(nodes)
		index[e.ID()] = i
		nodes = append(nodes, e)
		for _, next := range e.Links() {
			k := len(arcs)
			arcs = append(arcs, Arc{From: i, Visual: e.LinkVisualizer(next)})
			arcs[k].To = visit(next)
		}
		return i
	}
	if root != nil {
		visit(root)
	}
	return encodeVerbose(nodes, arcs)
}

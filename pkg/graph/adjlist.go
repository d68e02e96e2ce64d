package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/element"
	"github.com/matzehuels/bridges/pkg/errors"
)

// Data structure type names reported to the renderer.
const (
	TypeAdjacencyList = "GraphAdjacencyList"
	TypeLargeGraph    = "largegraph"
)

// AdjList is a directed graph keyed by K whose vertices hold V and whose
// edges carry E.
type AdjList[K comparable, V, E any] struct {
	alloc    *element.Allocator
	keys     []K
	vertices map[K]*element.Element[V]
	adj      map[K]*Edge[K, E]
	edges    int
}

// New returns an empty graph with its own ID allocator.
func New[K comparable, V, E any]() *AdjList[K, V, E] {
	return NewWithAllocator[K, V, E](element.NewAllocator())
}

// NewWithAllocator returns an empty graph drawing element IDs from alloc.
func NewWithAllocator[K comparable, V, E any](alloc *element.Allocator) *AdjList[K, V, E] {
	return &AdjList[K, V, E]{
		alloc:    alloc,
		vertices: make(map[K]*element.Element[V]),
		adj:      make(map[K]*Edge[K, E]),
	}
}

// Allocator returns the allocator vertex IDs are drawn from.
func (g *AdjList[K, V, E]) Allocator() *element.Allocator { return g.alloc }

// =============================================================================
// Vertices
// =============================================================================

// AddVertex stores a new element wrapping value under key, labeled
// fmt.Sprint(key), and returns it. An existing element under key is
// replaced; its outgoing edges are kept.
func (g *AdjList[K, V, E]) AddVertex(key K, value V) *element.Element[V] {
	e := element.NewLabeled(g.alloc, value, fmt.Sprint(key))
	if _, ok := g.vertices[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.vertices[key] = e
	if _, ok := g.adj[key]; !ok {
		g.adj[key] = nil
	}
	return e
}

// Vertex returns the element stored under key.
func (g *AdjList[K, V, E]) Vertex(key K) (*element.Element[V], bool) {
	e, ok := g.vertices[key]
	return e, ok
}

// HasVertex reports whether key is a vertex.
func (g *AdjList[K, V, E]) HasVertex(key K) bool {
	_, ok := g.vertices[key]
	return ok
}

func (g *AdjList[K, V, E]) vertex(key K) (*element.Element[V], error) {
	e, ok := g.vertices[key]
	if !ok {
		return nil, errors.Reference("vertex %v does not exist", key)
	}
	return e, nil
}

// VertexData returns the payload of the vertex at key.
func (g *AdjList[K, V, E]) VertexData(key K) (V, error) {
	e, err := g.vertex(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Value(), nil
}

// SetVertexData replaces the payload of the vertex at key.
func (g *AdjList[K, V, E]) SetVertexData(key K, value V) error {
	e, err := g.vertex(key)
	if err != nil {
		return err
	}
	e.SetValue(value)
	return nil
}

// Keys returns vertex keys in first-insertion order.
func (g *AdjList[K, V, E]) Keys() []K {
	return slices.Clone(g.keys)
}

// Elements returns vertex elements in key order.
func (g *AdjList[K, V, E]) Elements() []*element.Element[V] {
	out := make([]*element.Element[V], len(g.keys))
	for i, k := range g.keys {
		out[i] = g.vertices[k]
	}
	return out
}

// Len returns the number of vertices.
func (g *AdjList[K, V, E]) Len() int { return len(g.keys) }

// EdgeCount returns the number of edges.
func (g *AdjList[K, V, E]) EdgeCount() int { return g.edges }

// Visualizer returns the element visualizer of the vertex at key.
func (g *AdjList[K, V, E]) Visualizer(key K) (*element.ElementVisualizer, error) {
	e, err := g.vertex(key)
	if err != nil {
		return nil, err
	}
	return e.Visualizer(), nil
}

// =============================================================================
// Edges
// =============================================================================

// AddEdge adds an edge from src to dest with the zero value of E.
func (g *AdjList[K, V, E]) AddEdge(src, dest K) error {
	var zero E
	return g.AddEdgeWithData(src, dest, zero)
}

// AddEdgeWithData prepends an edge from src to dest carrying data. Both
// endpoints must already be vertices; otherwise a REFERENCE error is
// returned and the graph is unchanged. Parallel edges are allowed.
func (g *AdjList[K, V, E]) AddEdgeWithData(src, dest K, data E) error {
	if !g.HasVertex(src) {
		return errors.Reference("source vertex %v does not exist", src)
	}
	if !g.HasVertex(dest) {
		return errors.Reference("destination vertex %v does not exist", dest)
	}
	g.adj[src] = &Edge[K, E]{From: src, To: dest, Data: data, next: g.adj[src]}
	g.edges++
	return nil
}

func (g *AdjList[K, V, E]) findEdge(src, dest K) (*Edge[K, E], error) {
	if !g.HasVertex(src) {
		return nil, errors.Reference("source vertex %v does not exist", src)
	}
	if !g.HasVertex(dest) {
		return nil, errors.Reference("destination vertex %v does not exist", dest)
	}
	for e := g.adj[src]; e != nil; e = e.next {
		if e.To == dest {
			return e, nil
		}
	}
	return nil, errors.Reference("edge %v -> %v does not exist", src, dest)
}

// EdgeData returns the data of the first edge from src to dest in
// adjacency order.
func (g *AdjList[K, V, E]) EdgeData(src, dest K) (E, error) {
	e, err := g.findEdge(src, dest)
	if err != nil {
		var zero E
		return zero, err
	}
	return e.Data, nil
}

// SetEdgeData replaces the data of the first edge from src to dest.
func (g *AdjList[K, V, E]) SetEdgeData(src, dest K, data E) error {
	e, err := g.findEdge(src, dest)
	if err != nil {
		return err
	}
	e.Data = data
	return nil
}

// HasEdge reports whether at least one edge runs from src to dest.
func (g *AdjList[K, V, E]) HasEdge(src, dest K) bool {
	_, err := g.findEdge(src, dest)
	return err == nil
}

// AdjacencyList returns the head of key's adjacency sequence, or nil when
// key has no outgoing edges or is not a vertex.
func (g *AdjList[K, V, E]) AdjacencyList(key K) *Edge[K, E] {
	return g.adj[key]
}

// Adjacency returns a copy of the key-to-head mapping. Vertices without
// outgoing edges map to nil.
func (g *AdjList[K, V, E]) Adjacency() map[K]*Edge[K, E] {
	return maps.Clone(g.adj)
}

// OutgoingEdges returns key's edges in adjacency order, most recent first.
func (g *AdjList[K, V, E]) OutgoingEdges(key K) []*Edge[K, E] {
	var out []*Edge[K, E]
	for e := g.adj[key]; e != nil; e = e.next {
		out = append(out, e)
	}
	return out
}

// LinkVisualizer returns the visualizer for links from src to dest,
// creating a default one on first access. It does not require an edge to
// exist, only both vertices.
func (g *AdjList[K, V, E]) LinkVisualizer(src, dest K) (*element.LinkVisualizer, error) {
	from, err := g.vertex(src)
	if err != nil {
		return nil, err
	}
	to, err := g.vertex(dest)
	if err != nil {
		return nil, err
	}
	return from.LinkVisualizer(to), nil
}

// =============================================================================
// Serialization
// =============================================================================

// DataStructureType returns TypeLargeGraph when the graph exceeds
// document.LargeGraphThreshold vertices and TypeAdjacencyList otherwise.
func (g *AdjList[K, V, E]) DataStructureType() string {
	if document.IsLarge(g.Len()) {
		return TypeLargeGraph
	}
	return TypeAdjacencyList
}

// Representation encodes the graph's nodes and links. Vertices are
// indexed in key order and links follow each adjacency sequence. Link
// visualizers are fetched through the element cache, so missing entries
// are created as a side effect.
func (g *AdjList[K, V, E]) Representation() (document.Section, error) {
	index := make(map[K]int, len(g.keys))
	nodes := make([]element.Styled, len(g.keys))
	for i, k := range g.keys {
		index[k] = i
		nodes[i] = g.vertices[k]
	}

	arcs := make([]document.Arc, 0, g.edges)
	for _, k := range g.keys {
		from := g.vertices[k]
		for e := g.adj[k]; e != nil; e = e.next {
			j, ok := index[e.To]
			if !ok {
				return nil, errors.Reference("edge %v -> %v points at a missing vertex", k, e.To)
			}
			arcs = append(arcs, document.Arc{
				From:   index[k],
				To:     j,
				Visual: from.LinkVisualizer(g.vertices[e.To]),
			})
		}
	}
	return document.EncodeIndexed(nodes, arcs), nil
}

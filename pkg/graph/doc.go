// Package graph provides the adjacency-list graph at the center of bridges.
//
// An [AdjList] maps vertex keys to [element.Element] values and keeps, per
// vertex, a singly-linked sequence of outgoing [Edge] values. New edges are
// prepended, so each sequence runs most-recent-first.
//
// # Building a Graph
//
//	g := graph.New[string, int, string]()
//	g.AddVertex("A", 1)
//	g.AddVertex("B", 2)
//	if err := g.AddEdge("A", "B"); err != nil {
//	    // REFERENCE error: an endpoint does not exist
//	}
//
// Adding a vertex under an existing key silently replaces its element. The
// key keeps its original position in [AdjList.Keys], so serialization order
// is stable across overwrites.
//
// # Styling
//
// [AdjList.AddVertex] returns the new element so it can be styled directly;
// links are styled through [AdjList.LinkVisualizer]:
//
//	g.AddVertex("A", 1).Visualizer().SetColorName("crimson")
//	lv, _ := g.LinkVisualizer("A", "B")
//	lv.SetThickness(3)
//
// # Limitations
//
// Lookups by destination ([AdjList.EdgeData], [AdjList.SetEdgeData]) scan
// the source's sequence and cost O(out-degree). Graphs are sized for
// visualization, not for heavy analytics.
//
// AdjList is not safe for concurrent mutation.
package graph

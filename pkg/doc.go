// Package pkg holds the bridges libraries.
//
// # Overview
//
// Bridges turns in-memory data structures into visualization documents: a
// JSON object with a header (visual type, title, description, coordinate
// system) merged with the structure's nodes and links. A renderer draws the
// document; bridges never renders.
//
//	dataset file ──▶ [source] ──▶ [graph] / [tree] / [list] / [symbol]
//	                                     │
//	                                     ▼
//	                               [document] ──▶ [transport] ──▶ renderer
//	                                                  │
//	                                               [cache]
//
// Leaves first:
//
//   - [errors]: coded errors (VALIDATION, REFERENCE, UNREPRESENTABLE_STATE, ...)
//   - [color]: validated RGBA colors and the CSS named-color table
//   - [element]: identity-bearing elements with node and link visualizers
//   - [graph], [tree], [list], [symbol]: the structures
//   - [document]: verbose and compact encodings, headers, [document.Builder]
//   - [source]: JSON node-link and Graphviz DOT loaders
//   - [transport]: posting documents to a renderer with retries
//   - [cache]: records of delivered documents (file or Redis)
//   - [config], [buildinfo], [observability]: ambient support
//
// # Quick Start
//
//	g := graph.New[string, int, float64]()
//	g.AddVertex("a", 1)
//	g.AddVertex("b", 2)
//	if err := g.AddEdgeWithData("a", "b", 0.5); err != nil {
//	    return err
//	}
//
//	b := document.NewBuilder(logger)
//	b.SetTitle("Two vertices")
//	if err := b.SetStructure(g); err != nil {
//	    return err
//	}
//	_, err := b.WriteTo(os.Stdout)
package pkg

// Package document turns bridges data structures into the JSON document
// consumed by the remote renderer.
//
// A document is a header (visual type, title, description, coordinate
// system, map overlay flag) merged with a structure-specific [Section]:
//
//	{
//	  "visual": "GraphAdjacencyList",
//	  "title": "...", "description": "...",
//	  "coord_system_type": "cartesian", "map_overlay": false,
//	  "nodes": [ {"name": "A", "shape": "circle", "size": 10, "color": [0,128,0,1]} ],
//	  "links": [ {"color": [70,130,180,1], "thickness": 1, "weight": 1, "source": 0, "target": 1} ]
//	}
//
// Structures implement [Structure]. Graphs build their section with
// [EncodeIndexed], which switches to the compact array encoding once the
// node count exceeds [LargeGraphThreshold]:
//
//	"nodes": [ [[x,y], [r,g,b,a]], [[r,g,b,a]] ],
//	"links": [ [0, 1, [r,g,b,a]] ]
//
// Linked structures (trees, lists) use [EncodeLinked].
//
// The header is owned by [Builder], which validates and truncates it and
// refuses to marshal until a structure has been designated.
package document

package graph_test

import (
	"fmt"

	"github.com/matzehuels/bridges/pkg/document"
	"github.com/matzehuels/bridges/pkg/graph"
)

func ExampleAdjList() {
	g := graph.New[string, string, float64]()
	g.AddVertex("A", "first")
	g.AddVertex("B", "second").Visualizer().SetColorName("crimson")
	if err := g.AddEdgeWithData("A", "B", 2.5); err != nil {
		fmt.Println("error:", err)
		return
	}

	lv, _ := g.LinkVisualizer("A", "B")
	_ = lv.SetThickness(3)

	b := document.NewBuilder(nil)
	b.SetTitle("Two vertices")
	_ = b.SetStructure(g)
	data, err := b.Marshal()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// {"coord_system_type":"cartesian","description":"","links":[{"color":[70,130,180,1],"thickness":3,"weight":1,"source":0,"target":1}],"map_overlay":false,"nodes":[{"name":"A","shape":"circle","size":10,"color":[0,128,0,1]},{"name":"B","shape":"circle","size":10,"color":[220,20,60,1]}],"title":"Two vertices","visual":"GraphAdjacencyList"}
}

func ExampleAdjList_AddEdge() {
	g := graph.New[int, int, int]()
	g.AddVertex(1, 1)

	err := g.AddEdge(1, 2)
	fmt.Println(err)
	fmt.Println(g.EdgeCount())
	// Output:
	// REFERENCE: destination vertex 2 does not exist
	// 0
}

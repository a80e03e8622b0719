package algebra_test

import (
	"fmt"

	"github.com/matzehuels/pinboard/pkg/algebra"
)

type name string

func (n name) Key() string { return string(n) }

func ExampleConnect() {
	// Connect draws an edge from every left vertex to every right vertex.
	g := algebra.Connect(
		algebra.Vertices[name]("alice", "bob"),
		algebra.Vertex(name("paper")),
	)

	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("alice → paper:", g.HasEdge("alice", "paper"))
	fmt.Println("paper → alice:", g.HasEdge("paper", "alice"))
	// Output:
	// Vertices: 3
	// Edges: 2
	// alice → paper: true
	// paper → alice: false
}

func ExampleOverlay() {
	a := algebra.Edge(name("x"), name("y"))
	b := algebra.Overlay(a, algebra.Vertex(name("x")))

	// Re-inserting x is a no-op, and a is unchanged by deriving b.
	fmt.Println(a.VertexCount(), b.VertexCount())
	fmt.Println(algebra.Equal(a, b))
	// Output:
	// 2 2
	// true
}

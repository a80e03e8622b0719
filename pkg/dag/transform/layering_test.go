package transform

import (
	"testing"

	"github.com/matzehuels/pinboard/pkg/dag"
)

func TestAssignLayers(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  map[string]int
	}{
		{
			name:  "isolated nodes",
			nodes: []string{"a", "b"},
			want:  map[string]int{"a": 0, "b": 0},
		},
		{
			name:  "board shape",
			nodes: []string{"doc", "ann", "ent", "lone"},
			edges: [][2]string{{"ann", "doc"}, {"ent", "ann"}},
			want:  map[string]int{"ent": 0, "ann": 1, "doc": 2, "lone": 0},
		},
		{
			name:  "longest path wins",
			nodes: []string{"a", "b", "c"},
			edges: [][2]string{{"a", "c"}, {"a", "b"}, {"b", "c"}},
			want:  map[string]int{"a": 0, "b": 1, "c": 2},
		},
		{
			name:  "entity on its own annotation and document",
			nodes: []string{"ent", "ann", "doc"},
			edges: [][2]string{{"ent", "ann"}, {"ann", "doc"}, {"ent", "doc"}},
			want:  map[string]int{"ent": 0, "ann": 1, "doc": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := dag.New()
			for _, id := range tt.nodes {
				_ = g.AddNode(dag.Node{ID: id, Row: 7})
			}
			for _, e := range tt.edges {
				_ = g.AddEdge(dag.Edge{From: e[0], To: e[1]})
			}

			AssignLayers(g)

			for id, want := range tt.want {
				n, _ := g.Node(id)
				if n.Row != want {
					t.Errorf("%s row = %d, want %d", id, n.Row, want)
				}
			}
		})
	}
}

package layout

import (
	"encoding/json"
	"math"
	"os"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/record"
)

// NodeType tells the rendering surface which visual component to use.
type NodeType string

const (
	TypeDocumentSink NodeType = "document-sink"
	TypeAnnotation   NodeType = "annotation"
	TypeEntitySource NodeType = "entity-source"
)

// TypeOf returns the node type for a vertex. Documents only receive edges
// and entities only emit them, hence sink and source.
func TypeOf(v record.Vertex) NodeType {
	return record.Match(v,
		func(record.Document) NodeType { return TypeDocumentSink },
		func(record.Annotation) NodeType { return TypeAnnotation },
		func(record.Entity) NodeType { return TypeEntitySource },
	)
}

// Side is where an edge attaches to a node box.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Position is a point in drawing coordinates. For nodes it is the top-left
// corner of the box.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node places one vertex.
type Node struct {
	ID             string        `json:"id"`
	Type           NodeType      `json:"type"`
	Data           record.Vertex `json:"data"`
	Position       Position      `json:"position"`
	Width          float64       `json:"width"`
	Height         float64       `json:"height"`
	SourcePosition Side          `json:"sourcePosition"`
	TargetPosition Side          `json:"targetPosition"`
}

// Center returns the centre of the node box.
func (n Node) Center() Position {
	return Position{X: n.Position.X + n.Width/2, Y: n.Position.Y + n.Height/2}
}

// Edge connects two placed nodes. Bends lists the centre points of the
// bend nodes inserted when the edge spans more than one rank, in flow
// order.
type Edge struct {
	ID       string     `json:"id"`
	Source   string     `json:"source"`
	Target   string     `json:"target"`
	Animated bool       `json:"animated"`
	Bends    []Position `json:"bends,omitempty"`
}

// EdgeID returns the identifier of the edge from source to target.
func EdgeID(source, target string) string { return source + "-" + target }

// Elements is the result of a layout: nodes sorted by id, edges sorted by
// source id then edge id.
type Elements struct {
	Nodes []Node
	Edges []Edge
}

// Node returns the node with the given id.
func (el Elements) Node(id string) (Node, bool) {
	for _, n := range el.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, Width, Height float64
}

// Bounds returns the smallest box containing every node. It is the zero
// Rect when there are no nodes.
func (el Elements) Bounds() Rect {
	if len(el.Nodes) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range el.Nodes {
		minX = math.Min(minX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxX = math.Max(maxX, n.Position.X+n.Width)
		maxY = math.Max(maxY, n.Position.Y+n.Height)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

type nodeJSON struct {
	Kind string `json:"kind"`
	Node
}

type edgeJSON struct {
	Kind string `json:"kind"`
	Edge
}

// MarshalJSON encodes the elements as one list, nodes first, each entry
// tagged with "kind": "node" or "edge".
func (el Elements) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(el.Nodes)+len(el.Edges))
	for _, n := range el.Nodes {
		out = append(out, nodeJSON{Kind: "node", Node: n})
	}
	for _, e := range el.Edges {
		out = append(out, edgeJSON{Kind: "edge", Edge: e})
	}
	return json.Marshal(out)
}

// WriteFile writes the indented JSON encoding of el to path.
func (el Elements) WriteFile(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write layout to %s", path)
	}
	return nil
}

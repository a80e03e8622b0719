package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID is already registered.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [DAG.Validate] when an edge
	// references a node that doesn't exist.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrNonConsecutiveRows is returned by [DAG.Validate] when an edge does
	// not go from one rank to the next (From.Row+1 != To.Row).
	ErrNonConsecutiveRows = errors.New("edges must connect consecutive rows")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a directed cycle
	// is found.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph.
// The layout keeps the originating vertex kind here so synthetic nodes can
// be told apart from board vertices without a type switch.
type Metadata map[string]any

// NodeKind distinguishes board vertices from nodes the layout inserts.
type NodeKind int

const (
	// NodeKindVertex is a node that stands for a graph vertex.
	NodeKindVertex NodeKind = iota
	// NodeKindSubdivider is a bend point inserted on an edge that spans
	// more than one rank. It carries the MasterID of the edge's source.
	NodeKindSubdivider
)

// Node is a vertex of the working graph with an assigned rank (Row).
type Node struct {
	ID   string   // Unique identifier
	Row  int      // Rank (0 = first rank, increasing along the flow)
	Meta Metadata // Never nil after AddNode

	Kind NodeKind
	// MasterID links a subdivider back to the source vertex of the edge
	// it belongs to.
	MasterID string
}

// IsSubdivider reports whether the node was inserted to break a long edge.
func (n Node) IsSubdivider() bool { return n.Kind == NodeKindSubdivider }

// IsSynthetic reports whether the node was created by a transformation
// rather than registered from a graph vertex.
func (n Node) IsSynthetic() bool { return n.Kind != NodeKindVertex }

// Edge is a directed connection between two nodes. After subdivision every
// edge connects consecutive rows; [DAG.Validate] checks this.
type Edge struct {
	From string
	To   string
	Meta Metadata // Never nil after AddEdge
}

// DAG is a directed graph organised into ranks for layered drawing.
//
// Unlike the immutable board graph, a DAG is a mutable scratch structure:
// the layout builds one per call, transforms it in place and throws it
// away. All enumeration methods return nodes in a deterministic order
// (insertion order), so two runs over the same input produce the same
// drawing.
//
// The zero value is not usable; use [New]. A DAG is not safe for
// concurrent use.
type DAG struct {
	nodes    map[string]*Node
	order    []string // insertion order of node IDs
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	rows     map[int][]*Node
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		rows:     make(map[int][]*Node),
	}
}

// AddNode registers a node and indexes it by its Row.
// Returns ErrInvalidNodeID for an empty ID and ErrDuplicateNodeID if the
// ID is taken.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	d.rows[node.Row] = append(d.rows[node.Row], node)
	return nil
}

// SetRows updates rank assignments and rebuilds the row index. Nodes not
// present in rows keep their current rank. Within a row, nodes stay in
// insertion order.
func (d *DAG) SetRows(rows map[string]int) {
	d.rows = make(map[int][]*Node)
	for _, id := range d.order {
		n := d.nodes[id]
		if newRow, ok := rows[id]; ok {
			n.Row = newRow
		}
		d.rows[n.Row] = append(d.rows[n.Row], n)
	}
}

// SetRowOrder replaces the left-to-right order of the nodes in a row.
// ids must be a permutation of the IDs currently in that row; unknown IDs
// are ignored and missing ones are appended in their previous order.
func (d *DAG) SetRowOrder(row int, ids []string) {
	current := d.rows[row]
	seen := make(map[string]bool, len(current))
	ordered := make([]*Node, 0, len(current))
	for _, id := range ids {
		if n, ok := d.nodes[id]; ok && n.Row == row && !seen[id] {
			seen[id] = true
			ordered = append(ordered, n)
		}
	}
	for _, n := range current {
		if !seen[n.ID] {
			ordered = append(ordered, n)
		}
	}
	d.rows[row] = ordered
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// missing. Rank consistency is not checked here; see [DAG.Validate].
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes every edge from→to. It is a no-op if none exists.
func (d *DAG) RemoveEdge(from, to string) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	d.outgoing[from] = slices.DeleteFunc(d.outgoing[from], func(s string) bool { return s == to })
	d.incoming[to] = slices.DeleteFunc(d.incoming[to], func(s string) bool { return s == from })
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs of the node's successors. The slice is a
// read-only view.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of the node's predecessors. The slice is a
// read-only view.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// InDegree returns the number of incoming edges.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// Node returns the node with the given ID.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// NodesInRow returns the nodes of a rank in their current left-to-right
// order, or nil for an empty rank.
func (d *DAG) NodesInRow(row int) []*Node { return d.rows[row] }

// RowCount returns the number of non-empty ranks.
func (d *DAG) RowCount() int { return len(d.rows) }

// RowIDs returns all rank indices in ascending order.
func (d *DAG) RowIDs() []int {
	return slices.Sorted(maps.Keys(d.rows))
}

// Orders returns the current left-to-right ID order of every rank, in the
// shape expected by [CountCrossings].
func (d *DAG) Orders() map[int][]string {
	orders := make(map[int][]string, len(d.rows))
	for row, nodes := range d.rows {
		orders[row] = NodeIDs(nodes)
	}
	return orders
}

// Sources returns nodes with no incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// Validate checks that every edge connects existing nodes in consecutive
// rows and that the graph is acyclic. It returns ErrInvalidEdgeEndpoint,
// ErrNonConsecutiveRows or ErrGraphHasCycle on failure.
func (d *DAG) Validate() error {
	if err := d.validateEdgeConsistency(); err != nil {
		return err
	}
	return d.detectCycles()
}

func (d *DAG) validateEdgeConsistency() error {
	for _, e := range d.edges {
		src, okS := d.nodes[e.From]
		dst, okD := d.nodes[e.To]
		if !okS || !okD {
			return ErrInvalidEdgeEndpoint
		}
		if dst.Row != src.Row+1 {
			return ErrNonConsecutiveRows
		}
	}
	return nil
}

func (d *DAG) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range d.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// PosMap maps each ID to its index in ids.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// NodeIDs extracts the ID of each node, preserving order.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

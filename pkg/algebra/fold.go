package algebra

// sets holds the derived vertex and edge sets of one graph value.
type sets[V Keyed] struct {
	vertices []V
	vindex   map[string]int
	edges    []Pair[V]
	eindex   map[string]int
}

func newSets[V Keyed](hint int) *sets[V] {
	return &sets[V]{
		vertices: make([]V, 0, hint),
		vindex:   make(map[string]int, hint),
		eindex:   make(map[string]int),
	}
}

func (s *sets[V]) addVertex(v V) string {
	k := v.Key()
	if _, ok := s.vindex[k]; !ok {
		s.vindex[k] = len(s.vertices)
		s.vertices = append(s.vertices, v)
	}
	return k
}

func (s *sets[V]) addEdge(src, dst V, srcKey, dstKey string) {
	k := edgeKey(srcKey, dstKey)
	if _, ok := s.eindex[k]; !ok {
		s.eindex[k] = len(s.edges)
		s.edges = append(s.edges, Pair[V]{Source: src, Target: dst})
	}
}

func (g Graph[V]) sets() *sets[V] {
	if g.n == nil {
		return newSets[V](0)
	}
	g.n.once.Do(func() {
		s := newSets[V](g.n.size)
		s.collect(g)
		g.n.memo.Store(s)
	})
	return g.n.memo.Load()
}

// collect walks g left to right, adding its vertices and edges to s.
// Subtrees that were already folded contribute their memoized sets.
func (s *sets[V]) collect(g Graph[V]) {
	n := g.n
	if n == nil {
		return
	}
	if memo := n.memo.Load(); memo != nil {
		s.merge(memo)
		return
	}
	switch n.op {
	case opVertex:
		s.addVertex(n.v)
	case opOverlay:
		s.collect(n.left)
		s.collect(n.right)
	case opConnect:
		s.collect(n.left)
		s.collect(n.right)
		srcs := vertexList(n.left)
		dsts := vertexList(n.right)
		for _, src := range srcs {
			for _, dst := range dsts {
				s.addEdge(src.v, dst.v, src.key, dst.key)
			}
		}
	}
}

func (s *sets[V]) merge(o *sets[V]) {
	for _, v := range o.vertices {
		s.addVertex(v)
	}
	for _, e := range o.edges {
		s.addEdge(e.Source, e.Target, e.Source.Key(), e.Target.Key())
	}
}

type keyed[V Keyed] struct {
	v   V
	key string
}

// vertexList returns the distinct vertices of g without folding its edges.
func vertexList[V Keyed](g Graph[V]) []keyed[V] {
	if memo := g.memoized(); memo != nil {
		out := make([]keyed[V], len(memo.vertices))
		for i, v := range memo.vertices {
			out[i] = keyed[V]{v: v, key: v.Key()}
		}
		return out
	}
	seen := make(map[string]struct{})
	var out []keyed[V]
	var walk func(Graph[V])
	walk = func(g Graph[V]) {
		n := g.n
		if n == nil {
			return
		}
		if n.op == opVertex {
			k := n.v.Key()
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				out = append(out, keyed[V]{v: n.v, key: k})
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(g)
	return out
}

func (g Graph[V]) memoized() *sets[V] {
	if g.n == nil {
		return nil
	}
	return g.n.memo.Load()
}

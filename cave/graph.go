// File: graph.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Labels() is sorted; Neighbors() keeps edge insertion order.
// Concurrency:
//   - No locks: a Graph is never mutated after Build.

package cave

import "sort"

// Graph is an immutable undirected cave graph with interned node IDs.
type Graph struct {
	ids    map[string]ID
	labels []string
	kinds  []Kind
	adj    [][]ID
	edges  int
	start  ID
	end    ID
}

// Len returns the number of nodes. Valid IDs are 0..Len()-1.
func (g *Graph) Len() int { return len(g.labels) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// ID returns the interned ID of label.
func (g *Graph) ID(label string) (ID, bool) {
	id, ok := g.ids[label]
	if !ok {
		return NoID, false
	}

	return id, true
}

// Label returns the label of id. It panics if id is out of range.
func (g *Graph) Label(id ID) string { return g.labels[id] }

// Kind returns the cached classification of id. It panics if id is out of range.
func (g *Graph) Kind(id ID) Kind { return g.kinds[id] }

// Neighbors returns the adjacency of id in insertion order.
// The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(id ID) []ID { return g.adj[id] }

// Start returns the ID of the start node, if present.
func (g *Graph) Start() (ID, bool) { return g.start, g.start != NoID }

// End returns the ID of the end node, if present.
func (g *Graph) End() (ID, bool) { return g.end, g.end != NoID }

// Labels returns all labels sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Labels() []string {
	out := append([]string(nil), g.labels...)
	sort.Strings(out)

	return out
}

// Stats summarizes node kinds and sizes.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:    len(g.labels),
		Edges:    g.edges,
		HasStart: g.start != NoID,
		HasEnd:   g.end != NoID,
	}
	for _, k := range g.kinds {
		switch k {
		case Limited:
			s.Limited++
		case Unlimited:
			s.Unlimited++
		}
	}

	return s
}

// File: builder.go
// Role: Incremental, single-goroutine construction of a Graph.
// Determinism:
//   - IDs are assigned in first-seen order; neighbor lists keep insertion order.
// Concurrency:
//   - A Builder is not safe for concurrent use. The Graph it produces is.

package cave

import "fmt"

// defaultCapacity is the initial label capacity; puzzle caves have tens of nodes.
const defaultCapacity = 16

// edgeKey identifies an undirected edge independent of orientation (lo ≤ hi).
type edgeKey struct{ lo, hi ID }

func keyOf(u, v ID) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{lo: u, hi: v}
}

// Builder accumulates edges and interns labels until Build is called.
type Builder struct {
	checkCycles bool
	capHint     int

	ids    map[string]ID
	labels []string
	kinds  []Kind
	adj    [][]ID
	seen   map[edgeKey]struct{}
}

// NewBuilder returns an empty Builder with the given options applied.
// Complexity: O(1).
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{checkCycles: true, capHint: defaultCapacity}
	for _, opt := range opts {
		opt(b)
	}
	b.ids = make(map[string]ID, b.capHint)
	b.labels = make([]string, 0, b.capHint)
	b.kinds = make([]Kind, 0, b.capHint)
	b.adj = make([][]ID, 0, b.capHint)
	b.seen = make(map[edgeKey]struct{}, b.capHint)

	return b
}

// AddLine parses one "LABEL-LABEL" line and adds the edge.
func (b *Builder) AddLine(line string) error {
	e, err := ParseEdge(line)
	if err != nil {
		return err
	}

	return b.AddEdge(e.From, e.To)
}

// AddEdge adds an undirected edge between two labels, interning either label
// on first sight. Adding an edge that already exists, in either orientation,
// is a no-op.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: %q-%q", ErrEmptyLabel, from, to)
	}
	u, v := b.intern(from), b.intern(to)

	k := keyOf(u, v)
	if _, dup := b.seen[k]; dup {
		return nil
	}
	b.seen[k] = struct{}{}

	b.adj[u] = append(b.adj[u], v)
	if u != v {
		b.adj[v] = append(b.adj[v], u)
	}

	return nil
}

// intern returns the ID of label, assigning the next free one and caching
// its Kind if the label is new.
func (b *Builder) intern(label string) ID {
	if id, ok := b.ids[label]; ok {
		return id
	}
	id := ID(len(b.labels))
	b.ids[label] = id
	b.labels = append(b.labels, label)
	b.kinds = append(b.kinds, Classify(label))
	b.adj = append(b.adj, nil)

	return id
}

// Build validates the accumulated edges and returns an immutable Graph.
// The Builder may keep being used afterwards; the Graph does not share
// mutable state with it.
//
// Steps:
//  1. Reject Unlimited–Unlimited edges unless WithoutCycleCheck was given.
//  2. Copy labels, kinds and adjacency into the Graph.
//  3. Resolve the start and end IDs (NoID when absent).
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	// 1. Unbounded cycles
	if b.checkCycles {
		for u, nbs := range b.adj {
			if b.kinds[u] != Unlimited {
				continue
			}
			for _, v := range nbs {
				if b.kinds[v] == Unlimited {
					return nil, fmt.Errorf("%w: %s-%s", ErrUnboundedCycle, b.labels[u], b.labels[v])
				}
			}
		}
	}

	// 2. Freeze
	n := len(b.labels)
	g := &Graph{
		ids:    make(map[string]ID, n),
		labels: append([]string(nil), b.labels...),
		kinds:  append([]Kind(nil), b.kinds...),
		adj:    make([][]ID, n),
		edges:  len(b.seen),
		start:  NoID,
		end:    NoID,
	}
	for label, id := range b.ids {
		g.ids[label] = id
	}
	for id, nbs := range b.adj {
		g.adj[id] = append([]ID(nil), nbs...)
	}

	// 3. Distinguished nodes
	if id, ok := g.ids[StartLabel]; ok {
		g.start = id
	}
	if id, ok := g.ids[EndLabel]; ok {
		g.end = id
	}

	return g, nil
}

package revisit

import "github.com/katalvlaran/cavepath/cave"

// Visits is the read-only view of a route's visit counts that policies see.
type Visits interface {
	// Count returns how many times the route has entered id.
	// Unlimited and End nodes always report 0.
	Count(id cave.ID) int

	// Doubled reports whether some Limited node has been entered at least twice.
	Doubled() bool
}

// Histogram counts visits per node for one in-progress route.
// Only Start and Limited nodes are counted.
type Histogram struct {
	counts  []int
	doubled int // number of nodes with count ≥ 2
}

// NewHistogram returns an empty histogram for a graph of n nodes.
func NewHistogram(n int) *Histogram {
	return &Histogram{counts: make([]int, n)}
}

// counted reports whether visits to nodes of kind k are tracked.
func counted(k cave.Kind) bool { return k == cave.Start || k == cave.Limited }

// Visit records one entry into id.
func (h *Histogram) Visit(id cave.ID, kind cave.Kind) {
	if !counted(kind) {
		return
	}
	h.counts[id]++
	if h.counts[id] == 2 {
		h.doubled++
	}
}

// Leave undoes the matching Visit. Calls must be strictly nested with Visit.
func (h *Histogram) Leave(id cave.ID, kind cave.Kind) {
	if !counted(kind) {
		return
	}
	if h.counts[id] == 2 {
		h.doubled--
	}
	h.counts[id]--
}

// Count implements Visits.
func (h *Histogram) Count(id cave.ID) int { return h.counts[id] }

// Doubled implements Visits.
func (h *Histogram) Doubled() bool { return h.doubled > 0 }

// Clone returns an independent copy.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		counts:  append([]int(nil), h.counts...),
		doubled: h.doubled,
	}
}

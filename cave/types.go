package cave

import "errors"

// Distinguished labels. They are matched exactly, independent of case rules.
const (
	StartLabel = "start"
	EndLabel   = "end"
)

// edgeSeparator splits the two labels of an input line.
const edgeSeparator = "-"

// Sentinel errors for graph construction.
var (
	// ErrMalformedEdge indicates a line that does not split into exactly two non-empty labels.
	ErrMalformedEdge = errors.New("cave: malformed edge")

	// ErrEmptyLabel indicates an edge endpoint with an empty label.
	ErrEmptyLabel = errors.New("cave: empty label")

	// ErrUnboundedCycle indicates two directly connected Unlimited nodes,
	// which would allow routes of unbounded length.
	ErrUnboundedCycle = errors.New("cave: unbounded cycle between unlimited caves")
)

// ID is the dense integer identity of a node inside one Graph.
// IDs are assigned 0..Len()-1 in first-seen order and are meaningless across graphs.
type ID int

// NoID is returned by lookups that find nothing.
const NoID ID = -1

// Kind classifies a node for the revisit rules.
type Kind uint8

const (
	// Unlimited nodes (big caves) may be revisited without bound.
	Unlimited Kind = iota
	// Limited nodes (small caves) may be revisited only as a policy allows.
	Limited
	// Start is the node every route begins at. It is never re-entered.
	Start
	// End is the node every route finishes at. A route stops on reaching it.
	End
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Unlimited:
		return "unlimited"
	case Limited:
		return "limited"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Bounded reports whether visits to nodes of this kind are counted.
// Only Unlimited nodes are free.
func (k Kind) Bounded() bool { return k != Unlimited }

// Edge is one undirected connection between two labels, as read from input.
type Edge struct {
	From string
	To   string
}

// Option configures a Builder.
type Option func(*Builder)

// WithoutCycleCheck disables the unbounded-cycle check in Build.
// Use it only for graphs that are inspected, never enumerated.
func WithoutCycleCheck() Option {
	return func(b *Builder) { b.checkCycles = false }
}

// WithCapacity pre-sizes the builder for about n distinct labels.
func WithCapacity(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.capHint = n
		}
	}
}

// Stats is a read-only summary of a built Graph.
type Stats struct {
	Nodes     int // total interned labels
	Edges     int // distinct undirected edges
	Limited   int // small caves, excluding start and end
	Unlimited int // big caves
	HasStart  bool
	HasEnd    bool
}

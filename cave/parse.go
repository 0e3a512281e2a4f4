package cave

import (
	"fmt"
	"strings"
)

// ParseEdge splits one "LABEL-LABEL" line into an Edge.
// The line must contain exactly one separator with a non-empty label on each side;
// surrounding whitespace is not trimmed.
func ParseEdge(line string) (Edge, error) {
	parts := strings.Split(line, edgeSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Edge{}, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
	}

	return Edge{From: parts[0], To: parts[1]}, nil
}

// Parse builds a Graph from edge lines. The first malformed line aborts
// construction; no partial graph is returned.
func Parse(lines []string, opts ...Option) (*Graph, error) {
	b := NewBuilder(opts...)
	for i, line := range lines {
		if err := b.AddLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return b.Build()
}

// Build builds a Graph from already parsed edges.
func Build(edges []Edge, opts ...Option) (*Graph, error) {
	b := NewBuilder(opts...)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

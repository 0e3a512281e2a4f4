package revisit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cavepath/cave"
)

// ErrUnknownPolicy is returned by Lookup for an unrecognized policy name.
var ErrUnknownPolicy = errors.New("revisit: unknown policy")

// Policy decides whether a route may extend into a node.
// Implementations must be stateless and must not mutate v.
type Policy interface {
	// Name is a short stable identifier used in logs and configuration.
	Name() string

	// Allowed reports whether the route whose counts are v may enter id.
	Allowed(v Visits, id cave.ID, kind cave.Kind) bool
}

// SingleVisit allows every Limited node at most once.
type SingleVisit struct{}

// Name implements Policy.
func (SingleVisit) Name() string { return "single" }

// Allowed implements Policy.
func (SingleVisit) Allowed(v Visits, id cave.ID, kind cave.Kind) bool {
	switch kind {
	case cave.Start:
		return false
	case cave.Limited:
		return v.Count(id) < 1
	default:
		return true
	}
}

// OneDoubleVisit allows a single Limited node to be visited twice per route;
// every other Limited node at most once.
type OneDoubleVisit struct{}

// Name implements Policy.
func (OneDoubleVisit) Name() string { return "double" }

// Allowed implements Policy.
func (OneDoubleVisit) Allowed(v Visits, id cave.ID, kind cave.Kind) bool {
	switch kind {
	case cave.Start:
		return false
	case cave.Limited:
		switch c := v.Count(id); {
		case c >= 2:
			return false
		case c == 1:
			// A count of 1 here means the doubled node, if any, is another one.
			return !v.Doubled()
		default:
			return true
		}
	default:
		return true
	}
}

// All returns the policies in reporting order: SingleVisit, then OneDoubleVisit.
func All() []Policy {
	return []Policy{SingleVisit{}, OneDoubleVisit{}}
}

// Lookup resolves a policy by name. Accepted names, case-insensitive:
// "single" or "a" for SingleVisit, "double" or "b" for OneDoubleVisit.
func Lookup(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single", "a":
		return SingleVisit{}, nil
	case "double", "b":
		return OneDoubleVisit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

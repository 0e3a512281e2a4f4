package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *cave.Graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrPolicyNil is returned when a nil revisit.Policy is passed.
	ErrPolicyNil = errors.New("paths: policy is nil")

	// ErrUnknownStrategy is returned for a Strategy value or name that does not exist.
	ErrUnknownStrategy = errors.New("paths: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// Backtrack is recursive depth-first search with a shared histogram.
	Backtrack Strategy = iota
	// Frontier is round-based expansion of independent path states.
	Frontier
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Backtrack:
		return "backtrack"
	case Frontier:
		return "frontier"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy resolves "backtrack" or "frontier" (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "backtrack", "dfs":
		return Backtrack, nil
	case "frontier", "rounds":
		return Frontier, nil
	default:
		return Backtrack, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Enumerate and Count.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Strategy selects the algorithm; defaults to Backtrack.
	Strategy Strategy

	// Collect keeps every route in Result.Paths.
	Collect bool

	// OnPath, if non-nil, is called once per route with a fresh label slice.
	// Returning an error aborts the search with that error.
	OnPath func(path []string) error

	// MaxPaths, if > 0, stops the search after that many routes.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - Backtrack strategy
//   - no collection, no hook
//   - no route limit
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Backtrack,
	}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Backtrack, Frontier:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
		}
	}
}

// WithCollect keeps every route as a slice of labels in Result.Paths.
func WithCollect() Option {
	return func(o *Options) { o.Collect = true }
}

// WithOnPath installs a per-route callback.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *Options) { o.OnPath = fn }
}

// WithMaxPaths stops the search after n routes.
//
//	n > 0: limit to n routes
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// Result is the outcome of one enumeration run.
type Result struct {
	// Policy is the Name() of the policy used.
	Policy string

	// Strategy is the algorithm used.
	Strategy Strategy

	// Count is the number of routes found.
	Count int

	// Paths holds every route as labels, start first and end last.
	// Filled only with WithCollect.
	Paths [][]string

	// Truncated reports that MaxPaths stopped the search early.
	Truncated bool
}

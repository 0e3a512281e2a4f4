package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/revisit"
)

// errLimitReached unwinds a search once MaxPaths routes were reported.
var errLimitReached = errors.New("paths: route limit reached")

// Enumerate finds every route from start to end in g allowed by p.
// If start or end is missing, the Result has Count 0 and err is nil.
func Enumerate(g *cave.Graph, p revisit.Policy, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if p == nil {
		return nil, ErrPolicyNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Policy: p.Name(), Strategy: o.Strategy}

	// 3. Missing endpoints mean no routes
	start, okStart := g.Start()
	end, okEnd := g.End()
	if !okStart || !okEnd {
		return res, nil
	}

	// 4. Search
	s := &sink{graph: g, opts: o, res: res}
	var err error
	switch o.Strategy {
	case Backtrack:
		err = newBacktracker(g, p, o, s, end).run(start)
	case Frontier:
		err = newFrontier(g, p, o, s, end).run(start)
	}
	if errors.Is(err, errLimitReached) {
		res.Truncated = true
		err = nil
	}

	return res, err
}

// Count returns only the number of routes from start to end in g allowed by p.
func Count(g *cave.Graph, p revisit.Policy, opts ...Option) (int, error) {
	res, err := Enumerate(g, p, opts...)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// sink receives completed routes from a walker.
type sink struct {
	graph *cave.Graph
	opts  Options
	res   *Result
}

// wantsTrail reports whether walkers must record the node sequence of each route.
func (s *sink) wantsTrail() bool { return s.opts.Collect || s.opts.OnPath != nil }

// emit records one completed route. trail may be nil when wantsTrail is false.
func (s *sink) emit(trail []cave.ID) error {
	s.res.Count++

	if s.wantsTrail() {
		labels := make([]string, len(trail))
		for i, id := range trail {
			labels[i] = s.graph.Label(id)
		}
		if s.opts.OnPath != nil {
			if err := s.opts.OnPath(labels); err != nil {
				return fmt.Errorf("paths: OnPath hook: %w", err)
			}
		}
		if s.opts.Collect {
			s.res.Paths = append(s.res.Paths, labels)
		}
	}

	if s.opts.MaxPaths > 0 && s.res.Count >= s.opts.MaxPaths {
		return errLimitReached
	}

	return nil
}

package paths

import (
	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/revisit"
)

// pathState is one active route in the frontier. It owns its histogram.
type pathState struct {
	pos   cave.ID
	hist  *revisit.Histogram
	trail []cave.ID
}

// fork returns an independent copy of s.
func (s pathState) fork() pathState {
	f := pathState{pos: s.pos, hist: s.hist.Clone()}
	if s.trail != nil {
		f.trail = append(make([]cave.ID, 0, len(s.trail)+1), s.trail...)
	}

	return f
}

// frontier encapsulates state during a round-based enumeration.
type frontier struct {
	graph  *cave.Graph
	policy revisit.Policy
	opts   Options
	out    *sink
	end    cave.ID
	track  bool

	active []pathState
	legal  []cave.ID // scratch buffer reused across states
}

func newFrontier(g *cave.Graph, p revisit.Policy, o Options, s *sink, end cave.ID) *frontier {
	return &frontier{
		graph:  g,
		policy: p,
		opts:   o,
		out:    s,
		end:    end,
		track:  s.wantsTrail(),
	}
}

// run seeds the frontier at start and expands it round by round until no
// state extends.
func (w *frontier) run(start cave.ID) error {
	seed := pathState{pos: start, hist: revisit.NewHistogram(w.graph.Len())}
	seed.hist.Visit(start, cave.Start)
	if w.track {
		seed.trail = []cave.ID{start}
	}
	w.active = []pathState{seed}

	for len(w.active) > 0 {
		// cancellation check (once per round)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if err := w.round(); err != nil {
			return err
		}
	}

	return nil
}

// round extends every active state by one edge. Terminal states are reported
// and leave the frontier; states with no legal extension are dropped.
func (w *frontier) round() error {
	next := make([]pathState, 0, len(w.active))

	for _, s := range w.active {
		// Decide all continuations against the unmodified histogram first.
		w.legal = w.legal[:0]
		for _, nid := range w.graph.Neighbors(s.pos) {
			if w.policy.Allowed(s.hist, nid, w.graph.Kind(nid)) {
				w.legal = append(w.legal, nid)
			}
		}
		if len(w.legal) == 0 {
			continue // dead end: discarded
		}

		// Every continuation after the first forks off the untouched state.
		for _, nid := range w.legal[1:] {
			f := s.fork()
			if err := w.advance(&f, nid, &next); err != nil {
				return err
			}
		}
		// The first continuation extends the state in place.
		if err := w.advance(&s, w.legal[0], &next); err != nil {
			return err
		}
	}

	w.active = next

	return nil
}

// advance moves s into nid, then either reports it (at end) or keeps it active.
func (w *frontier) advance(s *pathState, nid cave.ID, next *[]pathState) error {
	s.pos = nid
	s.hist.Visit(nid, w.graph.Kind(nid))
	if w.track {
		s.trail = append(s.trail, nid)
	}

	if nid == w.end {
		return w.out.emit(s.trail)
	}
	*next = append(*next, *s)

	return nil
}

package paths

import (
	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/revisit"
)

// backtracker encapsulates state during a depth-first enumeration.
type backtracker struct {
	graph  *cave.Graph
	policy revisit.Policy
	opts   Options
	out    *sink
	end    cave.ID

	hist  *revisit.Histogram // shared by every frame, restored on return
	trail []cave.ID          // current route, only when out.wantsTrail()
	track bool
}

func newBacktracker(g *cave.Graph, p revisit.Policy, o Options, s *sink, end cave.ID) *backtracker {
	return &backtracker{
		graph:  g,
		policy: p,
		opts:   o,
		out:    s,
		end:    end,
		hist:   revisit.NewHistogram(g.Len()),
		track:  s.wantsTrail(),
	}
}

// run enters start and explores every route leaving it.
func (w *backtracker) run(start cave.ID) error {
	w.hist.Visit(start, cave.Start)
	if w.track {
		w.trail = make([]cave.ID, 0, w.graph.Len())
		w.trail = append(w.trail, start)
	}

	return w.walk(start)
}

// walk explores every legal continuation from id, which is already entered.
func (w *backtracker) walk(id cave.ID) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Terminal: report and stop extending
	if id == w.end {
		return w.out.emit(w.trail)
	}

	// 3. Branch on every neighbor the policy admits
	var kind cave.Kind
	for _, nid := range w.graph.Neighbors(id) {
		kind = w.graph.Kind(nid)
		if !w.policy.Allowed(w.hist, nid, kind) {
			continue
		}

		w.hist.Visit(nid, kind)
		if w.track {
			w.trail = append(w.trail, nid)
		}

		err := w.walk(nid)

		// restore before returning so the histogram stays balanced on error too
		w.hist.Leave(nid, kind)
		if w.track {
			w.trail = w.trail[:len(w.trail)-1]
		}
		if err != nil {
			return err
		}
	}

	return nil
}

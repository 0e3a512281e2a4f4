// Package survey runs the path enumerator once per revisit policy over one
// shared, read-only cave.Graph and gathers the counts into a Report.
//
// Policies may run sequentially (default) or concurrently. Concurrent runs share
// nothing but the Graph, so they need no synchronization beyond errgroup.
package survey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/paths"
	"github.com/katalvlaran/cavepath/revisit"
)

// ErrNoPolicies is returned when Run is configured with an empty policy list.
var ErrNoPolicies = errors.New("survey: no policies")

// Option configures Run.
type Option func(*options)

type options struct {
	policies []revisit.Policy
	strategy paths.Strategy
	parallel bool
	collect  bool
	logger   *slog.Logger
}

// WithPolicies replaces the default policy list (SingleVisit, OneDoubleVisit).
func WithPolicies(ps ...revisit.Policy) Option {
	return func(o *options) { o.policies = ps }
}

// WithStrategy selects the enumeration algorithm for every policy.
func WithStrategy(s paths.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithParallel runs the policies on separate goroutines.
func WithParallel(on bool) Option {
	return func(o *options) { o.parallel = on }
}

// WithCollect keeps every route in the report entries.
func WithCollect() Option {
	return func(o *options) { o.collect = true }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Entry is the outcome for one policy.
type Entry struct {
	Policy    string
	Count     int
	Paths     [][]string
	Truncated bool
	Elapsed   time.Duration
}

// Report holds one Entry per policy, in policy order.
type Report struct {
	Graph   cave.Stats
	Entries []Entry
}

// Counts returns the route count of every entry, in policy order.
func (r *Report) Counts() []int {
	out := make([]int, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Count
	}

	return out
}

// Run enumerates routes in g once per configured policy.
// The first failing policy cancels the others and its error is returned.
func Run(ctx context.Context, g *cave.Graph, opts ...Option) (*Report, error) {
	o := options{
		policies: revisit.All(),
		strategy: paths.Backtrack,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.policies) == 0 {
		return nil, ErrNoPolicies
	}
	if g == nil {
		return nil, paths.ErrGraphNil
	}
	for i, p := range o.policies {
		i, p := i, p
		if p == nil {
			return nil, fmt.Errorf("survey: policy %d: %w", i, paths.ErrPolicyNil)
		}
	}

	stats := g.Stats()
	o.logger.Debug("cave graph ready",
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
		slog.Int("limited", stats.Limited),
		slog.Int("unlimited", stats.Unlimited),
		slog.Bool("has_start", stats.HasStart),
		slog.Bool("has_end", stats.HasEnd),
	)
	if !stats.HasStart || !stats.HasEnd {
		o.logger.Warn("start or end cave missing, no routes possible")
	}

	report := &Report{Graph: stats, Entries: make([]Entry, len(o.policies))}

	eg, egCtx := errgroup.WithContext(ctx)
	if !o.parallel {
		eg.SetLimit(1)
	}
	for i, p := range o.policies {
		i, p := i, p
		eg.Go(func() error {
			entry, err := runOne(egCtx, g, p, o)
			if err != nil {
				return fmt.Errorf("survey: policy %s: %w", p.Name(), err)
			}
			report.Entries[i] = entry

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// runOne enumerates routes for a single policy and logs the outcome.
func runOne(ctx context.Context, g *cave.Graph, p revisit.Policy, o options) (Entry, error) {
	popts := []paths.Option{paths.WithContext(ctx), paths.WithStrategy(o.strategy)}
	if o.collect {
		popts = append(popts, paths.WithCollect())
	}

	began := time.Now()
	res, err := paths.Enumerate(g, p, popts...)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{
		Policy:    res.Policy,
		Count:     res.Count,
		Paths:     res.Paths,
		Truncated: res.Truncated,
		Elapsed:   time.Since(began),
	}

	o.logger.Info("routes enumerated",
		slog.String("policy", entry.Policy),
		slog.String("strategy", res.Strategy.String()),
		slog.Int("count", entry.Count),
		slog.Duration("elapsed", entry.Elapsed),
	)

	return entry, nil
}

// Package paths enumerates every route from start to end through a cave.Graph
// under a revisit.Policy.
//
// What:
//
//   - Backtrack (default): recursive depth-first search. One Histogram is
//     shared down the call stack, incremented when a node is entered and
//     decremented when the search leaves it, so no per-branch state is copied.
//   - Frontier: round-based expansion. Every active path state tries all of its
//     neighbors each round; the first legal extension continues the state and
//     every further one forks a new state. States that cannot extend and are
//     not at end are dropped. Rounds stop once nothing extends. Each state owns
//     its histogram, so this strategy trades memory for a flat, non-recursive loop.
//
// Both strategies produce the same set of routes; only the order in which
// routes are reported differs. Neighbor order never changes the result set.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked on every node entered (or round)
//   - WithStrategy(s)      Backtrack or Frontier
//   - WithCollect()        keep every route as a label slice in Result.Paths
//   - WithOnPath(fn)       callback per route; an error aborts the search
//   - WithMaxPaths(n)      stop after n routes and mark Result.Truncated
//
// Missing endpoints:
//
//   - A graph without "start" or "end" has no routes. Enumerate returns a
//     zero Result and a nil error.
//
// Errors:
//
//   - ErrGraphNil, ErrPolicyNil, ErrUnknownStrategy, ErrOptionViolation
//   - ctx.Err() when the context is done
//   - any error returned by the OnPath hook, wrapped
//
// Complexity:
//
//   - Time O(P·L) for P routes of average length L, times the branching of
//     rejected candidates. Memory O(L) for Backtrack, O(F·V) for Frontier
//     with F the largest frontier.
package paths

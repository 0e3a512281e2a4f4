// Package revisit defines the rules that decide whether a route may step
// into a node, given how often the route has already visited it.
//
// What:
//
//   - Histogram: dense per-node visit counts for the current route, restricted
//     to Start and Limited nodes, plus a flag for "some Limited node was
//     visited twice".
//   - Policy: a stateless predicate over a read-only Visits view.
//   - SingleVisit: every Limited node at most once.
//   - OneDoubleVisit: one Limited node may be visited twice, the rest once.
//
// Both policies forbid re-entering Start. Unlimited nodes are always allowed;
// End is allowed because a route stops there.
//
// Policies only read the histogram; the path enumerator owns and mutates it.
package revisit

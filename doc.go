// Package cavepath counts and lists every route through a cave system.
//
// A cave system is an undirected graph of labeled caves. Routes run from
// "start" to "end"; big caves (upper-case labels) may be revisited freely,
// small caves (lower-case labels) only as a revisit policy allows.
//
// Under the hood the module is organized into small packages:
//
//	cave/     — edge parsing, label interning, cave classification, immutable Graph
//	revisit/  — visit histogram and the SingleVisit / OneDoubleVisit policies
//	paths/    — route enumeration: backtracking DFS or round-based frontier
//	survey/   — runs every policy over one graph, optionally in parallel
//	lines/    — line stream input
//	config/   — YAML run configuration
//	cmd/cavepath — command-line front end
//
// Quick ASCII example:
//
//	    start
//	    /   \
//	c--A-----b--d
//	    \   /
//	     end
//
// has 10 routes visiting each small cave at most once, and 36 when one small
// cave may be visited twice.
//
//	go install github.com/katalvlaran/cavepath/cmd/cavepath@latest
package cavepath

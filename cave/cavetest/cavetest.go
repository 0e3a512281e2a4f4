// Package cavetest provides the reference cave systems used across tests,
// examples and benchmarks.
package cavetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepath/cave"
)

// Small is the 7-edge example: 10 routes single-visit, 36 with one double visit.
var Small = []string{
	"start-A",
	"start-b",
	"A-c",
	"A-b",
	"b-d",
	"A-end",
	"b-end",
}

// Medium is the 10-edge example: 19 routes single-visit, 103 with one double visit.
var Medium = []string{
	"dc-end",
	"HN-start",
	"start-kj",
	"dc-start",
	"dc-HN",
	"LN-dc",
	"HN-end",
	"kj-sa",
	"kj-HN",
	"kj-dc",
}

// Large is the 18-edge example: 226 routes single-visit, 3509 with one double visit.
var Large = []string{
	"fs-end",
	"he-DX",
	"fs-he",
	"start-DX",
	"pj-DX",
	"end-zg",
	"zg-sl",
	"zg-pj",
	"pj-he",
	"RW-he",
	"fs-DX",
	"pj-RW",
	"zg-RW",
	"start-pj",
	"he-WI",
	"zg-he",
	"pj-fs",
	"start-RW",
}

// Expected route counts per fixture, single-visit then one double visit.
var (
	SmallCounts  = [2]int{10, 36}
	MediumCounts = [2]int{19, 103}
	LargeCounts  = [2]int{226, 3509}
)

// MustParse builds a Graph from edge lines and fails the test on error.
func MustParse(tb testing.TB, lines []string, opts ...cave.Option) *cave.Graph {
	tb.Helper()
	g, err := cave.Parse(lines, opts...)
	require.NoError(tb, err)

	return g
}

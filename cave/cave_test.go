package cave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/cave/cavetest"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		label string
		want  cave.Kind
	}{
		{"start", cave.Start},
		{"end", cave.End},
		{"b", cave.Limited},
		{"dc", cave.Limited},
		{"A", cave.Unlimited},
		{"HN", cave.Unlimited},
		{"Start", cave.Unlimited}, // only the exact sentinel is Start
		{"END", cave.Unlimited},
		{"aB", cave.Unlimited}, // mixed case is not all lower-case
		{"a1", cave.Unlimited}, // digits are not lower-case letters
		{"42", cave.Unlimited},
		{"", cave.Unlimited},
		{"ñu", cave.Limited},
		{"aª", cave.Limited}, // Other_Lowercase counts as lower-case
		{"aʰ", cave.Limited},
		{"ⅰ", cave.Limited},
		{"Ⅰ", cave.Unlimited},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, cave.Classify(tc.label))
		})
	}
}

func TestKind_StringAndBounded(t *testing.T) {
	assert.Equal(t, "limited", cave.Limited.String())
	assert.Equal(t, "unlimited", cave.Unlimited.String())
	assert.Equal(t, "start", cave.Start.String())
	assert.Equal(t, "end", cave.End.String())
	assert.Equal(t, "unknown", cave.Kind(99).String())

	assert.True(t, cave.Limited.Bounded())
	assert.True(t, cave.Start.Bounded())
	assert.False(t, cave.Unlimited.Bounded())
}

func TestParseEdge(t *testing.T) {
	e, err := cave.ParseEdge("start-A")
	require.NoError(t, err)
	assert.Equal(t, cave.Edge{From: "start", To: "A"}, e)

	for _, bad := range []string{"", "start", "a-b-c", "-b", "a-", "-"} {
		t.Run(bad, func(t *testing.T) {
			_, err := cave.ParseEdge(bad)
			assert.ErrorIs(t, err, cave.ErrMalformedEdge)
		})
	}
}

func TestParse_MalformedLineAborts(t *testing.T) {
	g, err := cave.Parse([]string{"start-A", "A_end"})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, cave.ErrMalformedEdge)
	assert.Contains(t, err.Error(), "line 2")
}

func TestBuilder_EmptyLabel(t *testing.T) {
	b := cave.NewBuilder()
	assert.ErrorIs(t, b.AddEdge("", "a"), cave.ErrEmptyLabel)
	assert.ErrorIs(t, b.AddEdge("a", ""), cave.ErrEmptyLabel)
}

func TestGraph_Symmetric(t *testing.T) {
	g := cavetest.MustParse(t, cavetest.Medium)

	for u := cave.ID(0); int(u) < g.Len(); u++ {
		for _, v := range g.Neighbors(u) {
			assert.Contains(t, g.Neighbors(v), u, "%s-%s must be mirrored", g.Label(u), g.Label(v))
		}
	}
}

func TestGraph_DuplicateEdgesAreIdempotent(t *testing.T) {
	once := cavetest.MustParse(t, []string{"start-A", "A-end"})
	twice := cavetest.MustParse(t, []string{"start-A", "A-start", "start-A", "A-end", "end-A"})

	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
	a, ok := twice.ID("A")
	require.True(t, ok)
	assert.Len(t, twice.Neighbors(a), 2)
}

func TestGraph_InterningAndKinds(t *testing.T) {
	g := cavetest.MustParse(t, cavetest.Small)

	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, []string{"A", "b", "c", "d", "end", "start"}, g.Labels())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, cave.ID(0), start, "first label seen gets the first ID")
	assert.Equal(t, cave.Start, g.Kind(start))

	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, cave.End, g.Kind(end))
	assert.Equal(t, "end", g.Label(end))

	a, _ := g.ID("A")
	assert.Equal(t, cave.Unlimited, g.Kind(a))
	assert.Equal(t, []string{"start", "c", "b", "end"}, labelsOf(g, g.Neighbors(a)), "insertion order")

	_, ok = g.ID("zz")
	assert.False(t, ok)
}

func TestGraph_MissingEndpoints(t *testing.T) {
	g := cavetest.MustParse(t, []string{"start-A", "A-b"})
	_, ok := g.End()
	assert.False(t, ok)

	empty := cavetest.MustParse(t, nil)
	assert.Equal(t, 0, empty.Len())
	_, ok = empty.Start()
	assert.False(t, ok)
}

func TestGraph_Stats(t *testing.T) {
	g := cavetest.MustParse(t, cavetest.Medium)
	assert.Equal(t, cave.Stats{
		Nodes:     7,
		Edges:     10,
		Limited:   3, // dc, kj, sa
		Unlimited: 2, // HN, LN
		HasStart:  true,
		HasEnd:    true,
	}, g.Stats())
}

func TestBuild_UnboundedCycle(t *testing.T) {
	_, err := cave.Parse([]string{"start-A", "A-B", "B-end"})
	assert.ErrorIs(t, err, cave.ErrUnboundedCycle)

	_, err = cave.Parse([]string{"start-A", "A-A", "A-end"})
	assert.ErrorIs(t, err, cave.ErrUnboundedCycle, "unlimited self-loop")

	g, err := cave.Parse([]string{"start-A", "A-B", "B-end"}, cave.WithoutCycleCheck())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestBuild_LimitedSelfLoopKept(t *testing.T) {
	g := cavetest.MustParse(t, []string{"start-a", "a-a", "a-end"})
	a, _ := g.ID("a")
	assert.Equal(t, []string{"start", "a", "end"}, labelsOf(g, g.Neighbors(a)))
}

func TestBuild_GraphIndependentOfBuilder(t *testing.T) {
	b := cave.NewBuilder(cave.WithCapacity(4))
	require.NoError(t, b.AddLine("start-end"))
	g, err := b.Build()
	require.NoError(t, err)

	require.NoError(t, b.AddLine("start-x"))
	start, _ := g.Start()
	assert.Len(t, g.Neighbors(start), 1, "later builder edges must not leak into a built graph")
	assert.Equal(t, 2, g.Len())
}

func TestBuild_Edges(t *testing.T) {
	g, err := cave.Build([]cave.Edge{{From: "start", To: "end"}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = cave.Build([]cave.Edge{{From: "start", To: ""}})
	assert.ErrorIs(t, err, cave.ErrEmptyLabel)
}

func labelsOf(g *cave.Graph, ids []cave.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Label(id)
	}

	return out
}

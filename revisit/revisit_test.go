package revisit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepath/cave"
	"github.com/katalvlaran/cavepath/revisit"
)

// Node IDs used across policy tests; kinds are passed explicitly.
const (
	idStart cave.ID = iota
	idEnd
	idA // unlimited
	idB // limited
	idC // limited
	nodes
)

func TestHistogram_VisitLeave(t *testing.T) {
	h := revisit.NewHistogram(int(nodes))
	h.Visit(idStart, cave.Start)
	h.Visit(idA, cave.Unlimited)
	h.Visit(idEnd, cave.End)
	h.Visit(idB, cave.Limited)

	assert.Equal(t, 1, h.Count(idStart))
	assert.Equal(t, 0, h.Count(idA), "unlimited nodes are not counted")
	assert.Equal(t, 0, h.Count(idEnd), "end is not counted")
	assert.Equal(t, 1, h.Count(idB))
	assert.False(t, h.Doubled())

	h.Visit(idB, cave.Limited)
	assert.Equal(t, 2, h.Count(idB))
	assert.True(t, h.Doubled())

	h.Leave(idB, cave.Limited)
	assert.Equal(t, 1, h.Count(idB))
	assert.False(t, h.Doubled())

	h.Leave(idA, cave.Unlimited)
	assert.Equal(t, 0, h.Count(idA))
}

func TestHistogram_Clone(t *testing.T) {
	h := revisit.NewHistogram(int(nodes))
	h.Visit(idB, cave.Limited)

	c := h.Clone()
	c.Visit(idB, cave.Limited)

	assert.Equal(t, 1, h.Count(idB))
	assert.False(t, h.Doubled())
	assert.Equal(t, 2, c.Count(idB))
	assert.True(t, c.Doubled())
}

// histogram builds a Histogram with start entered once plus the given limited counts.
func histogram(limited map[cave.ID]int) *revisit.Histogram {
	h := revisit.NewHistogram(int(nodes))
	h.Visit(idStart, cave.Start)
	for id, n := range limited {
		for i := 0; i < n; i++ {
			h.Visit(id, cave.Limited)
		}
	}

	return h
}

func TestSingleVisit(t *testing.T) {
	p := revisit.SingleVisit{}
	assert.Equal(t, "single", p.Name())

	fresh := histogram(nil)
	assert.False(t, p.Allowed(fresh, idStart, cave.Start), "start is never re-entered")
	assert.True(t, p.Allowed(fresh, idEnd, cave.End))
	assert.True(t, p.Allowed(fresh, idA, cave.Unlimited))
	assert.True(t, p.Allowed(fresh, idB, cave.Limited))

	seenB := histogram(map[cave.ID]int{idB: 1})
	assert.False(t, p.Allowed(seenB, idB, cave.Limited))
	assert.True(t, p.Allowed(seenB, idC, cave.Limited))
	assert.True(t, p.Allowed(seenB, idA, cave.Unlimited))
}

func TestOneDoubleVisit(t *testing.T) {
	p := revisit.OneDoubleVisit{}
	assert.Equal(t, "double", p.Name())

	cases := []struct {
		name string
		hist map[cave.ID]int
		id   cave.ID
		kind cave.Kind
		want bool
	}{
		{"start never", nil, idStart, cave.Start, false},
		{"end always", map[cave.ID]int{idB: 2}, idEnd, cave.End, true},
		{"unlimited always", map[cave.ID]int{idB: 2}, idA, cave.Unlimited, true},
		{"first visit", nil, idB, cave.Limited, true},
		{"second visit, nothing doubled", map[cave.ID]int{idB: 1}, idB, cave.Limited, true},
		{"second visit, other doubled", map[cave.ID]int{idB: 1, idC: 2}, idB, cave.Limited, false},
		{"first visit, other doubled", map[cave.ID]int{idC: 2}, idB, cave.Limited, true},
		{"third visit", map[cave.ID]int{idB: 2}, idB, cave.Limited, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allowed(histogram(tc.hist), tc.id, tc.kind))
		})
	}
}

// readOnly is a Visits view with no mutators at all.
type readOnly struct {
	counts  map[cave.ID]int
	doubled bool
}

func (r readOnly) Count(id cave.ID) int { return r.counts[id] }
func (r readOnly) Doubled() bool        { return r.doubled }

func TestPolicies_AcceptAnyVisitsView(t *testing.T) {
	v := readOnly{counts: map[cave.ID]int{idB: 1}, doubled: false}
	for _, p := range revisit.All() {
		assert.False(t, p.Allowed(v, idStart, cave.Start), p.Name())
	}
	assert.False(t, revisit.SingleVisit{}.Allowed(v, idB, cave.Limited))
	assert.True(t, revisit.OneDoubleVisit{}.Allowed(v, idB, cave.Limited))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"single", "A", " Single "} {
		p, err := revisit.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "single", p.Name())
	}
	for _, name := range []string{"double", "b", "DOUBLE"} {
		p, err := revisit.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "double", p.Name())
	}

	_, err := revisit.Lookup("triple")
	assert.ErrorIs(t, err, revisit.ErrUnknownPolicy)
}

func TestAll_Order(t *testing.T) {
	ps := revisit.All()
	require.Len(t, ps, 2)
	assert.Equal(t, "single", ps[0].Name())
	assert.Equal(t, "double", ps[1].Name())
}

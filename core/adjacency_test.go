// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monkeypath/core"
)

// firstSwing is the four-node, five-edge graph of the opening level.
func firstSwing() []core.Edge {
	return []core.Edge{
		{From: "A", To: "B", Cost: 7, Time: 3},
		{From: "A", To: "C", Cost: 2, Time: 4},
		{From: "B", To: "D", Cost: 3, Time: 2},
		{From: "C", To: "B", Cost: 1, Time: 2},
		{From: "C", To: "D", Cost: 6, Time: 3},
	}
}

func TestBuildAdjacency_PreservesOrder(t *testing.T) {
	adj := core.BuildAdjacency(firstSwing())

	require.Len(t, adj, 3, "D has no outgoing edges and gets no bucket")
	assert.Equal(t, []core.Arc{{To: "B", Cost: 7, Time: 3}, {To: "C", Cost: 2, Time: 4}}, adj["A"])
	assert.Equal(t, []core.Arc{{To: "D", Cost: 3, Time: 2}}, adj["B"])
	assert.Equal(t, []core.Arc{{To: "B", Cost: 1, Time: 2}, {To: "D", Cost: 6, Time: 3}}, adj["C"])
	_, ok := adj["D"]
	assert.False(t, ok)
}

func TestBuildAdjacency_Empty(t *testing.T) {
	adj := core.BuildAdjacency(nil)
	assert.NotNil(t, adj)
	assert.Empty(t, adj)
}

func TestFindEdge(t *testing.T) {
	edges := firstSwing()

	e, ok := core.FindEdge(edges, "C", "B")
	require.True(t, ok)
	assert.Equal(t, int64(1), e.Cost)
	assert.Equal(t, int64(2), e.Time)

	_, ok = core.FindEdge(edges, "B", "C")
	assert.False(t, ok, "edges are directed")

	_, ok = core.FindEdge(edges, "A", "Z")
	assert.False(t, ok)
}

func TestFindEdge_FirstMatchWins(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B", Cost: 5, Time: 1},
		{From: "A", To: "B", Cost: 1, Time: 9},
	}
	e, ok := core.FindEdge(edges, "A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(5), e.Cost)
}

func TestNeighbors(t *testing.T) {
	edges := firstSwing()
	assert.Equal(t, []string{"B", "C"}, core.Neighbors(edges, "A"))
	assert.Equal(t, []string{"B", "D"}, core.Neighbors(edges, "C"))
	assert.Empty(t, core.Neighbors(edges, "D"))
	assert.NotNil(t, core.Neighbors(edges, "nowhere"))

	parallel := append(edges, core.Edge{From: "A", To: "B", Cost: 1, Time: 1})
	assert.Equal(t, []string{"B", "C", "B"}, core.Neighbors(parallel, "A"))
}

// Every edge must be visible through both lookup helpers.
func TestLookupsAgreeWithGraph(t *testing.T) {
	edges := firstSwing()
	for _, e := range edges {
		assert.Contains(t, core.Neighbors(edges, e.From), e.To)
		got, ok := core.FindEdge(edges, e.From, e.To)
		require.True(t, ok, e.String())
		assert.Equal(t, e.Cost, got.Cost)
		assert.Equal(t, e.Time, got.Time)
	}
}

func TestNodes_FirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D"}, core.Nodes(firstSwing()))
	assert.Empty(t, core.Nodes(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, core.Validate(firstSwing()))
	require.NoError(t, core.Validate(nil))

	err := core.Validate([]core.Edge{{From: "A", To: "", Cost: 1, Time: 1}})
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)

	err = core.Validate([]core.Edge{{From: "A", To: "B", Cost: 1, Time: -1}})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
}

func TestEdgeString(t *testing.T) {
	e := core.Edge{From: "A", To: "B", Cost: 7, Time: 3}
	assert.Equal(t, "A→B (cost 7, time 3)", e.String())
}

package dfs_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divgame/builder"
	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/dfs"
)

// sortedCopy returns the cycle's vertices sorted, for order-free comparison.
func sortedCopy(c []int) []int {
	out := append([]int(nil), c...)
	sort.Ints(out)
	return out
}

// TestCycleBasis_NilGraph verifies the nil guard.
func TestCycleBasis_NilGraph(t *testing.T) {
	_, err := dfs.CycleBasis(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestCycleBasis_Triangle finds the single 3-cycle.
func TestCycleBasis_Triangle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []int{0, 1, 2}, sortedCopy(cycles[0]))

	tri, err := dfs.Triangles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, tri)
}

// TestCycleBasis_Tree has no cycles.
func TestCycleBasis_Tree(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(6))
	require.NoError(t, err)

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	tri, err := dfs.Triangles(g)
	require.NoError(t, err)
	assert.Empty(t, tri)
}

// TestCycleBasis_Dimension checks |basis| = E - V + C on several graphs and
// that every basis cycle is a closed walk in g.
func TestCycleBasis_Dimension(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"K4", builder.Complete(4)},
		{"K6", builder.Complete(6)},
		{"C7", builder.Cycle(7)},
		{"random", builder.RandomConnected(15, 0.3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, tc.ctor)
			require.NoError(t, err)

			cycles, err := dfs.CycleBasis(g)
			require.NoError(t, err)
			comps, err := dfs.Components(g)
			require.NoError(t, err)
			assert.Len(t, cycles, g.EdgeCount()-g.VertexCount()+len(comps))

			for _, c := range cycles {
				require.GreaterOrEqual(t, len(c), 3)
				for i := range c {
					u, v := c[i], c[(i+1)%len(c)]
					assert.Truef(t, g.HasEdge(u, v), "cycle %v uses missing edge %d-%d", c, u, v)
				}
			}
		})
	}
}

// TestTriangles_TriangleWithTail finds the one 3-cycle next to a 4-cycle.
func TestTriangles_TriangleWithTail(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 1}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	require.Len(t, cycles, 2)

	tri, err := dfs.Triangles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, tri)
}

// TestTriangles_OutsideBasis finds a triangle that no fundamental cycle of
// the depth-first basis is.
func TestTriangles_OutsideBasis(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 5}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	require.Len(t, cycles, 3)
	for _, c := range cycles {
		assert.NotEqual(t, 3, len(c), "basis cycle %v", c)
	}

	tri, err := dfs.Triangles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3, 4}}, tri)
}

// TestTriangles_Complete counts C(n,3) triangles in K_n.
func TestTriangles_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(6))
	require.NoError(t, err)

	tri, err := dfs.Triangles(g)
	require.NoError(t, err)
	require.Len(t, tri, 20)
	assert.Equal(t, []int{0, 1, 2}, tri[0])
	assert.Equal(t, []int{3, 4, 5}, tri[19])

	_, err = dfs.Triangles(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestComponents splits a forest into its trees.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(4, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddVertex(7))

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {3, 4}, {7}}, comps)

	ok, err := dfs.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.IsConnected(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, ok)
}

package edgelist_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divgame/builder"
	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/edgelist"
)

// TestRead_Valid parses mixed whitespace and blank lines.
func TestRead_Valid(t *testing.T) {
	in := "0 1\n1\t2\n\n  3   0  \n"
	g, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

// TestRead_FormatErrors covers every malformed-line class.
func TestRead_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantLine int
	}{
		{"one field", "0 1\n2\n", 2},
		{"three fields", "0 1 2\n", 1},
		{"not an int", "0 x\n", 1},
		{"float", "0 1.5\n", 1},
		{"negative", "0 -1\n", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, edgelist.ErrFormat)

			var fe *edgelist.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.wantLine, fe.Line)
		})
	}
}

// TestRead_Comments skips whole-line and trailing comments.
func TestRead_Comments(t *testing.T) {
	in := "# random_4_0\n0 1 # first\n   # indented\n1 2\n#2 3\n"
	g, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	_, err = edgelist.Read(strings.NewReader("0 1 2 # three fields\n"))
	assert.ErrorIs(t, err, edgelist.ErrFormat)
}

// TestRead_SimpleGraph collapses repeated edges and drops self-loops, keeping
// their vertex.
func TestRead_SimpleGraph(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("0 1\n1 2\n1 0\n0 1\n2 2\n5 5\n"))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 5}, g.Vertices())
	want := []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

// TestRoundTrip writes a random graph and reads it back.
func TestRoundTrip(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomConnected(12, 0.25))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, edgelist.Write(&buf, g))

		back, err := edgelist.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.Vertices(), back.Vertices())
		assert.Equal(t, g.Edges(), back.Edges())
	}
}

// TestFileRoundTrip uses the filesystem helpers and checks path context.
func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "random_5", "random_5_0.edgelist")

	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.NoError(t, edgelist.WriteFile(path, g))

	back, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	_, err = edgelist.ReadFile(filepath.Join(dir, "missing.edgelist"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, edgelist.ErrFormat)
}

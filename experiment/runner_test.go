package experiment_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/divgame/builder"
	"github.com/katalvlaran/divgame/core"
	"github.com/katalvlaran/divgame/edgelist"
	"github.com/katalvlaran/divgame/experiment"
	"github.com/katalvlaran/divgame/internal/config"
	"github.com/katalvlaran/divgame/internal/logging"
	"github.com/katalvlaran/divgame/results"
)

// memSink records rows in memory.
type memSink struct {
	mu   sync.Mutex
	rows []results.Row
	err  error
}

func (s *memSink) Write(_ context.Context, r results.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, r)
	return nil
}

func (s *memSink) Close() error { return nil }

// testConfig describes sizes 5-6 with three instances each under dir.
func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Graphs.Dir = dir
	cfg.Graphs.MinSize = 5
	cfg.Graphs.MaxSize = 6
	cfg.Graphs.Instances = 3
	cfg.Simulation.Variant = config.VariantHomogeneous
	cfg.Simulation.Trials = 4
	cfg.Simulation.MaxSteps = 100
	cfg.Output.CSV = dir + "/out.csv"
	return cfg
}

// generate writes random connected instances for every (n, k) of cfg.
func generate(t *testing.T, cfg *config.Config) {
	t.Helper()
	for n := cfg.Graphs.MinSize; n <= cfg.Graphs.MaxSize; n++ {
		for k := 0; k < cfg.Graphs.Instances; k++ {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(int64(100*n + k))},
				builder.RandomConnected(n, 0.4))
			require.NoError(t, err)
			require.NoError(t, edgelist.WriteFile(cfg.GraphPath(n, k), g))
		}
	}
}

func quietCtx() context.Context {
	return logging.WithLogger(context.Background(), logging.Discard())
}

// TestRunner_Grid writes one row per (size, instance) in order.
func TestRunner_Grid(t *testing.T) {
	cfg := testConfig(t.TempDir())
	generate(t, cfg)

	sink := &memSink{}
	require.NoError(t, experiment.NewRunner(cfg, sink).Run(quietCtx()))

	require.Len(t, sink.rows, 6)
	i := 0
	for n := 5; n <= 6; n++ {
		for k := 0; k < 3; k++ {
			row := sink.rows[i]
			i++
			assert.Equal(t, n, row.Size)
			assert.Equal(t, k, row.K)
			assert.False(t, row.Failed, row.Err)

			assert.GreaterOrEqual(t, row.AvgRate, 0.0)
			assert.LessOrEqual(t, row.AvgRate, 1.0)
			assert.Greater(t, row.AvgDensity, 0.0)
			assert.GreaterOrEqual(t, row.AvgShortestPath, 1.0)
			assert.InDelta(t, float64(n)*(1-row.AvgRate), row.AvgIncompNodes, 1e-9)
			assert.Zero(t, row.AvgNCompNodes)
			assert.LessOrEqual(t, row.AvgSteps, 100.0)
		}
	}
}

// TestRunner_WorkersDeterministic produces identical rows for any pool size.
func TestRunner_WorkersDeterministic(t *testing.T) {
	for _, variant := range []string{config.VariantHomogeneous, config.VariantHeterogeneous} {
		t.Run(variant, func(t *testing.T) {
			cfg := testConfig(t.TempDir())
			cfg.Simulation.Variant = variant
			generate(t, cfg)

			serial := &memSink{}
			require.NoError(t, experiment.NewRunner(cfg, serial).Run(quietCtx()))

			cfg.Workers = 3
			parallel := &memSink{}
			require.NoError(t, experiment.NewRunner(cfg, parallel).Run(quietCtx()))

			if diff := cmp.Diff(serial.rows, parallel.rows); diff != "" {
				t.Errorf("rows differ with workers (-serial +parallel):\n%s", diff)
			}
		})
	}
}

// TestRunner_Triangle summarizes a lone K3 instance exactly.
func TestRunner_Triangle(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Graphs.MinSize, cfg.Graphs.MaxSize, cfg.Graphs.Instances = 3, 3, 1
	cfg.Simulation.Variant = config.VariantHeterogeneous
	k3, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)
	require.NoError(t, edgelist.WriteFile(cfg.GraphPath(3, 0), k3))

	sink := &memSink{}
	require.NoError(t, experiment.NewRunner(cfg, sink).Run(quietCtx()))
	require.Len(t, sink.rows, 1)

	want := results.Row{
		Size: 3, K: 0,
		AvgRate: 1, AvgDensity: 1, AvgClustering: 1, AvgShortestPath: 1,
		AvgStdRate: 0, AvgMedianRate: 1, AvgIncompNodes: 0,
		AvgNCompNodes: 1, AvgSteps: 0,
	}
	if diff := cmp.Diff(want, sink.rows[0]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

// TestRunner_FailedInstances keeps going past bad files and logs each one.
func TestRunner_FailedInstances(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	generate(t, cfg)

	// malformed, missing and disconnected instances
	require.NoError(t, os.WriteFile(cfg.GraphPath(5, 1), []byte("0 1\n1 2 3\n"), 0o600))
	require.NoError(t, os.Remove(cfg.GraphPath(6, 0)))
	split := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}} {
		require.NoError(t, split.AddEdge(e[0], e[1]))
	}
	require.NoError(t, edgelist.WriteFile(cfg.GraphPath(6, 2), split))

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("info", &logs))
	sink := &memSink{}
	require.NoError(t, experiment.NewRunner(cfg, sink).Run(ctx))

	require.Len(t, sink.rows, 6)
	failed := map[[2]int]bool{}
	for _, row := range sink.rows {
		if row.Failed {
			failed[[2]int{row.Size, row.K}] = true
			zero := results.FailedRow(row.Size, row.K, nil)
			zero.Err = row.Err
			assert.Equal(t, zero, row)
			assert.NotEmpty(t, row.Err)
		}
	}
	assert.Equal(t, map[[2]int]bool{{5, 1}: true, {6, 0}: true, {6, 2}: true}, failed)

	out := logs.String()
	assert.Equal(t, 3, bytes.Count(logs.Bytes(), []byte(`msg="Sim failed"`)))
	assert.Contains(t, out, "level=WARN")  // format, disconnected
	assert.Contains(t, out, "level=ERROR") // missing file
	assert.Equal(t, 6, strings.Count(out, `msg="Instance done."`))
	assert.Contains(t, out, "n=6 k=2")
	assert.NotContains(t, out, "N: ")
}

// TestRunner_PanicBecomesFailedRow recovers a panicking loader.
func TestRunner_PanicBecomesFailedRow(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Graphs.MaxSize = 5
	cfg.Graphs.Instances = 2

	calls := 0
	loader := func(path string) (*core.Graph, error) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return builder.BuildGraph(nil, builder.Complete(5))
	}

	sink := &memSink{}
	require.NoError(t, experiment.NewRunner(cfg, sink, experiment.WithLoader(loader)).Run(quietCtx()))
	require.Len(t, sink.rows, 2)
	assert.True(t, sink.rows[0].Failed)
	assert.Contains(t, sink.rows[0].Err, "boom")
	assert.False(t, sink.rows[1].Failed)
	assert.Equal(t, 1.0, sink.rows[1].AvgRate)

	assert.Panics(t, func() { experiment.WithLoader(nil) })
}

// TestRunner_SinkError aborts on a failing sink.
func TestRunner_SinkError(t *testing.T) {
	cfg := testConfig(t.TempDir())
	generate(t, cfg)

	boom := errors.New("disk full")
	err := experiment.NewRunner(cfg, &memSink{err: boom}).Run(quietCtx())
	assert.ErrorIs(t, err, boom)
}

// TestRunner_Canceled stops before writing anything.
func TestRunner_Canceled(t *testing.T) {
	cfg := testConfig(t.TempDir())
	generate(t, cfg)

	ctx, cancel := context.WithCancel(quietCtx())
	cancel()
	sink := &memSink{}
	err := experiment.NewRunner(cfg, sink).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

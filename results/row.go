// Package results defines the per-instance summary row of an experiment and
// the sinks rows are written to: a CSV table flushed row by row, and an
// optional SQLite database for later analysis.
package results

import (
	"context"
	"errors"
	"strconv"
)

// Header is the CSV header, in column order.
var Header = []string{
	"size", "k", "avg_rate", "avg_density", "avg_clustering", "avg_shortest_path",
	"avg_std_rate", "avg_median_rate", "avg_incomp_nodes", "avg_n_comp_nodes", "avg_steps",
}

// ErrClosed is returned when writing to a closed sink.
var ErrClosed = errors.New("results: sink closed")

// Row summarizes the trials of one (size, instance) pair.
type Row struct {
	Size int
	K    int

	AvgRate         float64
	AvgDensity      float64
	AvgClustering   float64
	AvgShortestPath float64
	AvgStdRate      float64
	AvgMedianRate   float64
	AvgIncompNodes  float64
	AvgNCompNodes   float64
	AvgSteps        float64

	// Failed marks a placeholder row for an instance that could not be
	// simulated; Err carries the reason. Neither is part of the CSV table.
	Failed bool
	Err    string
}

// FailedRow is the zero row written for a failed instance.
func FailedRow(size, k int, err error) Row {
	r := Row{Size: size, K: k, Failed: true}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}

// Record renders r in Header order.
func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.Size),
		strconv.Itoa(r.K),
		formatFloat(r.AvgRate),
		formatFloat(r.AvgDensity),
		formatFloat(r.AvgClustering),
		formatFloat(r.AvgShortestPath),
		formatFloat(r.AvgStdRate),
		formatFloat(r.AvgMedianRate),
		formatFloat(r.AvgIncompNodes),
		formatFloat(r.AvgNCompNodes),
		formatFloat(r.AvgSteps),
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Sink receives rows in output order.
type Sink interface {
	Write(ctx context.Context, r Row) error
	Close() error
}

// multiSink fans rows out to several sinks.
type multiSink []Sink

// Multi returns a Sink writing every row to each of sinks in turn. nil
// entries are skipped.
func Multi(sinks ...Sink) Sink {
	var m multiSink
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

func (m multiSink) Write(ctx context.Context, r Row) error {
	for _, s := range m {
		if err := s.Write(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

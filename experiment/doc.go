// Package experiment runs the division game over a grid of pre-generated
// graph instances and writes one summary row per (size, instance).
//
// For each size n in [MinSize, MaxSize] and each instance k the Runner loads
// the edge list, computes the instance's structural metrics, runs the
// configured number of trials and aggregates them into a results.Row.
//
// Failure policy: an instance that cannot be simulated (malformed file,
// disconnected graph, centrality that does not converge, any other error or
// a panic) logs "Sim failed" and yields results.FailedRow. The batch always
// continues, so every size contributes the same number of rows.
//
// Instances of one size are simulated by up to Workers goroutines; rows are
// still written in k order, each as soon as its predecessors are out. Trial
// RNGs are derived from (seed, n, k, trial), so output does not depend on
// the worker count.
package experiment

// Package builder provides deterministic graph constructors for the division
// game experiments.
//
// Every topology is a Constructor closure composed by BuildGraph:
//
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomConnected(10, 0.2))
//
// Constructors:
//
//	RandomConnected(n, p) – spanning tree (each vertex i ≥ 1 joined to one
//	                        uniformly chosen earlier vertex) plus every other
//	                        pair with probability p; always connected.
//	Complete(n)           – K_n.
//	Path(n)               – P_n: 0-1-…-(n-1).
//	Cycle(n)              – C_n, n ≥ 3.
//	Empty(n)              – n isolated vertices.
//
// Vertices are always 0..n-1. Stochastic constructors draw from the RNG given
// by WithSeed/WithRand and return ErrNeedRandSource without one; the draw
// order is fixed, so the same seed always yields the same graph.
package builder

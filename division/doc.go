// Package division implements the "division game": three labor roles spread
// over a graph by a local, synchronous, monotone update rule.
//
// Model:
//
//   - Every vertex holds a Role: None (0) or one of Role1, Role2, Role3.
//   - In each Step, every vertex at None looks at the roles of its neighbors
//     in the start-of-step snapshot. The Rule decides from that Neighborhood
//     whether the vertex commits; a vertex with no assigned neighbor never
//     commits.
//   - A committing vertex adopts the role its neighborhood lacks. When several
//     roles are lacking, one is drawn uniformly from the step's RNG. When none
//     is lacking, it adopts the least frequent neighbor role (ties drawn the
//     same way).
//   - Assigned roles never change. All commitments of a step are applied
//     together after every decision has been made.
//
// Rules:
//
//	Homogeneous{Threshold}   – commit iff diversity > Threshold for every vertex.
//	                           Threshold 0.5 reads "at least two distinct roles".
//	Heterogeneous            – commit iff diversity > capacity(v), the vertex's
//	                           own capacity (eigenvector centrality by default).
//
// Diversity is the number of distinct non-None neighbor roles divided by three.
//
// Topology and the capacity slice are read-only after construction and may be
// shared by concurrent trials; State is per trial.
package division

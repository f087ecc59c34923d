// Package sim drives one trial of the division game on a graph: it seeds the
// three roles, iterates division.Step until no vertex is incomplete or the
// step cap is reached, and reports the trajectory of incomplete counts.
//
// Seeding prefers a 3-cycle, drawn uniformly from all triangles of the graph.
// A triangle-free graph falls back to three distinct uniformly random
// vertices; the Seeder makes that branch explicit and Result.Seed.Kind records
// which one a trial took. Run logs the fallback at WARN.
//
// Everything random in a trial comes from the *rand.Rand passed to Run, so a
// trial is reproducible from its seed alone.
package sim

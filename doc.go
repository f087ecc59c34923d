// Package divgame studies how three labor roles spread over random connected
// graphs under a local "division game" rule, and how completely and how fast
// they settle.
//
// What is inside?
//
//	core/       — thread-safe undirected simple Graph over int vertex IDs
//	builder/    — BuildGraph + Constructors: RandomConnected, Complete, Path, Cycle, Empty
//	bfs/, dfs/  — traversal, cycle basis, triangles, connected components
//	metrics/    — density, clustering, average shortest path, eigenvector centrality
//	edgelist/   — plain-text edge-list reader/writer
//	division/   — roles, the synchronous update Rule (homogeneous / heterogeneous), Step
//	sim/        — seeding (triangle or random fallback) and the per-trial driver
//	experiment/ — sizes × instances × trials runner with a worker pool
//	results/    — summary rows; CSV and SQLite sinks
//	cmd/divgame — CLI: generate, run, simulate, version
//
// Quick start:
//
//	divgame generate --min-size 5 --max-size 20 --instances 15
//	divgame run --variant heterogeneous --out data/data_all_random.csv
//
// Library use:
//
//	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomConnected(10, 0.1))
//	topo, _ := division.NewTopology(g)
//	seeder, _ := sim.NewSeeder(g)
//	res, _ := sim.Run(ctx, topo, seeder, division.Homogeneous{Threshold: 0.5}, rng)
//	fmt.Println(res.Trajectory.CompletionRate(g.VertexCount()), res.Steps)
package divgame

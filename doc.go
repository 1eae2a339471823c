// Package ksp ranks the K loopless (simple) shortest paths from any source
// node to a single fixed target node in a weighted directed graph.
//
// 🚀 What is ksp?
//
//	An implementation of the Martins-Pascoal-Santos deviation-path algorithm,
//	with an automatic fallback to Yen's algorithm when deviation-path search
//	stalls on cyclic candidates:
//
//	  • Graph primitives: directed, float64-weighted, thread-safe
//	  • A single-target shortest-path oracle, built once per target
//	  • A lazy, per-source stream of simple paths in non-decreasing weight order
//
// ✨ Why choose ksp?
//
//   - One Dijkstra run per target, regardless of how many sources you query
//   - Lazy: ranking work happens on each pull of the path stream
//   - Deterministic: tie-breaking is fully specified and reproducible
//
// Everything is organized under five subpackages:
//
//	core/      — Graph, Vertex, Edge types & thread-safe primitives
//	dijkstra/  — single-source shortest paths used once to build the oracle
//	yen/       — K-loopless-paths fallback used once the cycle budget is spent
//	mps/       — the deviation-path engine: oracle, arc cache, buffer, driver
//	testgraph/ — the six-node fixture graph shared by the test suites
//
//	go get github.com/katalvlaran/ksp
package ksp

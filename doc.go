// Package buddies builds round-robin pairing schedules from closeness
// ratings, so that everyone meets everyone exactly once and each round
// pairs people who know each other least.
//
// 🚀 What is in the box?
//
//	A small, deterministic toolkit that brings together:
//		• Graph model: participants, symmetric closeness weights, removable edges
//		• Matching: exact minimum-weight perfect matching (Edmonds blossom)
//		  plus an exhaustive engine for small groups
//		• Scheduling: one cheapest matching per round, with repair when a
//		  greedy choice leaves an unmatchable remainder
//		• Odd groups: a placeholder participant whose partner joins a trio
//		• I/O: CSV edge lists in, text / table / matrix / Graphviz out
//
// Packages, leaf first:
//
//	matrix/      dense float64 tables; +Inf marks a missing edge
//	core/        weighted participant graph with an optional placeholder
//	matching/    MinWeightPerfect (Blossom, Exhaustive), quantized weights
//	schedule/    Round Scheduler, backtracking repair, trio merge
//	builder/     synthetic closeness tables for tests and demos
//	csvio/       "name,name,weight" reader
//	render/      Text, Table, Matrix, DOT
//	cmd/buddies  the command-line tool
//
// Quick example (four people, weights = how close they already are):
//
//	    A─1─B
//	    │╲ ╱│        Set 1: (A, D), (B, C)   cost 5
//	    5 ╳ 4        Set 2: (A, B), (C, D)   cost 7
//	    │╱ ╲│        Set 3: (A, C), (B, D)   cost 9
//	    C─6─D        (AD=3, BC=2)
//
//	go install github.com/katalvlaran/buddies/cmd/buddies@latest
package buddies

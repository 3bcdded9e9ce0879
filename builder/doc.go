// SPDX-License-Identifier: MIT
// Package: buddies/builder
//
// Package builder generates synthetic closeness tables ([]core.Edge) for
// tests, benchmarks and demos.
//
// Constructors:
//   - Complete(n)            every pair of n participants, weights from the WeightFn.
//   - Cliques(k, size, in)   k groups; pairs inside a group weigh `in`,
//     pairs across groups come from the WeightFn. Two cliques of three with
//     cross weight 0 is the smallest table on which cheapest-first rounds
//     reach a dead end.
//
// Determinism:
//   - Pairs are emitted in (i,j), i<j, index order.
//   - Weights are reproducible for a fixed seed (WithSeed / WithRand).
//
// Options validate eagerly and panic on nil or meaningless input; the
// constructors themselves only return sentinel errors.
package builder

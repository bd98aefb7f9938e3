// Package pattern enumerates every legal unlock pattern over a [grid.Table]
// and derives statistics, text exports and random samples from the result.
//
// # Overview
//
// A pattern is a sequence of distinct dots where every move is allowed by
// the table given the dots drawn before it. [Build] performs a backtracking
// search from the virtual root and stores every legal pattern as a
// root-to-node route in a [Tree]:
//
//	root
//	├── 1
//	│   ├── 2
//	│   │   ├── 3      (1→2→3)
//	│   │   └── ...
//	│   └── ...
//	└── ...
//
// A node's depth equals the length of the pattern it ends. Children are
// stored in ascending dot order, which fixes the order of [Export] output.
//
// # Consumers
//
// Three independent walkers read a built tree:
//
//   - [Count]: number of patterns of each length 1..9
//   - [Export]: one decimal record per pattern ("753" for 7→5→3)
//   - [Sample]: random patterns of a given length
//
// The canonical grid yields 389,497 patterns in total, 389,112 of them with
// the four or more dots a phone requires.
//
// # Sampling
//
// The default [Walk] strategy picks uniformly among a node's children at each
// step. Patterns below thinly populated branches are therefore more likely
// than patterns below crowded ones; the walk is not uniform over patterns.
// [Weighted] opts into a uniform sample by weighting each child with the
// number of patterns of the target length beneath it.
//
// # Concurrency
//
// A Tree is immutable once Build returns. Counting, exporting, sampling and
// rendering may run concurrently on the same tree. A *rand.Rand passed to
// [Sample] is not safe for concurrent use and must not be shared across
// goroutines.
package pattern

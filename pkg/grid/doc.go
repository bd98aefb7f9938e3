// Package grid models the 3×3 dot grid of an unlock pattern and the blocking
// rule that decides which direct moves between dots are legal.
//
// # Points
//
// The nine dots are numbered row by row:
//
//	1 2 3
//	4 5 6
//	7 8 9
//
// [Root] (0) is not a dot. It stands for "nothing drawn yet" and is the
// starting point of every pattern, so every table has a row for it.
//
// # Blocking Rules
//
// A finger moving in a straight line from one dot to another passes over any
// dot lying exactly between them. The move is only allowed if that middle dot
// has already been used; otherwise the phone would connect it first. A [Table]
// records, for every ordered pair of points, one of three [Rule] variants:
//
//   - [Free]: the move is always legal
//   - [BlockedBy]: the move is legal once the given blocker has been visited
//   - [Forbidden]: the move is never legal (only produced by [Restricted])
//
// [Canonical] derives the relation from grid geometry. It is symmetric:
// Rule(a, b) == Rule(b, a) for every pair.
//
// # Guess Mode
//
// [Restricted] narrows the canonical table to a subset of dots (for example
// the smudges visible on a screen) and optionally forbids individual edges.
// [Build] is the single entry point covering both kinds.
//
// # Concurrency
//
// Tables are immutable after construction and safe for concurrent readers.
package grid

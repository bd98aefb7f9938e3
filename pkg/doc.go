// Package pkg provides the core libraries for patternlock.
//
// # Overview
//
// Patternlock enumerates every connect-the-dots unlock pattern on a 3×3 grid
// of dots numbered 1 to 9 (row-major, 1 top-left). A move between two dots
// that passes over a third is legal only once the middle dot has been
// visited. The pkg directory is organized into these areas:
//
//  1. [grid] - Dots, the blocking rule table, restricted tables
//  2. [pattern] - The pattern tree and everything computed from it
//  3. [combin] - Counting helpers (factorials, combinations, permutations)
//  4. [errors], [observability], [config], [buildinfo] - Ambient support
//
// # Architecture
//
// The typical data flow:
//
//	grid.Canonical() or grid.Restricted(dots, forbidden moves)
//	         ↓
//	    pattern.Build (one immutable tree of every legal pattern)
//	         ↓
//	    pattern.Count / pattern.Export / pattern.Sample / pattern.ToDOT
//
// The consumers only read the tree, so one build serves any number of them.
//
// # Quick Start
//
//	tree := pattern.Build(grid.Canonical())
//
//	counts := pattern.Count(tree)
//	fmt.Println(counts.Range(4, 9)) // 389112
//
//	paths, err := pattern.Sample(tree, 6, 3, pattern.NewRand(42))
//
// # Main Packages
//
// [grid] - A dot is a [grid.Point]; sets of dots are a 9-bit [grid.Set]. A
// [grid.Table] maps every ordered pair of dots to a rule: free, forbidden,
// or blocked by a middle dot. [grid.Restricted] derives the table for
// guess-mode queries over a subset of the dots.
//
// [pattern] - [pattern.Build] grows the tree by backtracking. Counting,
// text export, random sampling (a plain walk by default, optionally uniform
// over patterns) and DOT/SVG rendering work on the built tree.
//
// [combin] - Factorials, binomials, combinations and Heap's permutation
// algorithm. Used by the choices command and to cross-check the tree.
//
// [errors] - Coded errors such as INVALID_LENGTH and SINK_WRITE_FAILURE.
//
// [observability] - Hooks the core packages call instead of logging.
//
// [config] - The optional TOML configuration file.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/grid
// [pattern]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/pattern
// [combin]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/combin
// [errors]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/patternlock/pkg/buildinfo
package pkg

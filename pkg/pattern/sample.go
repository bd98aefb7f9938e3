package pattern

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/observability"
)

// Bounds on the length of sampled patterns. Phones reject patterns with
// fewer than four dots.
const (
	MinSampleLength = 4
	MaxSampleLength = grid.NumPoints
)

// DefaultSampleCount is the number of patterns a sampling request produces
// when the caller does not ask for a specific number.
const DefaultSampleCount = 10

// Strategy selects how [SampleWith] chooses among a node's children.
type Strategy int

const (
	// Walk picks uniformly among the children at every step. This is a
	// plain random walk and is not uniform over patterns.
	Walk Strategy = iota

	// Weighted picks each child with probability proportional to the
	// number of target-length patterns below it, which makes every
	// pattern of the target length equally likely.
	Weighted
)

func (s Strategy) String() string {
	switch s {
	case Walk:
		return "walk"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// NewRand returns a PCG-backed generator for seed. Equal seeds reproduce
// equal samples from equal trees.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample returns count random patterns of exactly length dots using the
// [Walk] strategy. See [SampleWith].
func Sample(tree *Tree, length, count int, rng *rand.Rand) ([]Path, error) {
	return SampleWith(tree, length, count, rng, Walk)
}

// SampleWith returns count random patterns of exactly length dots.
//
// length must be within 4..9; otherwise an INVALID_LENGTH error is returned
// before any pattern is drawn. Each pattern is drawn by descending length
// times from the root. Children whose subtree cannot reach the target length
// are never chosen, so restricted trees with dead ends still produce full
// length patterns; on the canonical grid no such dead ends exist and the
// walk is unaffected. If the tree holds no pattern of the requested length a
// NO_PATHS error is returned.
//
// A nil rng is replaced by one seeded from the clock. A strategy other than
// [Walk] or [Weighted] is an INVALID_INPUT error.
func SampleWith(tree *Tree, length, count int, rng *rand.Rand, strategy Strategy) ([]Path, error) {
	if length < MinSampleLength || length > MaxSampleLength {
		return nil, perrors.New(perrors.ErrCodeInvalidLength, "pattern length %d outside %d..%d", length, MinSampleLength, MaxSampleLength)
	}
	if count < 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "sample count %d is negative", count)
	}
	if tree.Depth() < length {
		return nil, perrors.New(perrors.ErrCodeNoPaths, "no pattern of length %d exists", length)
	}
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}

	var pick picker
	switch strategy {
	case Walk:
		pick = pickWalk
	case Weighted:
		pick = pickWeighted
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "unknown sampling strategy %d", int(strategy))
	}

	paths := make([]Path, count)
	for i := range paths {
		paths[i] = drawPath(tree.Root, length, rng, pick)
	}
	return paths, nil
}

// SampleContext is like SampleWith but reports through the registered
// [observability.OutputHooks].
func SampleContext(ctx context.Context, tree *Tree, length, count int, rng *rand.Rand, strategy Strategy) ([]Path, error) {
	start := time.Now()
	paths, err := SampleWith(tree, length, count, rng, strategy)
	observability.Output().OnSampleComplete(ctx, length, count, time.Since(start), err)
	return paths, err
}

// picker chooses the next node among the children of n that can still reach
// remaining more dots (remaining counts the chosen child itself).
type picker func(n *Node, remaining int, rng *rand.Rand) *Node

func drawPath(root *Node, length int, rng *rand.Rand, pick picker) Path {
	p := make(Path, 0, length)
	n := root
	for remaining := length; remaining > 0; remaining-- {
		n = pick(n, remaining, rng)
		p = append(p, n.Point)
	}
	return p
}

func pickWalk(n *Node, remaining int, rng *rand.Rand) *Node {
	var candidates [grid.NumPoints]*Node
	k := 0
	for _, c := range n.Children {
		if c.Height() >= remaining-1 {
			candidates[k] = c
			k++
		}
	}
	return candidates[rng.IntN(k)]
}

func pickWeighted(n *Node, remaining int, rng *rand.Rand) *Node {
	var weights [grid.NumPoints]int
	total := 0
	for i, c := range n.Children {
		weights[i] = countAtDepth(c, remaining-1)
		total += weights[i]
	}
	r := rng.IntN(total)
	for i, c := range n.Children {
		if r < weights[i] {
			return c
		}
		r -= weights[i]
	}
	panic("unreachable: weights exhausted")
}

// countAtDepth returns the number of nodes exactly depth levels below n,
// counting n itself at depth 0.
func countAtDepth(n *Node, depth int) int {
	if depth == 0 {
		return 1
	}
	if n.Height() < depth {
		return 0
	}
	sum := 0
	for _, c := range n.Children {
		sum += countAtDepth(c, depth-1)
	}
	return sum
}

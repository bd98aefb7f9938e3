package pattern

import (
	"strings"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
)

// Path is an ordered sequence of dots.
type Path []grid.Point

// String returns the decimal concatenation of the dots, e.g. "753".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, pt := range p {
		b.WriteByte('0' + byte(pt))
	}
	return b.String()
}

// Used returns the set of dots in p.
func (p Path) Used() grid.Set {
	return grid.SetOf(p...)
}

// ParsePath parses a pattern written as digits, optionally separated by
// dashes or commas ("736", "7-3-6"). It checks the syntax only; use
// [Validate] to check the pattern against a table.
func ParsePath(s string) (Path, error) {
	var p Path
	for _, r := range s {
		if r == '-' || r == ',' || r == ' ' {
			continue
		}
		if r < '1' || r > '9' {
			return nil, perrors.New(perrors.ErrCodeInvalidPath, "invalid dot %q in %q", r, s)
		}
		p = append(p, grid.Point(r-'0'))
	}
	if len(p) == 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidPath, "empty pattern")
	}
	return p, nil
}

// Validate reports whether p is a legal pattern under t. The returned error
// names the first offending dot or move.
func Validate(t *grid.Table, p Path) error {
	if len(p) == 0 || len(p) > grid.NumPoints {
		return perrors.New(perrors.ErrCodeInvalidPath, "pattern length %d outside 1..%d", len(p), grid.NumPoints)
	}
	var used grid.Set
	from := grid.Root
	for i, pt := range p {
		if !pt.Valid() {
			return perrors.New(perrors.ErrCodeInvalidPath, "dot %d at position %d is outside 1..%d", pt, i+1, grid.NumPoints)
		}
		if used.Has(pt) {
			return perrors.New(perrors.ErrCodeInvalidPath, "dot %d repeats at position %d", pt, i+1)
		}
		if rule := t.Rule(from, pt); !rule.Allows(used) {
			if from == grid.Root {
				return perrors.New(perrors.ErrCodeInvalidPath, "pattern cannot start at %d (%s)", pt, rule)
			}
			return perrors.New(perrors.ErrCodeInvalidPath, "move %d→%d is illegal (%s)", from, pt, rule)
		}
		used = used.Add(pt)
		from = pt
	}
	return nil
}

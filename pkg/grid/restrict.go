package grid

import (
	"fmt"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
)

// Kind selects which table [Build] produces.
type Kind int

const (
	// KindCanonical is the unrestricted 3×3 grid.
	KindCanonical Kind = iota
	// KindRestricted limits the grid to a subset of dots.
	KindRestricted
)

func (k Kind) String() string {
	switch k {
	case KindCanonical:
		return "canonical"
	case KindRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Edge is a direct transition between two dots. Forbidding an edge forbids
// both directions.
type Edge struct {
	From, To Point
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.From, e.To)
}

// Build returns the table for kind. allowed and forbidden are ignored for
// KindCanonical.
func Build(kind Kind, allowed Set, forbidden []Edge) (*Table, error) {
	switch kind {
	case KindCanonical:
		return Canonical(), nil
	case KindRestricted:
		return Restricted(allowed, forbidden)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "unknown table kind %d", int(kind))
	}
}

// Restricted derives a table from the canonical grid for guess-mode queries.
//
// Every transition touching a dot outside allowed, including the move from
// Root, becomes [Forbidden]. Transitions between allowed dots keep their
// canonical rule. Each edge in forbidden is then overridden to Forbidden in
// both directions, so the table stays symmetric.
//
// An empty allowed set is not an error: the result has no legal first move
// and every tree built from it is empty.
func Restricted(allowed Set, forbidden []Edge) (*Table, error) {
	if allowed&^Full != 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidPointSet, "allowed set contains points outside 1..%d", NumPoints)
	}
	for _, e := range forbidden {
		if !e.From.Valid() || !e.To.Valid() {
			return nil, perrors.New(perrors.ErrCodeInvalidPointSet, "forbidden edge %s references a point outside 1..%d", e, NumPoints)
		}
		if e.From == e.To {
			return nil, perrors.New(perrors.ErrCodeInvalidPointSet, "forbidden edge %s is a loop", e)
		}
	}

	base := Canonical()
	t := &Table{}
	for a := Point(0); a <= NumPoints; a++ {
		for b := Point(1); b <= NumPoints; b++ {
			if !allowed.Has(b) || (a != Root && !allowed.Has(a)) {
				t.rules[a][b] = Forbidden
				continue
			}
			t.rules[a][b] = base.rules[a][b]
		}
	}
	for _, e := range forbidden {
		t.rules[e.From][e.To] = Forbidden
		t.rules[e.To][e.From] = Forbidden
	}
	return t, nil
}

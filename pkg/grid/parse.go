package grid

import (
	"strings"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
)

// ParsePoint parses a single dot id.
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return Root, perrors.New(perrors.ErrCodeInvalidPointSet, "invalid point %q: want 1..%d", s, NumPoints)
	}
	return Point(s[0] - '0'), nil
}

// ParsePoints parses a list of dots such as "1,2,3", "1 2 3" or "123".
// Duplicates are accepted and collapse into one member. An empty string
// yields an empty set.
func ParsePoints(s string) (Set, error) {
	var set Set
	for _, field := range splitList(s) {
		for _, r := range field {
			p, err := ParsePoint(string(r))
			if err != nil {
				return 0, err
			}
			set = set.Add(p)
		}
	}
	return set, nil
}

// ParseEdges parses a list of edges such as "1-3,4-6".
func ParseEdges(s string) ([]Edge, error) {
	var edges []Edge
	for _, field := range splitList(s) {
		from, to, ok := strings.Cut(field, "-")
		if !ok {
			return nil, perrors.New(perrors.ErrCodeInvalidPointSet, "invalid edge %q: want FROM-TO", field)
		}
		a, err := ParsePoint(from)
		if err != nil {
			return nil, err
		}
		b, err := ParsePoint(to)
		if err != nil {
			return nil, err
		}
		if a == b {
			return nil, perrors.New(perrors.ErrCodeInvalidPointSet, "invalid edge %q: endpoints must differ", field)
		}
		edges = append(edges, Edge{From: a, To: b})
	}
	return edges, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

package grid

import "fmt"

// RuleKind distinguishes the three kinds of transition rule.
type RuleKind uint8

const (
	// RuleFree marks a transition that is always legal.
	RuleFree RuleKind = iota
	// RuleBlocked marks a transition that is legal once its blocker is used.
	RuleBlocked
	// RuleForbidden marks a transition that is never legal.
	RuleForbidden
)

// Rule describes when a direct transition between two points is legal.
//
// The zero value is [Free]. A blocker is only meaningful for RuleBlocked,
// so "no blocker" and "blocked by point 0" can never be confused.
type Rule struct {
	kind    RuleKind
	blocker Point
}

// Free is the rule for transitions that are always legal.
var Free = Rule{kind: RuleFree}

// Forbidden is the rule for transitions that are never legal.
var Forbidden = Rule{kind: RuleForbidden}

// BlockedBy returns the rule for a transition that jumps over p.
func BlockedBy(p Point) Rule {
	return Rule{kind: RuleBlocked, blocker: p}
}

// Kind returns the rule's variant.
func (r Rule) Kind() RuleKind { return r.kind }

// Blocker returns the point that must be visited first and true, or Root and
// false if the rule has no blocker.
func (r Rule) Blocker() (Point, bool) {
	if r.kind != RuleBlocked {
		return Root, false
	}
	return r.blocker, true
}

// Allows reports whether the rule permits the transition given the set of
// points already used.
func (r Rule) Allows(used Set) bool {
	switch r.kind {
	case RuleFree:
		return true
	case RuleBlocked:
		return used.Has(r.blocker)
	default:
		return false
	}
}

func (r Rule) String() string {
	switch r.kind {
	case RuleFree:
		return "free"
	case RuleBlocked:
		return fmt.Sprintf("blocked by %d", r.blocker)
	default:
		return "forbidden"
	}
}

// Table is a total function from ordered point pairs (including Root as the
// source) to transition rules.
type Table struct {
	rules [NumPoints + 1][NumPoints + 1]Rule
}

// Rule returns the rule for the transition from a to b.
func (t *Table) Rule(from, to Point) Rule {
	return t.rules[from][to]
}

// Allows reports whether the direct transition from → to is legal once the
// points in used have been visited.
func (t *Table) Allows(from, to Point, used Set) bool {
	return t.rules[from][to].Allows(used)
}

// Symmetric reports whether Rule(a, b) equals Rule(b, a) for every pair of
// dots. Rows for Root are not compared.
func (t *Table) Symmetric() bool {
	for a := Point(1); a <= NumPoints; a++ {
		for b := a + 1; b <= NumPoints; b++ {
			if t.rules[a][b] != t.rules[b][a] {
				return false
			}
		}
	}
	return true
}

// Reachable returns the dots that can start a pattern under t.
func (t *Table) Reachable() Set {
	var s Set
	for p := Point(1); p <= NumPoints; p++ {
		if t.rules[Root][p].Allows(0) {
			s = s.Add(p)
		}
	}
	return s
}

var canonical = buildCanonical()

// Canonical returns the blocking table of the unrestricted 3×3 grid.
//
// Two dots block each other through their midpoint whenever both the row and
// the column distance between them are even: rows, columns and both
// diagonals through the centre. Moves from Root are always free.
//
// The returned table is shared and must not be modified.
func Canonical() *Table {
	return canonical
}

func buildCanonical() *Table {
	t := &Table{}
	for a := Point(1); a <= NumPoints; a++ {
		for b := Point(1); b <= NumPoints; b++ {
			if a == b {
				continue
			}
			dr, dc := a.Row()+b.Row(), a.Col()+b.Col()
			if dr%2 == 0 && dc%2 == 0 {
				t.rules[a][b] = BlockedBy(At(dr/2, dc/2))
			}
		}
	}
	return t
}

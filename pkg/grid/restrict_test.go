package grid

import (
	"testing"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
)

func TestRestrictedOutsidePointsForbidden(t *testing.T) {
	allowed := SetOf(1, 2, 3)
	tbl, err := Restricted(allowed, nil)
	if err != nil {
		t.Fatalf("Restricted() error: %v", err)
	}

	for a := Point(0); a <= NumPoints; a++ {
		for b := Point(1); b <= NumPoints; b++ {
			inside := allowed.Has(b) && (a == Root || allowed.Has(a))
			if a == b {
				continue
			}
			got := tbl.Rule(a, b)
			if inside && got != Canonical().Rule(a, b) {
				t.Errorf("Rule(%d, %d) = %v, want canonical %v", a, b, got, Canonical().Rule(a, b))
			}
			if !inside && got != Forbidden {
				t.Errorf("Rule(%d, %d) = %v, want forbidden", a, b, got)
			}
		}
	}

	if got := tbl.Reachable(); got != allowed {
		t.Errorf("Reachable() = %s, want %s", got, allowed)
	}
}

func TestRestrictedKeepsBlocker(t *testing.T) {
	tbl, err := Restricted(SetOf(1, 2, 3), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Allows(1, 3, SetOf(1)) {
		t.Error("1→3 should be illegal before 2 is visited")
	}
	if !tbl.Allows(1, 3, SetOf(1, 2)) {
		t.Error("1→3 should be legal once 2 is visited")
	}
}

func TestRestrictedForbiddenEdges(t *testing.T) {
	tbl, err := Restricted(Full, []Edge{{From: 5, To: 9}})
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Rule(5, 9) != Forbidden || tbl.Rule(9, 5) != Forbidden {
		t.Error("forbidden edge should be forbidden in both directions")
	}
	if tbl.Allows(5, 9, Full) {
		t.Error("forbidden edge must stay illegal regardless of used points")
	}
	if !tbl.Symmetric() {
		t.Error("restricted table should stay symmetric")
	}
}

func TestRestrictedEmpty(t *testing.T) {
	tbl, err := Restricted(0, nil)
	if err != nil {
		t.Fatalf("empty set should not be an error: %v", err)
	}
	if got := tbl.Reachable(); got != 0 {
		t.Errorf("Reachable() = %s, want empty", got)
	}
}

func TestRestrictedInvalid(t *testing.T) {
	tests := []struct {
		name      string
		allowed   Set
		forbidden []Edge
	}{
		{"root in set", SetOf(Root, 1), nil},
		{"out of range edge", Full, []Edge{{From: 1, To: 10}}},
		{"root edge", Full, []Edge{{From: Root, To: 1}}},
		{"loop edge", Full, []Edge{{From: 4, To: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restricted(tt.allowed, tt.forbidden)
			if !perrors.Is(err, perrors.ErrCodeInvalidPointSet) {
				t.Errorf("Restricted() error = %v, want %s", err, perrors.ErrCodeInvalidPointSet)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tbl, err := Build(KindCanonical, SetOf(1), nil)
	if err != nil || tbl != Canonical() {
		t.Errorf("Build(canonical) = %p, %v; want the canonical table", tbl, err)
	}

	tbl, err = Build(KindRestricted, SetOf(1, 5, 9), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Reachable(); got != SetOf(1, 5, 9) {
		t.Errorf("restricted Reachable() = %s, want 1,5,9", got)
	}

	if _, err := Build(Kind(7), 0, nil); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("unknown kind error = %v, want %s", err, perrors.ErrCodeInvalidInput)
	}
}

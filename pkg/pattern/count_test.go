package pattern

import (
	"testing"
)

func TestCountCanonical(t *testing.T) {
	got := Count(canonical(t))
	if got != canonicalCounts {
		t.Errorf("Count() = %v, want %v", got, canonicalCounts)
	}
	if total := got.Total(); total != 389497 {
		t.Errorf("Total() = %d, want 389497", total)
	}
	if phone := got.Range(MinSampleLength, MaxSampleLength); phone != 389112 {
		t.Errorf("Range(4, 9) = %d, want 389112", phone)
	}
}

func TestCountIntoAccumulates(t *testing.T) {
	tree := restricted(t, "1,2,3", "")
	var c Counts
	CountInto(tree.Root, &c)
	CountInto(tree.Root, &c)
	if want := (Counts{6, 8, 8}); c != want {
		t.Errorf("two CountInto passes = %v, want %v", c, want)
	}
}

func TestCountsAccessors(t *testing.T) {
	c := Counts{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"total", c.Total(), 45},
		{"range", c.Range(4, 9), 39},
		{"clamped range", c.Range(-3, 20), 45},
		{"empty range", c.Range(5, 4), 0},
		{"length 1", c.Length(1), 1},
		{"length 9", c.Length(9), 9},
		{"length 0", c.Length(0), 0},
		{"length 10", c.Length(10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

package pattern

import (
	"slices"
	"testing"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "digits", input: "736", want: Path{7, 3, 6}},
		{name: "dashes", input: "7-3-6", want: Path{7, 3, 6}},
		{name: "commas", input: "1, 5, 9", want: Path{1, 5, 9}},
		{name: "zero", input: "703", wantErr: true},
		{name: "letter", input: "7x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !perrors.Is(err, perrors.ErrCodeInvalidPath) {
					t.Errorf("ParsePath(%q) code = %s", tt.input, perrors.GetCode(err))
				}
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	if got := (Path{7, 3, 6}).String(); got != "736" {
		t.Errorf("String() = %q, want %q", got, "736")
	}
	if got := (Path{}).String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		path  Path
		valid bool
	}{
		{"single dot", Path{5}, true},
		{"knight move", Path{1, 6}, true},
		{"jump over unused", Path{1, 3}, false},
		{"jump over used", Path{2, 1, 3}, true},
		{"diagonal through centre", Path{1, 9}, false},
		{"diagonal after centre", Path{5, 1, 9}, true},
		{"repeat", Path{1, 2, 1}, false},
		{"full snake", Path{1, 2, 3, 6, 5, 4, 7, 8, 9}, true},
		{"out of range", Path{1, 10}, false},
		{"root inside", Path{1, grid.Root}, false},
		{"empty", Path{}, false},
		{"too long", Path{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(grid.Canonical(), tt.path)
			if (err == nil) != tt.valid {
				t.Errorf("Validate(%v) = %v, want valid=%v", tt.path, err, tt.valid)
			}
			if err != nil && !perrors.Is(err, perrors.ErrCodeInvalidPath) {
				t.Errorf("Validate(%v) code = %s", tt.path, perrors.GetCode(err))
			}
		})
	}
}

func TestValidateAgreesWithTree(t *testing.T) {
	tree := restricted(t, "1,2,3,5,9", "2-5")
	tree.Walk(func(p Path) bool {
		if err := Validate(tree.Table, p); err != nil {
			t.Errorf("tree pattern %s rejected: %v", p, err)
			return false
		}
		return true
	})
	if err := Validate(tree.Table, Path{2, 5}); err == nil {
		t.Error("forbidden edge 2-5 accepted")
	}
	if err := Validate(tree.Table, Path{4}); err == nil {
		t.Error("dot outside the allowed set accepted")
	}
}

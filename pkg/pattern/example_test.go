package pattern_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

func ExampleCount() {
	tree := pattern.Build(grid.Canonical())
	counts := pattern.Count(tree)
	for l := 1; l <= grid.NumPoints; l++ {
		fmt.Printf("%d dots: %d\n", l, counts.Length(l))
	}
	fmt.Println("total:", counts.Total())
	// Output:
	// 1 dots: 9
	// 2 dots: 56
	// 3 dots: 320
	// 4 dots: 1624
	// 5 dots: 7152
	// 6 dots: 26016
	// 7 dots: 72912
	// 8 dots: 140704
	// 9 dots: 140704
	// total: 389497
}

func ExampleExport() {
	allowed, _ := grid.ParsePoints("1,2,3")
	tbl, _ := grid.Restricted(allowed, nil)
	if err := pattern.Export(pattern.Build(tbl), os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 1
	// 2
	// 3
	// 12
	// 123
	// 21
	// 23
	// 213
	// 231
	// 32
	// 321
}

func ExampleSample() {
	tree := pattern.Build(grid.Canonical())

	_, err := pattern.Sample(tree, 3, 10, pattern.NewRand(1))
	fmt.Println(err)

	paths, _ := pattern.Sample(tree, 4, 10, pattern.NewRand(1))
	fmt.Println(len(paths), len(paths[0]))
	// Output:
	// INVALID_LENGTH: pattern length 3 outside 4..9
	// 10 4
}

func ExampleValidate() {
	for _, s := range []string{"1236", "13", "213"} {
		p, _ := pattern.ParsePath(s)
		if err := pattern.Validate(grid.Canonical(), p); err != nil {
			fmt.Println(s, "rejected:", err)
			continue
		}
		fmt.Println(s, "ok")
	}
	// Output:
	// 1236 ok
	// 13 rejected: INVALID_PATH: move 1→3 is illegal (blocked by 2)
	// 213 ok
}

package grid

import (
	"math/bits"
	"strconv"
)

// Point identifies one dot on the grid. Valid dots are 1 through 9; [Root]
// is the virtual starting point.
type Point uint8

const (
	// Root is the sentinel point every pattern starts from. It is never part
	// of a pattern itself.
	Root Point = 0

	// NumPoints is the number of dots, which is also the longest possible
	// pattern.
	NumPoints = 9

	// Size is the number of grid positions per side.
	Size = 3
)

// Valid reports whether p is one of the nine dots.
func (p Point) Valid() bool {
	return p >= 1 && p <= NumPoints
}

// Row returns the zero-based row of p. The result is undefined for Root.
func (p Point) Row() int { return int(p-1) / Size }

// Col returns the zero-based column of p. The result is undefined for Root.
func (p Point) Col() int { return int(p-1) % Size }

// String returns the decimal id of p.
func (p Point) String() string {
	return strconv.Itoa(int(p))
}

// At returns the point at the given zero-based row and column.
func At(row, col int) Point {
	return Point(row*Size + col + 1)
}

// All returns the nine dots in ascending order.
func All() []Point {
	pts := make([]Point, NumPoints)
	for i := range pts {
		pts[i] = Point(i + 1)
	}
	return pts
}

// Set is a set of points stored as a bitmask. The zero value is empty and
// ready to use.
type Set uint16

// Full is the set of all nine dots.
const Full Set = 0x3FE

// SetOf returns a set containing pts.
func SetOf(pts ...Point) Set {
	var s Set
	for _, p := range pts {
		s = s.Add(p)
	}
	return s
}

// Add returns s with p added.
func (s Set) Add(p Point) Set { return s | 1<<p }

// Remove returns s with p removed.
func (s Set) Remove(p Point) Set { return s &^ (1 << p) }

// Has reports whether p is in s.
func (s Set) Has(p Point) bool { return s&(1<<p) != 0 }

// Len returns the number of points in s.
func (s Set) Len() int { return bits.OnesCount16(uint16(s)) }

// Points returns the members of s in ascending order.
func (s Set) Points() []Point {
	pts := make([]Point, 0, s.Len())
	for p := Point(0); p <= NumPoints; p++ {
		if s.Has(p) {
			pts = append(pts, p)
		}
	}
	return pts
}

// String renders s as a comma-separated list, e.g. "1,2,3".
func (s Set) String() string {
	var b []byte
	for _, p := range s.Points() {
		if len(b) > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(p), 10)
	}
	return string(b)
}

package life3d

// Point is an integer cell coordinate or offset.
type Point struct {
	X, Y, Z int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Pattern is a named set of cell offsets. Period is zero for patterns that
// do not repeat.
type Pattern struct {
	Name   string
	Period int
	Cells  []Point
}

// Family groups the compiled-in patterns known for one rule.
type Family struct {
	Rule     Rule
	Patterns []Pattern
}

// Families returns the compiled-in pattern library.
func Families() []Family { return families }

// FamilyIndex returns the library index for a rule.
func FamilyIndex(r Rule) (int, bool) {
	for i, f := range families {
		if f.Rule == r {
			return i, true
		}
	}
	return 0, false
}

// Glider is a translating pattern. After Period generations the cells
// reappear shifted by Drift.
type Glider struct {
	Cells  []Point
	Period int
	Drift  Point
}

var gliders = map[Rule][]Glider{
	MustParseRule("S45/B5"): {
		{Period: 4, Drift: Point{0, 1, 1}, Cells: []Point{
			{0, 0, 0}, {0, 1, 0}, {1, 2, 0}, {2, 2, 0}, {3, 0, 0},
			{3, 1, 0}, {1, 0, 1}, {1, 1, 1}, {2, 0, 1}, {2, 1, 1},
		}},
		{Period: 4, Drift: Point{1, 1, 0}, Cells: []Point{
			{0, 0, 0}, {1, 0, 0}, {2, 0, 1}, {2, 0, 2}, {0, 0, 3},
			{1, 0, 3}, {0, 1, 1}, {1, 1, 1}, {0, 1, 2}, {1, 1, 2},
		}},
		{Period: 4, Drift: Point{1, 0, 1}, Cells: []Point{
			{0, 0, 0}, {0, 0, 1}, {0, 1, 2}, {0, 2, 2}, {0, 3, 0},
			{0, 3, 1}, {1, 1, 0}, {1, 1, 1}, {1, 2, 0}, {1, 2, 1},
		}},
	},
	MustParseRule("S567/B6"): {
		{Period: 4, Drift: Point{0, 1, 1}, Cells: []Point{
			{0, 1, 0}, {1, 1, 0}, {0, 2, 1}, {1, 2, 1}, {0, 0, 2},
			{1, 0, 2}, {0, 1, 2}, {1, 1, 2}, {0, 2, 2}, {1, 2, 2},
		}},
		{Period: 4, Drift: Point{1, 1, 0}, Cells: []Point{
			{1, 0, 0}, {1, 0, 1}, {2, 1, 0}, {2, 1, 1}, {0, 2, 0},
			{0, 2, 1}, {1, 2, 0}, {1, 2, 1}, {2, 2, 0}, {2, 2, 1},
		}},
		{Period: 4, Drift: Point{1, 0, 1}, Cells: []Point{
			{0, 0, 1}, {0, 1, 1}, {1, 0, 2}, {1, 1, 2}, {2, 0, 0},
			{2, 1, 0}, {2, 0, 1}, {2, 1, 1}, {2, 0, 2}, {2, 1, 2},
		}},
	},
}

// GlidersFor returns the known gliders of a rule, oriented to travel toward
// positive coordinates.
func GlidersFor(r Rule) []Glider { return gliders[r] }

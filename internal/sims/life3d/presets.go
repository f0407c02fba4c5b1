package life3d

// Compiled-in pattern library. Offsets are relative to the world center.

var families = []Family{
	{
		Rule: MustParseRule("S45/B5"),
		Patterns: []Pattern{
			{Name: "Blinker", Period: 2, Cells: []Point{
				{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 1}, {1, 0, 1},
			}},
			{Name: "Double Blinker", Period: 2, Cells: []Point{
				{0, -1, -1}, {0, 1, -1}, {0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 1},
				{1, 0, 1},
			}},
			{Name: "Triple Blinker 1", Period: 2, Cells: []Point{
				{-1, -1, -2}, {-1, 0, -2}, {-2, -1, -1}, {1, 0, -1}, {-1, 1, -1}, {0, 1, -1},
				{-1, -2, 0}, {0, -2, 0}, {-2, -1, 0}, {1, 0, 0}, {0, -1, 1}, {0, 0, 1},
			}},
			{Name: "Triple Blinker 2", Period: 2, Cells: []Point{
				{-1, -1, -2}, {0, -1, -2}, {0, -2, -1}, {1, -1, -1}, {1, 0, -1}, {-1, 1, -1},
				{0, -2, 0}, {-2, -1, 0}, {-2, 0, 0}, {-1, 1, 0}, {-1, 0, 1}, {0, 0, 1},
			}},
			{Name: "Three Halfs Blinker", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {1, 0, -1}, {-1, -1, 0}, {1, 0, 0}, {-1, 1, 0}, {0, 1, 0},
				{0, -1, 1}, {0, 0, 1},
			}},
			{Name: "Puffer", Period: 4, Cells: []Point{
				{0, -1, -1}, {0, 0, -1}, {0, -2, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 0, 0}, {1, 0, 0},
				{0, 1, 0},
			}},
			{Name: "Pinwheel", Period: 4, Cells: []Point{
				{-1, 1, -1}, {0, 1, -1}, {-1, -1, 0}, {0, -1, 0}, {-2, 0, 0}, {1, 0, 0}, {-1, 0, 1},
				{0, 0, 1}, {-1, 1, 1}, {0, 1, 1},
			}},
			{Name: "Heart", Period: 4, Cells: []Point{
				{-1, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {0, -1, 0}, {-2, 0, 0}, {1, 0, 0},
				{-1, -1, 1}, {-1, 1, 1}, {0, 1, 1},
			}},
			{Name: "Arrow", Period: 4, Cells: []Point{
				{0, -1, -1}, {0, 0, -1}, {0, -2, 0}, {1, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, -1, 1},
				{-1, 0, 1},
			}},
			{Name: "Rotor", Period: 2, Cells: []Point{
				{0, -1, -1}, {0, 0, -1}, {0, -2, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 0, 0}, {1, 0, 0},
				{0, 1, 0}, {0, -1, 1}, {0, 0, 1},
			}},
			{Name: "Bronco", Period: 4, Cells: []Point{
				{0, -1, -1}, {0, 0, -1}, {0, -2, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 0, 0}, {1, 0, 0},
				{0, 1, 0}, {-1, -1, 1}, {-1, 0, 1},
			}},
			{Name: "Tripump", Period: 2, Cells: []Point{
				{0, -2, -2}, {-2, -1, -2}, {-1, -1, -2}, {0, -1, -2}, {0, -2, -1}, {-2, 0, -1},
				{-2, 1, -1}, {-1, 1, -1}, {1, -2, 0}, {1, -1, 0}, {1, 0, 0}, {-1, 1, 0}, {0, 0, 1},
				{1, 0, 1}, {-1, 1, 1},
			}},
			{Name: "Windshieldwiper", Period: 2, Cells: []Point{
				{-2, -1, -2}, {-1, -1, -2}, {0, 0, -2}, {-1, -2, -1}, {-2, -1, -1}, {1, 0, -1},
				{-1, 1, -1}, {0, 1, -1}, {1, 1, -1}, {0, -2, 0}, {-2, -1, 0}, {1, -1, 0}, {0, -2, 1},
				{0, -1, 1}, {0, 0, 1},
			}},
			{Name: "Waltzer", Period: 6, Cells: []Point{
				{-2, -1, -1}, {-1, -1, -1}, {0, -1, -1}, {-2, 0, -1}, {-1, 1, -1}, {0, 1, -1},
				{-2, -1, 0}, {-2, 0, 0}, {1, 0, 0}, {1, 1, 0}, {-1, 0, 1}, {0, 0, 1}, {0, 1, 1},
			}},
			{Name: "Big Waltzer", Period: 6, Cells: []Point{
				{0, -1, -1}, {1, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {-1, 1, -1}, {0, -2, 0},
				{1, -2, 0}, {-2, 0, 0}, {-2, 1, 0}, {0, -1, 1}, {1, -1, 1}, {-1, 0, 1}, {0, 0, 1},
				{-1, 1, 1},
			}},
			{Name: "Seesaw", Period: 2, Cells: []Point{
				{0, 0, -2}, {-2, -1, -1}, {-1, -1, -1}, {-2, 0, -1}, {0, 1, -1}, {-1, -1, 0},
				{1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {-1, 0, 1},
			}},
			{Name: "Collision to Redirection", Period: 0, Cells: []Point{
				{-3, 5, -7}, {0, 5, -7}, {-3, 4, -7}, {0, 4, -7}, {-2, 3, -7}, {-1, 3, -7},
				{-2, 5, -6}, {-1, 5, -6}, {-2, 4, -6}, {-1, 4, -6}, {1, -2, 1}, {1, -3, 2},
				{0, -2, 2}, {2, -2, 2}, {1, -1, 2}, {0, -2, 3}, {2, -2, 3},
			}},
			{Name: "Collision to Seesaw", Period: 0, Cells: []Point{
				{-4, -6, -7}, {-1, -6, -7}, {-4, -5, -7}, {-1, -5, -7}, {-3, -4, -7}, {-2, -4, -7},
				{-3, -6, -6}, {-2, -6, -6}, {-3, -5, -6}, {-2, -5, -6}, {1, 4, 6}, {2, 4, 6},
				{0, 5, 6}, {3, 5, 6}, {0, 6, 6}, {3, 6, 6}, {1, 5, 5}, {2, 5, 5}, {1, 6, 5},
				{2, 6, 5},
			}},
		},
	},
	{
		Rule: MustParseRule("S567/B6"),
		Patterns: []Pattern{
			{Name: "Knife-Switch Blinker", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {1, 0, -1}, {0, -1, 0}, {-1, 0, 0}, {1, 0, 0},
				{0, 0, 1},
			}},
			{Name: "Clock", Period: 2, Cells: []Point{
				{0, -1, -2}, {0, 0, -2}, {-2, -1, -1}, {0, -1, -1}, {-2, 0, -1}, {0, 0, -1},
				{-1, -1, 0}, {1, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {-1, -1, 1}, {-1, 0, 1},
			}},
			{Name: "Half Blinkers", Period: 2, Cells: []Point{
				{0, -1, -2}, {0, 0, -2}, {-1, -1, -1}, {1, -1, -1}, {-1, 0, -1}, {1, 0, -1},
				{0, 1, -1}, {-1, -2, 0}, {0, -2, 0}, {1, -2, 0}, {-2, -1, 0}, {2, -1, 0}, {-2, 0, 0},
				{2, 0, 0}, {0, 1, 0}, {-1, -1, 1}, {1, -1, 1}, {-1, 0, 1}, {1, 0, 1}, {0, 1, 1},
				{0, -1, 2}, {0, 0, 2},
			}},
			{Name: "Mutant Half Blinkers", Period: 2, Cells: []Point{
				{0, -1, -2}, {0, 0, -2}, {0, -2, -1}, {-1, -1, -1}, {1, -1, -1}, {-1, 0, -1},
				{1, 0, -1}, {0, 1, -1}, {-1, -2, 0}, {1, -2, 0}, {-2, -1, 0}, {2, -1, 0}, {-2, 0, 0},
				{2, 0, 0}, {0, 1, 0}, {0, -2, 1}, {1, -2, 1}, {-1, -1, 1}, {2, -1, 1}, {-1, 0, 1},
				{2, 0, 1}, {0, 1, 1}, {0, -1, 2}, {1, -1, 2}, {0, 0, 2},
			}},
			{Name: "Fuse", Period: 0, Cells: []Point{
				{0, 0, 4}, {0, 0, 3}, {0, -2, 2}, {-1, -1, 2}, {1, -1, 2}, {-2, 0, 2}, {2, 0, 2},
				{-1, 1, 2}, {1, 1, 2}, {0, 2, 2}, {0, -2, 1}, {-1, -1, 1}, {1, -1, 1}, {-2, 0, 1},
				{2, 0, 1}, {-1, 1, 1}, {1, 1, 1}, {0, 2, 1}, {0, 0, 0}, {0, 0, -1}, {0, -2, -2},
				{-1, -1, -2}, {1, -1, -2}, {-2, 0, -2}, {2, 0, -2}, {-1, 1, -2}, {1, 1, -2},
				{0, 2, -2}, {0, -2, -3}, {-1, -1, -3}, {1, -1, -3}, {-2, 0, -3}, {2, 0, -3},
				{-1, 1, -3}, {1, 1, -3}, {0, 2, -3}, {-1, 0, -4}, {0, 0, -4}, {1, 0, -4},
			}},
			{Name: "2 Pts Of Star Of David", Period: 2, Cells: []Point{
				{1, 0, -3}, {2, 0, -3}, {1, -1, -2}, {2, -1, -2}, {0, 0, -2}, {1, 1, -2}, {2, 1, -2},
				{1, 0, -1}, {2, 0, -1}, {-2, 0, 0}, {0, 0, 0}, {-2, -1, 1}, {-3, 0, 1}, {-1, 0, 1},
				{-2, 1, 1}, {-2, -1, 2}, {-3, 0, 2}, {-1, 0, 2}, {-2, 1, 2},
			}},
			{Name: "Triple Blinker 1", Period: 2, Cells: []Point{
				{0, -1, -2}, {0, 0, -2}, {-1, -1, -1}, {1, -1, -1}, {-2, 0, -1}, {-1, 1, -1},
				{0, 1, -1}, {-1, -2, 0}, {0, -2, 0}, {1, -1, 0}, {-2, 0, 0}, {0, 0, 0}, {-1, -1, 1},
				{-1, 0, 1},
			}},
			{Name: "Triple Blinker 2", Period: 2, Cells: []Point{
				{-1, -1, -2}, {0, -1, -2}, {-1, -2, -1}, {-2, -1, -1}, {-1, -1, -1}, {-2, 0, -1},
				{0, 1, -1}, {-1, -2, 0}, {1, -1, 0}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 1},
				{0, 0, 1},
			}},
			{Name: "Triknot", Period: 2, Cells: []Point{
				{0, 0, -1}, {1, 0, -1}, {-1, -1, 0}, {0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0},
				{0, 0, 1}, {0, 1, 1},
			}},
			{Name: "Searchlight", Period: 2, Cells: []Point{
				{-1, -1, -2}, {0, -1, -2}, {-1, 0, -2}, {0, 0, -2}, {-1, -2, -1}, {0, -2, -1},
				{-2, -1, -1}, {1, -1, -1}, {-2, 0, -1}, {1, 0, -1}, {0, 1, -1}, {-1, -2, 0},
				{0, -2, 0}, {1, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, -1, 1}, {0, -1, 1},
			}},
			{Name: "Pole Driver", Period: 2, Cells: []Point{
				{-1, -1, -1}, {0, -1, -1}, {-1, 0, -1}, {1, 0, -1}, {0, 1, -1}, {1, 1, -1},
				{0, -1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
			}},
			{Name: "Little Star", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {1, 0, -1}, {-1, 1, -1}, {0, 1, -1}, {1, 1, -1},
				{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0}, {-1, -1, 1}, {0, -1, 1}, {1, -1, 1},
				{-1, 0, 1}, {1, 0, 1}, {0, 1, 1},
			}},
			{Name: "Jaws", Period: 3, Cells: []Point{
				{0, -1, -2}, {-1, 0, -2}, {1, 0, -2}, {0, 1, -2}, {0, -2, -1}, {-1, -1, -1},
				{1, -1, -1}, {-1, 0, -1}, {2, 0, -1}, {0, 1, -1}, {1, 1, -1}, {-1, -2, 0},
				{1, -2, 0}, {-1, -1, 0}, {2, -1, 0}, {1, 1, 0}, {2, 1, 0}, {0, -2, 1}, {0, -1, 1},
				{1, -1, 1}, {1, 0, 1}, {2, 0, 1}, {-2, 1, 1}, {-2, 2, 1}, {-1, 2, 1}, {-2, 1, 2},
				{-1, 1, 2}, {-2, 2, 2}, {-1, 2, 2},
			}},
			{Name: "Near Ship", Period: 0, Cells: []Point{
				{-2, -1, -2}, {-1, -1, -2}, {-2, 0, -2}, {-1, 0, -2}, {-2, -1, -1}, {-1, -1, -1},
				{-2, 0, -1}, {-1, 0, -1}, {0, -1, 0}, {0, 0, 0}, {-2, -1, 1}, {-1, -1, 1},
				{-2, 0, 1}, {-1, 0, 1}, {-2, -1, 2}, {-1, -1, 2}, {-2, 0, 2}, {-1, 0, 2},
			}},
		},
	},
	{
		Rule: MustParseRule("S56/B5"),
		Patterns: []Pattern{
			{Name: "Seesaw", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			}},
			{Name: "Prop", Period: 2, Cells: []Point{
				{-1, 0, -1}, {0, 0, -1}, {1, 0, -1}, {0, -1, 0}, {0, 0, 0}, {0, 1, 0},
			}},
			{Name: "Unnamed 2", Period: 2, Cells: []Point{
				{-1, 0, -1}, {0, 0, -1}, {0, -1, 0}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			}},
			{Name: "Column", Period: 2, Cells: []Point{
				{0, 0, -6}, {0, 0, -5}, {0, -1, -4}, {-1, 0, -4}, {0, 0, -4}, {1, 0, -4}, {0, 1, -4},
				{0, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {1, 0, -1}, {0, 1, -1}, {0, 0, 0}, {0, 0, 1},
				{0, 0, 2}, {0, 0, 3}, {0, -1, 4}, {-1, 0, 4}, {0, 0, 4}, {1, 0, 4}, {0, 1, 4},
			}},
			{Name: "Flipping C", Period: 2, Cells: []Point{
				{-1, 0, -1}, {1, 0, -1}, {-1, 0, 0}, {0, 0, 0}, {1, 0, 0},
			}},
			{Name: "Sliding Blocks", Period: 2, Cells: []Point{
				{-1, 0, -1}, {0, 0, -1}, {-1, 1, -1}, {0, 1, -1}, {-1, -1, 0}, {0, -1, 0}, {0, 0, 0},
			}},
			{Name: "Unnamed 6", Period: 2, Cells: []Point{
				{-1, -1, -1}, {-1, 1, -1}, {-1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {-1, -1, 1}, {-1, 1, 1},
			}},
			{Name: "Y", Period: 2, Cells: []Point{
				{1, -1, -1}, {-1, 0, -1}, {0, 1, -1}, {1, -1, 0}, {-1, 0, 0}, {0, 0, 0}, {0, 1, 0},
			}},
			{Name: "Pump", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {1, 0, -1}, {0, 1, -1}, {-1, -1, 0}, {0, -1, 0},
				{-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			}},
			{Name: "Walker", Period: 2, Cells: []Point{
				{-1, -1, -1}, {0, -1, -1}, {1, 0, -1}, {0, -1, 0}, {1, -1, 0}, {-1, 0, 0}, {0, 0, 0},
			}},
			{Name: "Switch", Period: 2, Cells: []Point{
				{2, -1, -2}, {1, 0, -2}, {2, 0, -2}, {1, -1, -1}, {2, -1, -1}, {1, 0, -1}, {1, 0, 0},
				{-1, -1, 1}, {-2, 0, 1}, {-1, 0, 1}, {0, 0, 1}, {-2, -1, 2}, {-1, -1, 2}, {-2, 0, 2},
			}},
			{Name: "Hopper", Period: 2, Cells: []Point{
				{-1, -1, -1}, {0, -1, -1}, {1, -1, -1}, {0, -1, 0}, {-1, 0, 0}, {0, 0, 0}, {1, 0, 0},
			}},
			{Name: "Pushups", Period: 2, Cells: []Point{
				{-1, -2, -2}, {-1, -2, -1}, {0, -2, -1}, {-1, -1, -1}, {0, -1, -1}, {-1, 0, 0},
				{0, 0, 0}, {-1, 0, 1}, {0, 0, 1}, {-1, 1, 1},
			}},
			{Name: "Pusher", Period: 2, Cells: []Point{
				{0, -2, -2}, {0, -1, -2}, {-1, -2, -1}, {-1, -1, -1}, {0, -1, -1}, {-1, 0, 0},
				{0, 0, 0}, {0, 1, 0}, {-1, 0, 1}, {0, 1, 1},
			}},
			{Name: "Capacitor", Period: 2, Cells: []Point{
				{0, -1, -2}, {-1, 0, -2}, {0, 0, -2}, {0, 0, -1}, {1, 0, -1}, {0, 1, -1}, {1, 1, -1},
				{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}, {0, -1, 2}, {-1, 0, 2}, {0, 0, 2},
			}},
			{Name: "Corner 1", Period: 2, Cells: []Point{
				{-1, -3, -3}, {-1, -2, -3}, {0, -2, -3}, {1, -1, -3}, {1, 0, -3}, {2, 0, -3},
				{-1, -3, -2}, {0, -2, -2}, {1, -1, -2}, {2, 0, -2}, {-3, -3, -1}, {-2, -3, -1},
				{-3, -2, -1}, {2, 1, -1}, {1, 2, -1}, {2, 2, -1}, {-3, -2, 0}, {-2, -2, 0},
				{1, 1, 0}, {1, 2, 0}, {-3, -1, 1}, {-2, -1, 1}, {-3, 0, 1}, {0, 1, 1}, {-1, 2, 1},
				{0, 2, 1}, {-3, 0, 2}, {-2, 0, 2}, {-1, 1, 2}, {-1, 2, 2},
			}},
			{Name: "Corner 2", Period: 2, Cells: []Point{
				{-2, -2, -3}, {-1, -2, -3}, {-2, -1, -3}, {2, 1, -3}, {1, 2, -3}, {2, 2, -3},
				{-3, -2, -2}, {-1, -2, -2}, {-3, -1, -2}, {0, -1, -2}, {1, 0, -2}, {2, 1, -2},
				{1, 3, -2}, {2, 3, -2}, {-3, -2, -1}, {-2, -2, -1}, {0, -1, -1}, {1, 0, -1},
				{2, 2, -1}, {2, 3, -1}, {-2, -1, 0}, {-1, -1, 0}, {1, 1, 0}, {1, 2, 0}, {-2, 0, 1},
				{-1, 0, 1}, {0, 1, 1}, {-3, 2, 1}, {0, 2, 1}, {-2, 3, 1}, {-3, 1, 2}, {-2, 1, 2},
				{-3, 2, 2}, {-1, 2, 2}, {-2, 3, 2}, {-1, 3, 2},
			}},
			{Name: "Runner", Period: 2, Cells: []Point{
				{-1, -2, -1}, {0, -2, -1}, {0, -1, -1}, {-1, -1, 0}, {0, -1, 0}, {-1, 0, 1},
				{0, 0, 1}, {0, 1, 1}, {-1, 1, 2}, {0, 1, 2},
			}},
			{Name: "Backwards Runner", Period: 2, Cells: []Point{
				{-1, -2, -1}, {0, -2, -1}, {0, -1, -1}, {-1, -1, 0}, {0, -1, 0}, {-1, 0, 1},
				{0, 0, 1}, {-1, 1, 1}, {-1, 0, 2}, {0, 0, 2},
			}},
			{Name: "Flipping H", Period: 3, Cells: []Point{
				{-1, 0, -1}, {1, 0, -1}, {-1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {-1, 0, 1}, {1, 0, 1},
			}},
			{Name: "Eagle", Period: 2, Cells: []Point{
				{0, -2, -1}, {1, -2, -1}, {0, -1, -1}, {1, -1, -1}, {0, 1, -1}, {1, 1, -1},
				{0, 2, -1}, {1, 2, -1}, {0, -1, 0}, {-1, 0, 0}, {0, 1, 0},
			}},
			{Name: "Variant 1", Period: 2, Cells: []Point{
				{1, -1, -2}, {0, 0, -2}, {0, -1, -1}, {0, 0, -1}, {1, 0, -1}, {-1, -1, 0},
				{0, -1, 1}, {0, 0, 1}, {1, 0, 1}, {1, -1, 2}, {0, 0, 2},
			}},
			{Name: "Variant 2", Period: 2, Cells: []Point{
				{0, -1, -2}, {1, 0, -2}, {0, -1, -1}, {1, -1, -1}, {0, 0, -1}, {-1, 0, 0},
				{0, -1, 1}, {0, 0, 1}, {1, 0, 1}, {1, -1, 2}, {0, 0, 2},
			}},
			{Name: "Variant 3", Period: 2, Cells: []Point{
				{1, -1, -2}, {0, 0, -2}, {0, -1, -1}, {1, -1, -1}, {0, 0, -1}, {-1, -1, 0},
				{0, -1, 1}, {0, 0, 1}, {1, 0, 1}, {1, -1, 2}, {0, 0, 2},
			}},
			{Name: "Variant 4", Period: 2, Cells: []Point{
				{1, -1, -2}, {0, 0, -2}, {0, -1, -1}, {1, -1, -1}, {0, 0, -1}, {-1, 0, 0},
				{0, -1, 1}, {0, 0, 1}, {1, 0, 1}, {1, -1, 2}, {0, 0, 2},
			}},
			{Name: "Squid", Period: 2, Cells: []Point{
				{-2, -1, -2}, {-1, -1, -2}, {1, 1, -2}, {1, 2, -2}, {-2, -1, -1}, {-1, -1, -1},
				{0, -1, -1}, {1, 0, -1}, {1, 1, -1}, {1, 2, -1}, {-1, -1, 0}, {1, 1, 0}, {-1, 0, 1},
				{-2, 1, 1}, {-1, 1, 1}, {0, 1, 1}, {-2, 2, 1}, {-1, 2, 1},
			}},
			{Name: "Rower", Period: 2, Cells: []Point{
				{0, 1, -2}, {-1, -1, -1}, {1, -1, -1}, {-2, 0, -1}, {-1, 0, -1}, {1, 0, -1},
				{2, 0, -1}, {-1, 0, 0}, {1, 0, 0}, {-1, 1, 0}, {1, 1, 0}, {0, -1, 1},
			}},
			{Name: "Flip", Period: 2, Cells: []Point{
				{-1, -2, -2}, {0, -1, -2}, {0, 0, -2}, {-1, -2, -1}, {-2, -1, -1}, {1, -1, -1},
				{1, 0, -1}, {1, 1, -1}, {-1, -2, 0}, {-2, -1, 0}, {-1, 1, 0}, {0, 1, 0}, {-2, 0, 1},
				{-1, 0, 1}, {0, 0, 1},
			}},
		},
	},
	{
		Rule: MustParseRule("S67/B67"),
		Patterns: []Pattern{
			{Name: "Walking Box", Period: 2, Cells: []Point{
				{-1, -1, -2}, {0, 0, -2}, {-1, -2, -1}, {0, -2, -1}, {-2, -1, -1}, {1, -1, -1},
				{-2, 0, -1}, {1, 0, -1}, {-1, 1, -1}, {0, 1, -1}, {-1, -2, 0}, {0, -2, 0},
				{-2, -1, 0}, {1, -1, 0}, {-2, 0, 0}, {1, 0, 0}, {-1, 1, 0}, {0, 1, 0}, {-1, -1, 1},
				{0, 0, 1},
			}},
			{Name: "Walker", Period: 2, Cells: []Point{
				{0, -1, -1}, {-1, 0, -1}, {-1, -1, 0}, {0, -1, 0}, {-1, 0, 0}, {0, 0, 0}, {0, -1, 1},
				{-1, 0, 1},
			}},
			{Name: "S", Period: 2, Cells: []Point{
				{-1, -1, -1}, {0, -1, -1}, {-1, 0, -1}, {0, 0, -1}, {-1, 0, 0}, {0, 0, 0},
				{-1, 1, 0}, {0, 1, 0},
			}},
			{Name: "Backwards Arrow", Period: 2, Cells: []Point{
				{-1, 0, -1}, {0, 0, -1}, {-1, 0, 0}, {0, 0, 0}, {-1, 1, 0}, {0, 1, 0}, {-1, -1, 1},
				{0, -1, 1},
			}},
			{Name: "Spinning Box", Period: 2, Cells: []Point{
				{-1, -1, -2}, {0, -1, -2}, {-1, 0, -2}, {0, 0, -2}, {0, -2, -1}, {-2, -1, -1},
				{1, -1, -1}, {-2, 0, -1}, {-1, 1, -1}, {0, 1, -1}, {-1, -2, 0}, {0, -2, 0},
				{-2, -1, 0}, {1, -1, 0}, {-2, 0, 0}, {1, 0, 0}, {-1, 1, 0}, {0, 1, 0}, {-1, -1, 1},
				{0, -1, 1}, {0, 0, 1},
			}},
			{Name: "Flipping T", Period: 2, Cells: []Point{
				{0, 0, -1}, {0, 0, 0}, {0, -1, 1}, {-1, 0, 1}, {0, 0, 1}, {1, 0, 1}, {-1, 1, 1},
				{0, 1, 1},
			}},
		},
	},
}

package knight

// Offsets lists the eight knight moves in the order both searches expand them.
// The order decides which shortest path Path returns when several exist.
var Offsets = [8]Position{
	{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
	{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
}

// Neighbors returns the eight squares one knight move away from p, in Offsets order.
// No square is filtered out: on an unbounded board all of them exist.
// Complexity: O(1).
func Neighbors(p Position) [8]Position {
	var out [8]Position
	for i, d := range Offsets {
		out[i] = p.Add(d)
	}

	return out
}

// IsKnightMove reports whether b is one knight move away from a.
func IsKnightMove(a, b Position) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

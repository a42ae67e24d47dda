// Package knight computes shortest knight paths on an unbounded integer grid.
//
// What
//
//   - Position is a (Row, Col) pair of signed integers; any pair is a square.
//   - A knight move changes one coordinate by 1 and the other by 2.
//   - Distance returns the minimum number of moves between two squares.
//   - Path returns one shortest sequence of squares from start to target.
//   - IsValid checks a square against a Board (unbounded or n×n).
//
// How
//
//	Both searches run breadth-first from start over the implicit graph whose
//	edges are the eight knight offsets. Neighbors are generated in the fixed
//	order of Offsets, and Path keeps the first predecessor that discovered
//	each square, so the returned path is fully reproducible.
//
//	Every pair of squares is connected on an unbounded board, so neither
//	search has a "not found" result. If the frontier ever drains before the
//	target is reached the search panics with ErrFrontierExhausted.
//
// Determinism
//
//	The search from s to t explores exactly the translate by s of the search
//	from the origin to t-s, hence Path(s, t)[i] == Path(Position{}, t.Sub(s))[i].Add(s).
//
// Complexity (N = squares discovered before target)
//
//   - Time:   O(N)
//   - Memory: O(N)   (frontier, visited set, predecessor map)
//
// Usage
//
//	d := knight.Distance(knight.Position{}, knight.Position{Row: 7, Col: 7}) // 6
//	p := knight.Path(knight.Position{}, knight.Position{Row: 2, Col: 1})     // [(0, 0) (2, 1)]
//
//	res := knight.Search(from, to,
//	    knight.WithOnEnqueue(func(p knight.Position, depth int) { /* ... */ }),
//	)
//	fmt.Println(res.Distance, res.Explored)
package knight

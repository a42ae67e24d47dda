package knight

import "fmt"

// UnboundedSize is the legacy board-size sentinel meaning "no edges".
const UnboundedSize = -1

// Board selects the board a position is validated against:
// either unbounded, or a square board of Size×Size with coordinates in [0, Size).
// The zero value is the unbounded board.
type Board struct {
	bounded bool
	size    int
}

// Unbounded returns the infinite board.
func Unbounded() Board {
	return Board{}
}

// Bounded returns an n×n board. Returns ErrInvalidBoardSize for n <= 0.
func Bounded(n int) (Board, error) {
	if n <= 0 {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidBoardSize, n)
	}

	return Board{bounded: true, size: n}, nil
}

// BoardOfSize maps a plain size to a Board: UnboundedSize gives Unbounded(),
// a positive n gives Bounded(n), anything else is ErrInvalidBoardSize.
func BoardOfSize(n int) (Board, error) {
	if n == UnboundedSize {
		return Unbounded(), nil
	}

	return Bounded(n)
}

// IsBounded reports whether b has edges.
func (b Board) IsBounded() bool { return b.bounded }

// Size returns the side length, or UnboundedSize for the unbounded board.
func (b Board) Size() int {
	if !b.bounded {
		return UnboundedSize
	}

	return b.size
}

// String returns "unbounded" or "NxN".
func (b Board) String() string {
	if !b.bounded {
		return "unbounded"
	}

	return fmt.Sprintf("%dx%d", b.size, b.size)
}

// IsValid reports whether p lies on b. Every position is valid on the unbounded board.
// Complexity: O(1).
func IsValid(p Position, b Board) bool {
	if !b.bounded {
		return true
	}

	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Package knight defines positions, options and sentinel errors
// for knight-move shortest path search.
package knight

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the knight package.
var (
	// ErrFrontierExhausted is carried by the panic raised when a search drains
	// its frontier without reaching the target. It signals a broken search.
	ErrFrontierExhausted = errors.New("knight: frontier exhausted before reaching target")

	// ErrInvalidBoardSize is returned when a bounded board is requested with size <= 0.
	ErrInvalidBoardSize = errors.New("knight: board size must be positive")

	// ErrParsePosition is returned when a position string is malformed.
	ErrParsePosition = errors.New("knight: malformed position")
)

// Position is a square on the board. It is comparable and used directly as a map key.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the offset from q to p.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// String formats p as "(row, col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}

// ParsePosition parses "r,c", "(r, c)" or "r c".
func ParsePosition(s string) (Position, error) {
	in := strings.TrimSpace(s)
	in = strings.TrimPrefix(in, "(")
	in = strings.TrimSuffix(in, ")")
	fields := strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrParsePosition, s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: row: %v", ErrParsePosition, s, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: col: %v", ErrParsePosition, s, err)
	}

	return Position{Row: row, Col: col}, nil
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the hooks observed by a search. Hooks never change its outcome.
type Options struct {
	// OnEnqueue is called when a square is discovered and pushed on the frontier,
	// with its distance from start. The start square is reported at depth 0.
	OnEnqueue func(p Position, depth int)

	// OnDequeue is called immediately before a square's neighbors are generated.
	OnDequeue func(p Position, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(Position, int) {},
		OnDequeue: func(Position, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of Search:
//   - Distance: minimum number of moves.
//   - Path: one shortest path, Path[0] == Start and Path[Distance] == Target.
//   - Explored: number of squares dequeued before the target was found.
type Result struct {
	Start    Position   `json:"start"`
	Target   Position   `json:"target"`
	Distance int        `json:"distance"`
	Path     []Position `json:"path"`
	Explored int        `json:"explored"`
}

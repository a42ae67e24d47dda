// Package service memoises knight searches behind a bounded LRU cache.
//
// Searches are translation invariant, so results are cached by the offset
// target-start and paths are stored relative to the origin. A query from
// (100,100) to (107,107) is served from the entry computed for (0,0)→(7,7).
//
// Service is safe for concurrent use; each cache miss runs an independent
// single-threaded search.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/knightmoves/knight"
)

// ErrOutOfRange is returned when a coordinate exceeds MaxCoordinate or the
// offset between start and target does not fit in an int.
var ErrOutOfRange = errors.New("service: coordinates out of range")

// Options configures a Service.
type Options struct {
	// CacheSize is the number of offsets kept; 0 disables caching.
	CacheSize int
	// MaxCoordinate caps |row| and |col| of start and target; 0 means no cap.
	MaxCoordinate int
	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// entry is a cached result for one offset. path is nil until a path query
// for that offset has run; it is stored relative to the origin.
type entry struct {
	distance int
	path     []knight.Position
}

// Service answers distance, path and validity queries.
type Service struct {
	cache    *lru.Cache[knight.Position, entry]
	maxCoord int
	logger   *slog.Logger
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// New builds a Service. Returns an error for negative sizes.
func New(opts Options) (*Service, error) {
	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("service: cache size cannot be negative (%d)", opts.CacheSize)
	}
	if opts.MaxCoordinate < 0 {
		return nil, fmt.Errorf("service: max coordinate cannot be negative (%d)", opts.MaxCoordinate)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{maxCoord: opts.MaxCoordinate, logger: logger}
	if opts.CacheSize > 0 {
		c, err := lru.New[knight.Position, entry](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("service: create cache: %w", err)
		}
		s.cache = c
	}

	return s, nil
}

// Distance returns the minimum number of moves from start to target.
func (s *Service) Distance(start, target knight.Position) (int, error) {
	delta, err := s.offset(start, target)
	if err != nil {
		return 0, err
	}
	if e, ok := s.lookup(delta, false); ok {
		return e.distance, nil
	}

	d := knight.Distance(start, target)
	s.logger.Debug("distance computed", "start", start.String(), "target", target.String(), "distance", d)
	if s.cache != nil {
		// never drop a cached path in favour of a bare distance
		s.cache.ContainsOrAdd(delta, entry{distance: d})
	}

	return d, nil
}

// Path returns one shortest path from start to target.
// The returned slice is owned by the caller.
func (s *Service) Path(start, target knight.Position) ([]knight.Position, error) {
	delta, err := s.offset(start, target)
	if err != nil {
		return nil, err
	}
	if e, ok := s.lookup(delta, true); ok {
		return translate(e.path, start), nil
	}

	res := knight.Search(start, target)
	s.logger.Debug("path computed",
		"start", start.String(), "target", target.String(),
		"distance", res.Distance, "explored", res.Explored)
	if s.cache != nil {
		rel := make([]knight.Position, len(res.Path))
		for i, p := range res.Path {
			rel[i] = p.Sub(start)
		}
		s.cache.Add(delta, entry{distance: res.Distance, path: rel})
	}

	return res.Path, nil
}

// Valid reports whether p lies on a board of the given size
// (knight.UnboundedSize for the unbounded board).
func (s *Service) Valid(p knight.Position, size int) (bool, error) {
	b, err := knight.BoardOfSize(size)
	if err != nil {
		return false, err
	}

	return knight.IsValid(p, b), nil
}

// Stats returns a snapshot of cache counters.
func (s *Service) Stats() Stats {
	st := Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
	if s.cache != nil {
		st.Size = s.cache.Len()
	}

	return st
}

// lookup returns the cached entry for delta. A distance-only entry is a miss
// when needPath is set.
func (s *Service) lookup(delta knight.Position, needPath bool) (entry, bool) {
	if s.cache != nil {
		if e, ok := s.cache.Get(delta); ok && (!needPath || e.path != nil) {
			s.hits.Add(1)
			return e, true
		}
	}
	s.misses.Add(1)

	return entry{}, false
}

// offset returns target-start after bounding every coordinate by maxCoord.
// A difference whose magnitude does not fit in an int is out of range even without a cap.
func (s *Service) offset(start, target knight.Position) (knight.Position, error) {
	if s.maxCoord > 0 {
		for _, v := range [4]int{start.Row, start.Col, target.Row, target.Col} {
			if v > s.maxCoord || v < -s.maxCoord {
				return knight.Position{}, fmt.Errorf("%w: coordinate %d exceeds %d", ErrOutOfRange, v, s.maxCoord)
			}
		}
	}
	row, okRow := sub(target.Row, start.Row)
	col, okCol := sub(target.Col, start.Col)
	if !okRow || !okCol {
		return knight.Position{}, fmt.Errorf("%w: offset from %v to %v overflows", ErrOutOfRange, start, target)
	}

	return knight.Position{Row: row, Col: col}, nil
}

// sub returns a-b and false when the result overflows or has no
// representable magnitude (math.MinInt).
func sub(a, b int) (int, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) || d == math.MinInt {
		return 0, false
	}

	return d, true
}

func translate(rel []knight.Position, by knight.Position) []knight.Position {
	out := make([]knight.Position, len(rel))
	for i, p := range rel {
		out[i] = p.Add(by)
	}

	return out
}

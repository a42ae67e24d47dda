package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/knightmoves/internal/service"
	"github.com/katalvlaran/knightmoves/knight"
)

// jsonPos encodes a Position as [row, col].
type jsonPos [2]int

func toJSON(p knight.Position) jsonPos { return jsonPos{p.Row, p.Col} }

type distanceResponse struct {
	From     jsonPos `json:"from"`
	To       jsonPos `json:"to"`
	Distance int     `json:"distance"`
}

type pathResponse struct {
	From     jsonPos   `json:"from"`
	To       jsonPos   `json:"to"`
	Distance int       `json:"distance"`
	Path     []jsonPos `json:"path"`
}

type validResponse struct {
	Pos   jsonPos `json:"pos"`
	Size  int     `json:"size"`
	Valid bool    `json:"valid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleDistance(c *gin.Context) {
	from, to, ok := pair(c)
	if !ok {
		return
	}
	d, err := s.q.Distance(from, to)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, distanceResponse{From: toJSON(from), To: toJSON(to), Distance: d})
}

func (s *Server) handlePath(c *gin.Context) {
	from, to, ok := pair(c)
	if !ok {
		return
	}
	path, err := s.q.Path(from, to)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := pathResponse{From: toJSON(from), To: toJSON(to), Distance: len(path) - 1, Path: make([]jsonPos, len(path))}
	for i, p := range path {
		out.Path[i] = toJSON(p)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleValid(c *gin.Context) {
	p, ok := position(c, "pos")
	if !ok {
		return
	}
	size := knight.UnboundedSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, fmt.Errorf("size: %w", err))
			return
		}
		size = n
	}
	valid, err := s.q.Valid(p, size)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, validResponse{Pos: toJSON(p), Size: size, Valid: valid})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.q.Stats())
}

// fail maps backend errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOutOfRange),
		errors.Is(err, knight.ErrInvalidBoardSize),
		errors.Is(err, knight.ErrParsePosition):
		badRequest(c, err)
	default:
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// pair reads the from/to query parameters, answering 400 on failure.
func pair(c *gin.Context) (from, to knight.Position, ok bool) {
	if from, ok = position(c, "from"); !ok {
		return
	}
	to, ok = position(c, "to")

	return
}

func position(c *gin.Context, key string) (knight.Position, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		badRequest(c, fmt.Errorf("missing query parameter %q", key))
		return knight.Position{}, false
	}
	p, err := knight.ParsePosition(raw)
	if err != nil {
		badRequest(c, fmt.Errorf("%s: %w", key, err))
		return knight.Position{}, false
	}

	return p, true
}

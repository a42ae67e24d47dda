package knight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightmoves/knight"
)

func TestIsValid_Unbounded(t *testing.T) {
	b := knight.Unbounded()
	assert.False(t, b.IsBounded())
	assert.Equal(t, knight.UnboundedSize, b.Size())
	assert.Equal(t, "unbounded", b.String())
	for _, p := range []knight.Position{pos(0, 0), pos(-1, -1), pos(1<<40, -(1 << 40))} {
		assert.True(t, knight.IsValid(p, b))
	}
	var zero knight.Board
	assert.True(t, knight.IsValid(pos(-9, 9), zero), "zero Board is unbounded")
}

func TestIsValid_Bounded(t *testing.T) {
	b, err := knight.Bounded(8)
	require.NoError(t, err)
	assert.True(t, b.IsBounded())
	assert.Equal(t, 8, b.Size())
	assert.Equal(t, "8x8", b.String())

	assert.True(t, knight.IsValid(pos(0, 0), b))
	assert.True(t, knight.IsValid(pos(7, 7), b))
	assert.True(t, knight.IsValid(pos(0, 7), b))
	assert.False(t, knight.IsValid(pos(8, 0), b))
	assert.False(t, knight.IsValid(pos(0, 8), b))
	assert.False(t, knight.IsValid(pos(-1, 3), b))
	assert.False(t, knight.IsValid(pos(3, -1), b))
}

func TestBounded_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -8} {
		_, err := knight.Bounded(n)
		assert.ErrorIs(t, err, knight.ErrInvalidBoardSize)
	}
}

func TestBoardOfSize(t *testing.T) {
	b, err := knight.BoardOfSize(knight.UnboundedSize)
	require.NoError(t, err)
	assert.False(t, b.IsBounded())

	b, err = knight.BoardOfSize(1)
	require.NoError(t, err)
	assert.True(t, knight.IsValid(pos(0, 0), b))
	assert.False(t, knight.IsValid(pos(0, 1), b))

	_, err = knight.BoardOfSize(0)
	assert.ErrorIs(t, err, knight.ErrInvalidBoardSize)
	_, err = knight.BoardOfSize(-2)
	assert.ErrorIs(t, err, knight.ErrInvalidBoardSize)
}

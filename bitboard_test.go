package bitboard

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	var b Board
	assert.Equal(t, Board(0), New())
	assert.Equal(t, New(), b)
	assert.Equal(t, uint32(0), New().Uint32())
}

func TestToggleInvolution(t *testing.T) {
	starts := []Board{0, ^Board(0), 0x55555555, Board(rand.Uint32())}
	for _, start := range starts {
		for i := uint(0); i < Squares; i++ {
			once, err := start.Toggle(i)
			require.NoError(t, err)
			twice, err := once.Toggle(i)
			require.NoError(t, err)
			assert.Equalf(t, start, twice, "square %v from %v", i, start)
		}
	}
}

func TestToggleFlipsOnlyOneBit(t *testing.T) {
	start := Board(rand.Uint32())
	for i := uint(0); i < Squares; i++ {
		toggled, err := start.Toggle(i)
		require.NoError(t, err)

		assert.Equal(t, !start.IsSet(i), toggled.IsSet(i))
		assert.Equal(t, uint32(1)<<i, start.Uint32()^toggled.Uint32())
	}
}

func TestToggleOutOfRange(t *testing.T) {
	tests := map[string]uint{
		"first_invalid": 32,
		"40":            40,
		"max":           ^uint(0),
	}
	for name, square := range tests {
		t.Run(name, func(t *testing.T) {
			b := Board(0x80000001)
			actual, err := b.Toggle(square)

			assert.ErrorIs(t, err, ErrInvalidSquare)
			assert.Equal(t, b, actual)
			assert.False(t, b.IsSet(square))
		})
	}
}

func TestDocExample(t *testing.T) {
	b := New()

	b, err := b.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, Board(1), b)

	b, err = b.Toggle(31)
	require.NoError(t, err)
	assert.Equal(t, Board(0x80000001), b)

	b, err = b.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, Board(0x80000000), b)
	assert.Equal(t, "2147483648", b.String())
}

package bitboard

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Rows    = 8
	Cols    = 4
	Squares = Rows * Cols
)

var ErrInvalidSquare = errors.New("invalid square")

// Board is a 32 square bitboard, one bit per square.
// Zero value is an empty board.
type Board uint32

func New() Board {
	return 0
}

// Flips the bit of the given square and returns the resulting board.
// The receiver is never modified, so on error the caller keeps the previous board.
func (b Board) Toggle(square uint) (Board, error) {
	if err := checkBounds(square); err != nil {
		return b, err
	}
	return b ^ getBit(square), nil
}

// Reports whether the square is set. Squares out of range are never set.
func (b Board) IsSet(square uint) bool {
	if checkBounds(square) != nil {
		return false
	}
	return b&getBit(square) != 0
}

func (b Board) Uint32() uint32 {
	return uint32(b)
}

func (b Board) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

func getBit(square uint) Board {
	return Board(1) << square
}

func checkBounds(square uint) error {
	if square >= Squares {
		return fmt.Errorf("%w: index out of range [%v] with length %v", ErrInvalidSquare, square, Squares)
	}
	return nil
}

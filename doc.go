/*
32 square bitboard, edited one square at a time and shown as an 8x4 grid.

	b := bitboard.New()	// 0
	b, _ = b.Toggle(0)	// 1
	b, _ = b.Toggle(31)	// 2147483649
	b, _ = b.Toggle(0)	// 2147483648
	b.Toggle(40)		// ErrInvalidSquare, b is unchanged

A Session drives the same toggles from text commands, one per line,
until the line "done" is read:

	s := bitboard.NewSession()
	final, err := s.Run(ctx, os.Stdin, os.Stdout)
*/
package bitboard

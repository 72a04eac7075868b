package bitboard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DoneCommand ends a session.
const DoneCommand = "done"

var (
	ErrParse  = errors.New("not a square index")
	ErrRange  = errors.New("square index out of range")
	ErrStream = errors.New("read command")
)

// ParseError is returned for input that is not a non-negative base 10 integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrParse, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ParseSquare parses a trimmed command into a square index in [0, Squares).
func ParseSquare(text string) (uint, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	if n >= Squares {
		return 0, fmt.Errorf("%w: %v", ErrRange, n)
	}
	return uint(n), nil
}

type State int

const (
	Prompting State = iota
	Done
)

func (s State) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Option func(*Session)

func WithHighlighter(h Highlighter) Option {
	return func(s *Session) {
		if h != nil {
			s.highlighter = h
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session edits a single board from line based commands until DoneCommand is read.
type Session struct {
	board       Board
	state       State
	highlighter Highlighter
	log         logrus.FieldLogger
}

func NewSession(opts ...Option) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		board:       New(),
		state:       Prompting,
		highlighter: Plain,
		log:         discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Board() Board {
	return s.board
}

func (s *Session) State() State {
	return s.state
}

// Apply runs one trimmed command line against the session.
// A non-nil error means the line was rejected and the board is unchanged.
func (s *Session) Apply(line string) (State, error) {
	if s.state == Done {
		return s.state, nil
	}

	line = strings.TrimSpace(line)
	if line == DoneCommand {
		s.state = Done
		s.log.WithField("board", s.board.Uint32()).Debug("session done")
		return s.state, nil
	}

	square, err := ParseSquare(line)
	if err != nil {
		s.log.WithFields(logrus.Fields{"input": line, "error": err}).Debug("command rejected")
		return s.state, err
	}

	board, err := s.board.Toggle(square)
	if err != nil {
		s.log.WithFields(logrus.Fields{"square": square, "error": err}).Debug("toggle failed")
		return s.state, err
	}
	s.board = board
	s.log.WithFields(logrus.Fields{"square": square, "board": s.board.Uint32()}).Debug("square toggled")
	return s.state, nil
}

// Run renders the board, then reads commands from in until DoneCommand,
// re-rendering after every toggle. The final board is reported on out and returned.
// Failing to read a command, including end of input, aborts with ErrStream.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (Board, error) {
	r := bufio.NewReader(in)
	render := true

	for s.state == Prompting {
		if err := ctx.Err(); err != nil {
			return s.board, err
		}

		if render {
			if err := s.render(out); err != nil {
				return s.board, err
			}
		}

		line, err := readLine(r)
		if err != nil {
			return s.board, err
		}

		_, err = s.Apply(line)
		render = err == nil
		if err != nil {
			if _, werr := fmt.Fprintln(out, rejectMessage(err)); werr != nil {
				return s.board, fmt.Errorf("write message: %w", werr)
			}
		}
	}

	if _, err := fmt.Fprintf(out, "Bitboard: %v\n", s.board); err != nil {
		return s.board, fmt.Errorf("write result: %w", err)
	}
	return s.board, nil
}

func (s *Session) render(out io.Writer) error {
	if err := Render(out, s.board, s.highlighter); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	return nil
}

// readLine returns the next line, including a last line without a newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		return line, nil
	}
	return "", fmt.Errorf("%w: %w", ErrStream, err)
}

func rejectMessage(err error) string {
	var perr *ParseError
	switch {
	case errors.As(err, &perr):
		return fmt.Sprintf("Problem reading square index: %v", perr.Err)
	case errors.Is(err, ErrRange):
		return "Please enter a valid square index"
	default:
		return "Problem toggling board"
	}
}

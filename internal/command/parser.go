// Package command runs the line-oriented batch protocol against an engine.
package command

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// CommandType identifies a batch command by its letter
type CommandType byte

const (
	CmdNewBatch       CommandType = 'B'
	CmdNewInteractive CommandType = 'I'
	CmdMove           CommandType = 'm'
	CmdGoldenMove     CommandType = 'g'
	CmdBusyFields     CommandType = 'b'
	CmdFreeFields     CommandType = 'f'
	CmdGoldenPossible CommandType = 'q'
	CmdBoard          CommandType = 'p'
)

// arity is the number of arguments each command takes.
var arity = map[CommandType]int{
	CmdNewBatch:       4,
	CmdNewInteractive: 4,
	CmdMove:           3,
	CmdGoldenMove:     3,
	CmdBusyFields:     1,
	CmdFreeFields:     1,
	CmdGoldenPossible: 1,
	CmdBoard:          0,
}

const (
	maxArgDigits = 10
	maxArgValue  = 1<<32 - 1
	separators   = " \t\v\f\r"
)

var (
	ErrLeadingWhitespace = errors.New("line starts with whitespace")
	ErrControlCharacter  = errors.New("line contains a control character")
	ErrUnterminated      = errors.New("last line is not terminated by a newline")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrBadArgument       = errors.New("argument is not a number in range")
	ErrArgumentCount     = errors.New("wrong number of arguments")
)

func (t CommandType) String() string {
	return string(rune(t))
}

// Command is one parsed, well-formed line.
type Command struct {
	Type CommandType
	Args []uint32
}

// Line is one input line and what it parsed to.
type Line struct {
	Number int
	// Skip is set for empty and comment lines, which produce no output.
	Skip    bool
	Command Command
	// Err is set for malformed lines.
	Err error
}

// ParseLine parses the text of one line without its trailing newline.
// terminated reports whether the line ended in '\n' rather than at EOF.
func ParseLine(text []byte, terminated bool) (Command, bool, error) {
	if len(text) == 0 || text[0] == '#' {
		return Command{}, true, nil
	}
	if isSeparator(text[0]) {
		return Command{}, false, ErrLeadingWhitespace
	}
	if !terminated {
		return Command{}, false, ErrUnterminated
	}
	for _, c := range text {
		if c < ' ' && !isSeparator(c) {
			return Command{}, false, fmt.Errorf("byte 0x%02x: %w", c, ErrControlCharacter)
		}
	}

	fields := bytes.FieldsFunc(text, func(r rune) bool {
		return r < 0x80 && isSeparator(byte(r))
	})
	if len(fields[0]) != 1 {
		return Command{}, false, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
	cmd := Command{Type: CommandType(fields[0][0])}
	want, ok := arity[cmd.Type]
	if !ok {
		return Command{}, false, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}

	for _, f := range fields[1:] {
		v, err := parseArg(f)
		if err != nil {
			return Command{}, false, err
		}
		cmd.Args = append(cmd.Args, v)
	}
	if len(cmd.Args) != want {
		return Command{}, false, fmt.Errorf("%s takes %d, got %d: %w", cmd.Type, want, len(cmd.Args), ErrArgumentCount)
	}
	return cmd, false, nil
}

func parseArg(f []byte) (uint32, error) {
	if len(f) > maxArgDigits {
		return 0, fmt.Errorf("%q: %w", f, ErrBadArgument)
	}
	for _, c := range f {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q: %w", f, ErrBadArgument)
		}
	}
	v, err := strconv.ParseUint(string(f), 10, 64)
	if err != nil || v > maxArgValue {
		return 0, fmt.Errorf("%q: %w", f, ErrBadArgument)
	}
	return uint32(v), nil
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}

// Reader splits input into numbered lines of any length.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next line, or io.EOF once the input is exhausted.
func (lr *Reader) Next() (Line, error) {
	text, err := lr.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Line{}, err
	}
	if len(text) == 0 {
		return Line{}, io.EOF
	}

	terminated := text[len(text)-1] == '\n'
	if terminated {
		text = text[:len(text)-1]
	}
	lr.line++

	cmd, skip, perr := ParseLine(text, terminated)
	return Line{Number: lr.line, Skip: skip, Command: cmd, Err: perr}, nil
}

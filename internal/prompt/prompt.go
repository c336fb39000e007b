// Package prompt asks the operator a yes/no question before any file is written.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Question is the text shown before reading the answer.
const Question = "Would you like to proceed? (y/n): "

// ErrNoAnswer is returned when input ends before any answer was typed.
var ErrNoAnswer = errors.New("no answer: input closed")

// Confirmer answers a single yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// Terminal reads the answer as one line from in after writing the question to out.
// After a canceled Confirm a read may still be pending on in, so the Terminal
// must not be used again.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal confirmer.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm reports true only for a case-insensitive "y".
// End of input before any answer returns ErrNoAnswer. A canceled ctx stops the wait.
func (t *Terminal) Confirm(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := fmt.Fprint(t.out, Question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	type reply struct {
		line string
		err  error
	}

	replies := make(chan reply, 1)
	go func() {
		line, err := t.in.ReadString('\n')
		replies <- reply{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case r := <-replies:
		if r.err != nil {
			if !errors.Is(r.err, io.EOF) {
				return false, fmt.Errorf("failed to read answer: %w", r.err)
			}
			if r.line == "" {
				return false, ErrNoAnswer
			}
		}

		answer := strings.TrimRight(r.line, "\r\n")

		return strings.EqualFold(answer, "y"), nil
	}
}

// Always confirms without asking.
type Always struct{}

// Confirm always returns true.
func (Always) Confirm(ctx context.Context) (bool, error) {
	return true, ctx.Err()
}

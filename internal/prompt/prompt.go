// Package prompt implements the ask-until-valid loop shared by both drill
// programs: print a question, read one line, and repeat with a fixed
// rejection message until the answer parses.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/termdrills/internal/errors"
	"github.com/agbru/termdrills/internal/logging"
)

// Observer is notified of prompt activity, typically to feed metrics.
type Observer interface {
	// Asked is called each time a question is printed.
	Asked(question string)
	// Rejected is called each time an answer fails validation.
	Rejected(question string, reason error)
}

// Prompter reads line-oriented answers from an input stream and writes
// questions to an output stream.
type Prompter struct {
	reader   *bufio.Reader
	out      io.Writer
	logger   logging.Logger
	observer Observer
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithLogger sets the logger used to record rejected answers.
func WithLogger(l logging.Logger) Option {
	return func(p *Prompter) { p.logger = l }
}

// WithObserver registers an observer for asked and rejected prompts.
func WithObserver(o Observer) Option {
	return func(p *Prompter) { p.observer = o }
}

// New creates a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask prints question without a trailing newline and returns the next line
// of input with its line terminator removed. A final line that ends at EOF
// without a terminator is still returned; EOF with no data yields an
// apperrors.InputError wrapping io.EOF.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if p.observer != nil {
		p.observer.Asked(question)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", apperrors.InputError{Prompt: question, Cause: err}
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Field describes one validated question.
type Field[T any] struct {
	// Question is printed before every attempt.
	Question string
	// Rejection is printed on its own line after an invalid answer.
	Rejection string
	// Parse converts a raw answer, returning an error to ask again.
	Parse func(string) (T, error)
}

// AskUntil asks f.Question until f.Parse accepts the answer. Invalid answers
// are never returned as errors: they print f.Rejection and ask again. The
// returned error is either a read failure or the context's error.
func AskUntil[T any](ctx context.Context, p *Prompter, f Field[T]) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		answer, err := p.Ask(f.Question)
		if err != nil {
			return zero, err
		}
		value, err := f.Parse(answer)
		if err == nil {
			return value, nil
		}
		p.logger.Debug("answer rejected",
			logging.String("question", f.Question),
			logging.String("answer", answer),
			logging.Err(err),
		)
		if p.observer != nil {
			p.observer.Rejected(f.Question, err)
		}
		fmt.Fprintln(p.out, f.Rejection)
	}
}

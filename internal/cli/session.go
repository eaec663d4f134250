package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/termdrills/internal/logging"
	"github.com/agbru/termdrills/internal/prompt"
	"github.com/agbru/termdrills/internal/sequence"
	"github.com/agbru/termdrills/internal/wordfreq"
)

const tracerName = "github.com/agbru/termdrills/internal/cli"

// Recorder receives the size and duration of every computation.
type Recorder interface {
	ObserveComputation(items int, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveComputation(int, time.Duration) {}

// Session drives one interactive program over a Prompter.
type Session struct {
	prompter          *prompt.Prompter
	out               io.Writer
	logger            logging.Logger
	recorder          Recorder
	progressOut       io.Writer
	progressThreshold int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger for computation events.
func WithSessionLogger(l logging.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithRecorder sets the computation recorder.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithProgress draws a spinner on w while generating sequences of at least
// threshold terms. A nil writer or a threshold <= 0 disables it.
func WithProgress(w io.Writer, threshold int) SessionOption {
	return func(s *Session) {
		s.progressOut = w
		s.progressThreshold = threshold
	}
}

// NewSession creates a Session writing results to out.
func NewSession(p *prompt.Prompter, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		prompter: p,
		out:      out,
		logger:   logging.Nop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var termCountField = prompt.Field[int]{
	Question:  TermCountQuestion,
	Rejection: TermCountRejection,
	Parse:     sequence.ParseTermCount,
}

var sentenceField = prompt.Field[string]{
	Question:  SentenceQuestion,
	Rejection: SentenceRejection,
	Parse:     wordfreq.ParseSentence,
}

// WantsAnother reports whether a repeat answer is "yes", ignoring case and
// surrounding whitespace.
func WantsAnother(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

// RunSequence asks for a term count, prints the sequence and repeats while
// the user answers "yes", then prints the farewell.
func (s *Session) RunSequence(ctx context.Context) error {
	for {
		n, err := prompt.AskUntil(ctx, s.prompter, termCountField)
		if err != nil {
			return err
		}

		seq, err := s.generate(ctx, n)
		if err != nil {
			return err
		}
		DisplaySequence(s.out, seq)

		answer, err := s.prompter.Ask(RepeatQuestion)
		if err != nil {
			return err
		}
		if !WantsAnother(answer) {
			fmt.Fprintln(s.out, Farewell)
			return nil
		}
	}
}

// RunFrequency asks for one sentence and prints its word frequencies.
func (s *Session) RunFrequency(ctx context.Context) error {
	sentence, err := prompt.AskUntil(ctx, s.prompter, sentenceField)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "wordfreq.calculate")
	start := time.Now()
	freq := wordfreq.Calculate(sentence)
	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int("words.distinct", freq.Len()), attribute.Int("words.total", freq.Total()))
	span.End()

	s.recorder.ObserveComputation(freq.Total(), elapsed)
	s.logger.Debug("sentence analysed",
		logging.Int("words", freq.Total()),
		logging.Int("distinct", freq.Len()),
		logging.Float64("seconds", elapsed.Seconds()),
	)

	DisplayFrequencies(s.out, freq)
	return nil
}

// generate builds the sequence, showing a spinner for large counts.
func (s *Session) generate(ctx context.Context, n int) (sequence.Sequence, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sequence.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("terms", n))

	var progress sequence.ProgressFunc
	if s.progressOut != nil && s.progressThreshold > 0 && n >= s.progressThreshold {
		sp := newSpinner(s.progressOut)
		sp.UpdateSuffix(FormatProgressSuffix(0))
		sp.Start()
		defer sp.Stop()
		progress = func(p float64) { sp.UpdateSuffix(FormatProgressSuffix(p)) }
	}

	start := time.Now()
	seq, err := sequence.GenerateContext(ctx, n, progress)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.recorder.ObserveComputation(n, elapsed)
	s.logger.Debug("sequence generated",
		logging.Int("terms", n),
		logging.Float64("seconds", elapsed.Seconds()),
	)
	return seq, nil
}

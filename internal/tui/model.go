package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termdrills/internal/cli"
	"github.com/agbru/termdrills/internal/config"
	apperrors "github.com/agbru/termdrills/internal/errors"
	"github.com/agbru/termdrills/internal/format"
	"github.com/agbru/termdrills/internal/logging"
	"github.com/agbru/termdrills/internal/sequence"
	"github.com/agbru/termdrills/internal/wordfreq"
)

// Recorder receives prompt and computation events, typically a
// metrics.Session.
type Recorder interface {
	Asked(question string)
	Rejected(question string, reason error)
	ObserveComputation(items int, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Asked(string) {}

func (nopRecorder) Rejected(string, error) {}

func (nopRecorder) ObserveComputation(int, time.Duration) {}

// Options configures a drill screen.
type Options struct {
	Program  config.Program
	Version  string
	Recorder Recorder
	Logger   logging.Logger
	Input    io.Reader
	Output   io.Writer
}

type stage int

const (
	stageAsk stage = iota
	stageComputing
	stageConfirm
	stageDone
)

// sequenceMsg carries a generated sequence back to the model.
type sequenceMsg struct {
	n       int
	seq     sequence.Sequence
	elapsed time.Duration
	err     error
}

// frequencyMsg carries a computed frequency table back to the model.
type frequencyMsg struct {
	freq    *wordfreq.Frequencies
	elapsed time.Duration
}

// Model is the bubbletea model shared by both drills.
type Model struct {
	header HeaderModel
	input  textinput.Model
	help   help.Model
	keymap KeyMap

	ctx      context.Context
	program  config.Program
	recorder Recorder
	logger   logging.Logger

	stage     stage
	question  string
	rejection string
	result    []string
	elapsed   time.Duration
	farewell  bool
	err       error
	width     int
}

// NewModel creates the model for opts.Program and records the first question.
func NewModel(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	m := Model{
		header:   NewHeaderModel(opts.Program, opts.Version),
		input:    ti,
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		ctx:      ctx,
		program:  opts.Program,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
	if m.recorder == nil {
		m.recorder = nopRecorder{}
	}
	if m.logger == nil {
		m.logger = logging.Nop()
	}
	m.ask()
	return m
}

// Err returns the error that ended the screen, if any.
func (m Model) Err() error { return m.err }

// firstQuestion returns the opening question of the drill.
func (m Model) firstQuestion() string {
	if m.program == config.ProgramFrequency {
		return cli.SentenceQuestion
	}
	return cli.TermCountQuestion
}

// ask opens the answer field for the drill's question.
func (m *Model) ask() {
	m.stage = stageAsk
	m.question = m.firstQuestion()
	m.input.Reset()
	m.recorder.Asked(m.question)
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case sequenceMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.recorder.ObserveComputation(msg.n, msg.elapsed)
		m.logger.Debug("sequence generated",
			logging.Int("terms", msg.n),
			logging.Float64("seconds", msg.elapsed.Seconds()),
		)
		m.result = []string{format.JoinTerms(msg.seq)}
		m.elapsed = msg.elapsed
		m.stage = stageConfirm
		m.question = cli.RepeatQuestion
		m.recorder.Asked(m.question)
		return m, nil

	case frequencyMsg:
		m.recorder.ObserveComputation(msg.freq.Total(), msg.elapsed)
		m.logger.Debug("sentence analysed",
			logging.Int("words", msg.freq.Total()),
			logging.Int("distinct", msg.freq.Len()),
		)
		m.result = m.result[:0]
		for _, e := range msg.freq.Entries() {
			m.result = append(m.result, format.FrequencyLine(e.Word, e.Count))
		}
		m.elapsed = msg.elapsed
		m.stage = stageDone
		return m, nil
	}

	if m.stage == stageAsk {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.err = context.Canceled
		return m, tea.Quit
	}

	switch m.stage {
	case stageAsk:
		if key.Matches(msg, m.keymap.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stageConfirm:
		switch {
		case key.Matches(msg, m.keymap.Yes):
			m.result = nil
			m.ask()
			return m, textinput.Blink
		case key.Matches(msg, m.keymap.No):
			m.farewell = true
			m.stage = stageDone
			return m, tea.Quit
		}

	case stageDone:
		if key.Matches(msg, m.keymap.Submit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// submit validates the current answer and starts the computation.
func (m Model) submit() (tea.Model, tea.Cmd) {
	answer := m.input.Value()

	if m.program == config.ProgramFrequency {
		sentence, err := wordfreq.ParseSentence(answer)
		if err != nil {
			return m.reject(cli.SentenceRejection, err), nil
		}
		m.rejection = ""
		m.stage = stageComputing
		return m, computeFrequencyCmd(sentence)
	}

	n, err := sequence.ParseTermCount(answer)
	if err != nil {
		return m.reject(cli.TermCountRejection, err), nil
	}
	m.rejection = ""
	m.stage = stageComputing
	return m, generateSequenceCmd(m.ctx, n)
}

func (m Model) reject(message string, reason error) Model {
	m.recorder.Rejected(m.question, reason)
	m.logger.Debug("answer rejected",
		logging.String("question", m.question),
		logging.Err(reason),
	)
	m.rejection = strings.TrimSpace(message)
	m.input.Reset()
	return m
}

// generateSequenceCmd builds the sequence off the UI loop.
func generateSequenceCmd(ctx context.Context, n int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		seq, err := sequence.GenerateContext(ctx, n, nil)
		return sequenceMsg{n: n, seq: seq, elapsed: time.Since(start), err: err}
	}
}

// computeFrequencyCmd counts the words of sentence off the UI loop.
func computeFrequencyCmd(sentence string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		freq := wordfreq.Calculate(sentence)
		return frequencyMsg{freq: freq, elapsed: time.Since(start)}
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	switch m.stage {
	case stageAsk, stageComputing:
		b.WriteString(questionStyle.Render(m.question))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.rejection != "" {
			b.WriteString(rejectionStyle.Render(m.rejection))
			b.WriteString("\n")
		}
		if m.stage == stageComputing {
			b.WriteString(captionStyle.Render("Computing..."))
			b.WriteString("\n")
		}
	case stageConfirm, stageDone:
		b.WriteString(m.resultPanel())
		b.WriteString("\n")
		if m.stage == stageConfirm {
			b.WriteString(questionStyle.Render(m.question))
			b.WriteString("\n")
		}
		if m.farewell {
			b.WriteString(farewellStyle.Render(cli.Farewell))
			b.WriteString("\n")
		}
	}

	body := b.String()
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), "", body, m.helpView())
}

// resultPanel frames the latest result with its caption.
func (m Model) resultPanel() string {
	caption := strings.TrimSpace(cli.SequenceHeader)
	if m.program == config.ProgramFrequency {
		caption = strings.TrimSpace(cli.FrequencyHeader)
	}
	lines := make([]string, 0, len(m.result)+2)
	lines = append(lines, titleStyle.Render(caption))
	for _, l := range m.result {
		lines = append(lines, resultStyle.Render(l))
	}
	lines = append(lines, captionStyle.Render(fmt.Sprintf("computed in %s", format.FormatExecutionDuration(m.elapsed))))

	style := panelStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) helpView() string {
	if m.farewell {
		return ""
	}
	switch m.stage {
	case stageConfirm:
		return m.help.View(confirmKeys{m.keymap})
	case stageDone:
		return m.help.View(doneKeys{m.keymap})
	default:
		return m.help.View(inputKeys{m.keymap})
	}
}

// Run shows the drill screen until the user finishes or quits. Quitting
// early, or cancellation of ctx, returns a context error.
func Run(ctx context.Context, opts Options) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, opts)
	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	finalModel, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.WrapError(err, "running full-screen mode")
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil
	}
	// The alternate screen is gone once the program exits.
	if m.farewell {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, cli.Farewell)
	}
	return m.err
}

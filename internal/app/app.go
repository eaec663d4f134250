// Package app wires configuration, logging, metrics and the two drill
// sessions into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/agbru/termdrills/internal/cli"
	"github.com/agbru/termdrills/internal/config"
	apperrors "github.com/agbru/termdrills/internal/errors"
	"github.com/agbru/termdrills/internal/logging"
	"github.com/agbru/termdrills/internal/metrics"
	"github.com/agbru/termdrills/internal/prompt"
	"github.com/agbru/termdrills/internal/tui"
	"github.com/agbru/termdrills/internal/ui"
)

// Application represents one run of a drill program.
type Application struct {
	Config     config.AppConfig
	ErrWriter  io.Writer
	isTerminal func(v any) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithTerminalCheck replaces the function that decides whether a stream is
// an interactive terminal.
func WithTerminalCheck(f func(v any) bool) AppOption {
	return func(a *Application) { a.isTerminal = f }
}

// New creates a new Application for program by parsing command-line
// arguments. args[0] is the program name.
func New(program config.Program, args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, isTerminal: isTerminal}
	for _, opt := range opts {
		opt(app)
	}

	programName := program.String()
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, program, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the drill reading answers from in and writing the protocol to
// out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	program := a.Config.Program.String()
	logger, err := logging.New(a.ErrWriter, program, a.Config.EffectiveLogLevel(), a.Config.LogFormat)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)
	session := metrics.NewSession(program)

	logger.Debug("session starting",
		logging.String("version", Version),
		logging.Bool("tui", a.Config.TUI),
		logging.String("theme", a.Config.Theme),
	)

	if a.Config.TUI && !a.isTerminal(in) {
		logger.Warn("full-screen mode needs a terminal on stdin, using line mode")
	}
	if a.Config.TUI && a.isTerminal(in) {
		err = a.runTUI(ctx, in, out, logger, session)
	} else {
		err = a.runLines(ctx, in, out, logger, session)
	}

	code := apperrors.ExitCode(err)
	if err != nil {
		logger.Debug("session ended", logging.Err(err), logging.Int("exit_code", code))
		if !apperrors.IsContextError(err) {
			fmt.Fprintf(a.ErrWriter, "\nError: %v\n", err)
		}
	}

	if a.Config.MetricsFile != "" {
		werr := apperrors.WrapError(session.WriteTextfile(a.Config.MetricsFile), "writing metrics file %s", a.Config.MetricsFile)
		if werr != nil {
			logger.Error("writing metrics file", werr, logging.String("path", a.Config.MetricsFile))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", werr)
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		} else {
			logger.Info("metrics written", logging.String("path", a.Config.MetricsFile))
		}
	}
	return code
}

// runLines drives the line-oriented session.
func (a *Application) runLines(ctx context.Context, in io.Reader, out io.Writer, logger logging.Logger, session *metrics.Session) error {
	p := prompt.New(in, out, prompt.WithLogger(logger), prompt.WithObserver(session))
	opts := []cli.SessionOption{
		cli.WithSessionLogger(logger),
		cli.WithRecorder(session),
	}
	if a.isTerminal(a.ErrWriter) {
		opts = append(opts, cli.WithProgress(a.ErrWriter, a.Config.ProgressThreshold))
	}
	s := cli.NewSession(p, out, opts...)

	if a.Config.Program == config.ProgramFrequency {
		return s.RunFrequency(ctx)
	}
	return s.RunSequence(ctx)
}

// runTUI launches the full-screen drill.
func (a *Application) runTUI(ctx context.Context, in io.Reader, out io.Writer, logger logging.Logger, session *metrics.Session) error {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, tui.Options{
		Program:  a.Config.Program,
		Version:  Version,
		Recorder: session,
		Logger:   logger,
		Input:    in,
		Output:   out,
	})
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Config.Program.String()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Package config resolves the runtime configuration of both drill programs
// from command-line flags, environment variables, an optional .env file and
// an optional HCL configuration file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	apperrors "github.com/agbru/termdrills/internal/errors"
	"github.com/agbru/termdrills/internal/logging"
	"github.com/agbru/termdrills/internal/ui"
)

// EnvPrefix is prepended to every environment variable read by the programs.
const EnvPrefix = "TERMDRILLS_"

const (
	// DefaultProgressThreshold is the term count from which fibseq shows a
	// spinner on a terminal.
	DefaultProgressThreshold = 20000
	// DefaultEnvFile is the dotenv file loaded when --env-file is not given.
	DefaultEnvFile = ".env"
	// DefaultTheme is the full-screen theme used when none is configured.
	DefaultTheme = "dark"
)

// Program identifies which drill a configuration belongs to.
type Program int

const (
	// ProgramSequence is the Fibonacci sequence drill.
	ProgramSequence Program = iota
	// ProgramFrequency is the word-frequency drill.
	ProgramFrequency
)

// String returns the binary name of the program.
func (p Program) String() string {
	switch p {
	case ProgramSequence:
		return "fibseq"
	case ProgramFrequency:
		return "wordfreq"
	default:
		return fmt.Sprintf("Program(%d)", int(p))
	}
}

// AppConfig holds the resolved configuration of one program run.
type AppConfig struct {
	Program           Program
	LogLevel          string
	LogFormat         string
	Verbose           bool
	NoColor           bool
	Theme             string
	TUI               bool
	MetricsFile       string
	ProgressThreshold int
	ConfigFile        string
	EnvFile           string
	Completion        string
}

// EffectiveLogLevel returns "debug" when Verbose is set and LogLevel otherwise.
func (c AppConfig) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// Validate checks that the configuration values are usable.
func (c AppConfig) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level: %v", err)
	}
	if !slices.Contains(logging.Formats, c.LogFormat) {
		return apperrors.NewConfigError("unknown log format %q (accepted values: json, text)", c.LogFormat)
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (accepted values: dark, light, none)", c.Theme)
	}
	if c.ProgressThreshold < 0 {
		return apperrors.NewConfigError("progress threshold must be >= 0, got %d", c.ProgressThreshold)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return apperrors.NewConfigError("unsupported shell: %s (accepted values: bash, zsh, fish)", c.Completion)
	}
	return nil
}

func defaults(program Program) AppConfig {
	return AppConfig{
		Program:           program,
		LogLevel:          "warn",
		LogFormat:         logging.FormatJSON,
		Theme:             DefaultTheme,
		ProgressThreshold: DefaultProgressThreshold,
		EnvFile:           DefaultEnvFile,
	}
}

// ParseConfig parses args (without the program name) for program. Flag
// usage and parse errors are written to errWriter. The returned error is
// flag.ErrHelp when help was requested, and an apperrors.ConfigError for
// any other problem.
func ParseConfig(programName string, program Program, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := defaults(program)

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level (debug, info, warn, error, disabled).")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format (json, text).")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log debug events to stderr (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log debug events to stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colors in the full-screen mode.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Full-screen color theme (dark, light, none).")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Run in full-screen mode when stdin is a terminal.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write session metrics in Prometheus text format to this file on exit.")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "HCL configuration file.")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Dotenv file loaded before reading the environment.")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Print a completion script for the given shell (bash, zsh, fish) and exit.")
	if program == ProgramSequence {
		fs.IntVar(&cfg.ProgressThreshold, "progress-threshold", cfg.ProgressThreshold, "Term count from which a spinner is shown on a terminal (0 disables).")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errWriter, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return cfg, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	if err := loadEnvFile(cfg.EnvFile, isFlagSet(fs, "env-file")); err != nil {
		return cfg, err
	}

	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", cfg.ConfigFile)
	}
	if cfg.ConfigFile != "" {
		fc, err := loadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, err
		}
		fc.apply(&cfg, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/termdrills/internal/errors"
)

// clearEnv blanks every variable the parser reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, o := range envOverrides {
		t.Setenv(EnvPrefix+o.envKey, "")
	}
	t.Setenv(EnvPrefix+"CONFIG", "")
	t.Setenv("NO_COLOR", "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fibseq", ProgramSequence, nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := AppConfig{
		Program:           ProgramSequence,
		LogLevel:          "warn",
		LogFormat:         "json",
		Theme:             "dark",
		ProgressThreshold: DefaultProgressThreshold,
		EnvFile:           DefaultEnvFile,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
	if errBuf.Len() != 0 {
		t.Errorf("nothing should be written to stderr, got %q", errBuf.String())
	}
}

func TestParseConfigFlags(t *testing.T) {
	clearEnv(t)
	args := []string{"-v", "--no-color", "--theme", "light", "--tui", "--metrics-file", "m.prom", "--progress-threshold", "5", "--log-level", "info", "--log-format", "text"}
	cfg, err := ParseConfig("fibseq", ProgramSequence, args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := AppConfig{
		Program:           ProgramSequence,
		LogLevel:          "info",
		LogFormat:         "text",
		Verbose:           true,
		NoColor:           true,
		Theme:             "light",
		TUI:               true,
		MetricsFile:       "m.prom",
		ProgressThreshold: 5,
		EnvFile:           DefaultEnvFile,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.EffectiveLogLevel(); got != "debug" {
		t.Errorf("EffectiveLogLevel() = %q, want debug", got)
	}
}

func TestParseConfigErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		program Program
		args    []string
	}{
		{"unknown flag", ProgramSequence, []string{"--bogus"}},
		{"positional argument", ProgramSequence, []string{"10"}},
		{"threshold is sequence only", ProgramFrequency, []string{"--progress-threshold", "3"}},
		{"negative threshold", ProgramSequence, []string{"--progress-threshold", "-1"}},
		{"unknown theme", ProgramFrequency, []string{"--theme", "neon"}},
		{"unknown log level", ProgramFrequency, []string{"--log-level", "loud"}},
		{"unknown log format", ProgramFrequency, []string{"--log-format", "xml"}},
		{"unknown shell", ProgramFrequency, []string{"--completion", "tcsh"}},
		{"missing explicit env file", ProgramFrequency, []string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}},
		{"missing config file", ProgramFrequency, []string{"--config", filepath.Join(t.TempDir(), "absent.hcl")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.program.String(), tt.program, tt.args, &bytes.Buffer{})
			if code := apperrors.ExitCode(err); code != apperrors.ExitErrorConfig {
				t.Errorf("ExitCode(%v) = %d, want %d", err, code, apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestParseConfigEnvFileErrorKeepsCause(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "absent.env")
	_, err := ParseConfig("fibseq", ProgramSequence, []string{"--env-file", path}, &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseConfig error = %v, want it to wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "loading env file "+path) {
		t.Errorf("error %q should name the env file", err)
	}
}

func TestParseConfigHelp(t *testing.T) {
	clearEnv(t)
	var errBuf bytes.Buffer
	_, err := ParseConfig("wordfreq", ProgramFrequency, []string{"-h"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(errBuf.String(), "-metrics-file") {
		t.Errorf("usage should list flags, got %q", errBuf.String())
	}
	if strings.Contains(errBuf.String(), "progress-threshold") {
		t.Errorf("wordfreq usage should not list progress-threshold")
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMDRILLS_THEME", "light")
	t.Setenv("TERMDRILLS_TUI", "yes")
	t.Setenv("TERMDRILLS_PROGRESS_THRESHOLD", "100")
	t.Setenv("TERMDRILLS_LOG_LEVEL", "error")
	t.Setenv("TERMDRILLS_METRICS_FILE", "env.prom")

	cfg, err := ParseConfig("fibseq", ProgramSequence, []string{"--theme", "none"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Theme != "none" {
		t.Errorf("flag should win over env: Theme = %q", cfg.Theme)
	}
	if !cfg.TUI || cfg.ProgressThreshold != 100 || cfg.LogLevel != "error" || cfg.MetricsFile != "env.prom" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestParseConfigInvalidEnvNumberIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMDRILLS_PROGRESS_THRESHOLD", "many")
	cfg, err := ParseConfig("fibseq", ProgramSequence, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ProgressThreshold != DefaultProgressThreshold {
		t.Errorf("ProgressThreshold = %d, want default", cfg.ProgressThreshold)
	}
}

func TestParseConfigNoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")
	cfg, err := ParseConfig("wordfreq", ProgramFrequency, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR should disable colors")
	}

	cfg, err = ParseConfig("wordfreq", ProgramFrequency, []string{"--no-color=false"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.NoColor {
		t.Error("an explicit flag should win over NO_COLOR")
	}
}

func TestParseConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "termdrills.hcl", `
theme              = "light"
log_level          = "info"
log_format         = "text"
tui                = true
progress_threshold = 50
metrics_file       = "file.prom"
`)
	t.Setenv("TERMDRILLS_LOG_LEVEL", "debug")

	cfg, err := ParseConfig("fibseq", ProgramSequence, []string{"--config", path, "--progress-threshold", "7"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := AppConfig{
		Program:           ProgramSequence,
		LogLevel:          "debug",
		LogFormat:         "text",
		Theme:             "light",
		TUI:               true,
		MetricsFile:       "file.prom",
		ProgressThreshold: 7,
		ConfigFile:        path,
		EnvFile:           DefaultEnvFile,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFileFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "termdrills.hcl", `no_color = true`)
	t.Setenv("TERMDRILLS_CONFIG", path)

	cfg, err := ParseConfig("wordfreq", ProgramFrequency, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !cfg.NoColor || cfg.ConfigFile != path {
		t.Errorf("config file from env not applied: %+v", cfg)
	}
}

func TestParseConfigFileUnknownAttribute(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "bad.hcl", `colour = "red"`)
	_, err := ParseConfig("wordfreq", ProgramFrequency, []string{"--config", path}, &bytes.Buffer{})
	if code := apperrors.ExitCode(err); code != apperrors.ExitErrorConfig {
		t.Fatalf("ExitCode(%v) = %d, want %d", err, code, apperrors.ExitErrorConfig)
	}
}

func TestParseConfigEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that already exist, so the theme
	// key must be absent rather than blank.
	os.Unsetenv("TERMDRILLS_THEME")
	t.Cleanup(func() { os.Unsetenv("TERMDRILLS_THEME") })
	t.Setenv("TERMDRILLS_TUI", "false")

	path := writeFile(t, "drills.env", "TERMDRILLS_THEME=none\nTERMDRILLS_TUI=true\n")
	cfg, err := ParseConfig("wordfreq", ProgramFrequency, []string{"--env-file", path}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Theme != "none" {
		t.Errorf("Theme = %q, want value from env file", cfg.Theme)
	}
	if cfg.TUI {
		t.Error("existing environment should win over the env file")
	}
}

func TestProgramString(t *testing.T) {
	t.Parallel()
	if got := ProgramSequence.String(); got != "fibseq" {
		t.Errorf("ProgramSequence = %q", got)
	}
	if got := ProgramFrequency.String(); got != "wordfreq" {
		t.Errorf("ProgramFrequency = %q", got)
	}
	if got := Program(9).String(); got != "Program(9)" {
		t.Errorf("Program(9) = %q", got)
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "file")
	IsFile    bool     // true if the flag takes a file path
}

// commonFlags are accepted by both programs.
var commonFlags = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "verbose", Short: "v", Help: "Log debug events to stderr"},
	{Long: "log-level", Help: "Minimum log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "log-format", Help: "Log output format", Values: []string{"json", "text"}, ValueName: "format"},
	{Long: "no-color", Help: "Disable colors in the full-screen mode"},
	{Long: "theme", Help: "Full-screen color theme", Values: []string{"dark", "light", "none"}, ValueName: "theme"},
	{Long: "tui", Help: "Run in full-screen mode"},
	{Long: "metrics-file", Help: "Write session metrics to this file on exit", IsFile: true, ValueName: "file"},
	{Long: "config", Help: "HCL configuration file", IsFile: true, ValueName: "file"},
	{Long: "env-file", Help: "Dotenv file loaded before reading the environment", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// sequenceFlags are accepted by fibseq only.
var sequenceFlags = []FlagCompletion{
	{Long: "progress-threshold", Help: "Term count from which a spinner is shown", Values: []string{"0", "10000", "20000", "100000"}, ValueName: "terms"},
}

// CompletionFlags returns the flags accepted by the named program.
func CompletionFlags(program string) []FlagCompletion {
	flags := append([]FlagCompletion(nil), commonFlags...)
	if program == "fibseq" {
		flags = append(flags, sequenceFlags...)
	}
	return flags
}

// GenerateCompletion writes a completion script for program to out.
// Supported shells are bash, zsh and fish.
func GenerateCompletion(out io.Writer, shell, program string) error {
	flags := CompletionFlags(program)
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(program, flags)
	case "zsh":
		script = zshCompletion(program, flags)
	case "fish":
		script = fishCompletion(program, flags)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// funcName turns a program name into a shell identifier.
func funcName(program string) string {
	return "_" + strings.ReplaceAll(program, "-", "_") + "_completions"
}

func bashCompletion(program string, flags []FlagCompletion) string {
	var opts []string
	var cases strings.Builder
	var filePatterns []string
	for _, f := range flags {
		var patterns []string
		if f.Long != "" {
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
		}
		opts = append(opts, patterns...)

		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, patterns...)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(patterns, "|"), strings.Join(f.Values, " "))
		}
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

%[2]s() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[3]s"

    case "${prev}" in
%[4]s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F %[2]s %[1]s
`, program, funcName(program), strings.Join(opts, " "), cases.String())
}

func zshCompletion(program string, flags []FlagCompletion) string {
	args := make([]string, 0, len(flags))
	for _, f := range flags {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Add this to your ~/.zshrc or place in $fpath

_%[1]s() {
    _arguments -s \
%[2]s
}

_%[1]s "$@"
`, program, strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

func fishCompletion(program string, flags []FlagCompletion) string {
	lines := []string{
		"# Fish completion script for " + program,
		fmt.Sprintf("# Add this to ~/.config/fish/completions/%s.fish", program),
		"",
		"complete -c " + program + " -f",
	}
	for _, f := range flags {
		parts := []string{"complete -c " + program}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		if f.Long != "" {
			parts = append(parts, "-l "+f.Long)
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/agbru/termdrills/internal/app.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// valueFlags are the flags whose value is given as the next argument.
var valueFlags = map[string]bool{
	"log-level":          true,
	"log-format":         true,
	"theme":              true,
	"metrics-file":       true,
	"progress-threshold": true,
	"config":             true,
	"env-file":           true,
	"completion":         true,
}

// HasVersionFlag reports whether args (without the program name) ask for the
// version. Only arguments before a "--" terminator are considered, and the
// value following a flag such as --metrics-file is never taken for -V.
func HasVersionFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--":
			return false
		case "-V", "--version", "-version":
			return true
		}
		name := strings.TrimLeft(arg, "-")
		if name != arg && !strings.Contains(name, "=") && valueFlags[name] {
			i++
		}
	}
	return false
}

// PrintVersion writes the version banner of program to out.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintf(out, "%s %s\n", program, Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

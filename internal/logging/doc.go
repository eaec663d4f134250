// Package logging provides a unified logging interface for the drill programs.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends. Loggers are always
// attached to standard error so they never interleave with the prompt protocol
// on standard output.
package logging

// Package cli implements the line-mode driver loops of the drill programs:
// prompting, computation and presentation over plain standard streams.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplaySequence], [DisplayFrequencies].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatProgressSuffix].
//
//   - Run* methods drive a whole session and return only on completion,
//     end of input or cancellation.
package cli

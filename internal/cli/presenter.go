package cli

import (
	"fmt"
	"io"

	"github.com/agbru/termdrills/internal/format"
	"github.com/agbru/termdrills/internal/sequence"
	"github.com/agbru/termdrills/internal/wordfreq"
)

// Fixed protocol text for the sequence program.
const (
	TermCountQuestion  = "Enter the number of terms for the Fibonacci sequence: "
	TermCountRejection = "Error: Please enter a positive integer.\n"
	SequenceHeader     = "\nFibonacci sequence:"
	RepeatQuestion     = "Do you want to generate another sequence? (yes/no): "
	Farewell           = "Goodbye!"
)

// Fixed protocol text for the word-frequency program.
const (
	SentenceQuestion  = "Enter a sentence: "
	SentenceRejection = "This does not meet the criteria for a sentence."
	FrequencyHeader   = "\nWord Frequencies:"
	FrequencyRule     = "-----------------"
)

// DisplaySequence prints the header, the comma-separated terms and a blank line.
func DisplaySequence(out io.Writer, seq sequence.Sequence) {
	fmt.Fprintln(out, SequenceHeader)
	fmt.Fprintln(out, format.JoinTerms(seq))
	fmt.Fprintln(out)
}

// DisplayFrequencies prints the header, a rule and one "word: count" line per
// entry in first-seen order.
func DisplayFrequencies(out io.Writer, freq *wordfreq.Frequencies) {
	fmt.Fprintln(out, FrequencyHeader)
	fmt.Fprintln(out, FrequencyRule)
	for _, e := range freq.Entries() {
		fmt.Fprintln(out, format.FrequencyLine(e.Word, e.Count))
	}
}

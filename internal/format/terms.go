package format

import (
	"math/big"
	"strconv"
	"strings"
)

// TermSeparator joins sequence terms on a single line.
const TermSeparator = ", "

// JoinTerms renders integers in decimal, separated by TermSeparator.
// A nil entry renders as "<nil>", matching (*big.Int).String.
func JoinTerms(terms []*big.Int) string {
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(TermSeparator)
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// FrequencyLine renders one "word: count" row.
func FrequencyLine(word string, count int) string {
	return word + ": " + strconv.Itoa(count)
}

package wordfreq

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genToken produces tokens mixing ASCII letters with the stripped punctuation.
func genToken() gopter.Gen {
	return gen.RegexMatch(`[aBcD.,!?']{1,6}`)
}

func TestCalculate_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalised words are lowercase and trimmed", prop.ForAll(
		func(tokens []string) bool {
			for _, w := range Calculate("X " + strings.Join(tokens, " ") + ".").Words() {
				if strings.IndexFunc(w, unicode.IsUpper) >= 0 {
					return false
				}
				if w != "" && (strings.ContainsRune(strippedPunctuation, rune(w[0])) ||
					strings.ContainsRune(strippedPunctuation, rune(w[len(w)-1]))) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genToken()),
	))

	properties.Property("counts sum to the number of tokens", prop.ForAll(
		func(tokens []string) bool {
			sentence := "X " + strings.Join(tokens, " ") + "."
			f := Calculate(sentence)
			sum := 0
			for _, e := range f.Entries() {
				if e.Count <= 0 {
					return false
				}
				sum += e.Count
			}
			return sum == len(strings.Fields(sentence)) && sum == f.Total()
		},
		gen.SliceOf(genToken()),
	))

	properties.Property("words appear in first-seen order without duplicates", prop.ForAll(
		func(tokens []string) bool {
			sentence := "X " + strings.Join(tokens, " ") + "."
			var expected []string
			seen := map[string]bool{}
			for _, tok := range strings.Fields(sentence) {
				w := Normalize(tok)
				if !seen[w] {
					seen[w] = true
					expected = append(expected, w)
				}
			}
			got := Calculate(sentence).Words()
			if len(got) != len(expected) {
				return false
			}
			for i := range got {
				if got[i] != expected[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genToken()),
	))

	properties.TestingRun(t)
}

package wordfreq

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// strippedPunctuation is removed from both ends of every token.
const strippedPunctuation = ".,!?"

// Entry is one row of a frequency table.
type Entry struct {
	Word  string
	Count int
}

// Frequencies maps normalised words to their occurrence count, remembering
// the order in which words were first seen.
type Frequencies struct {
	counts *linkedhashmap.Map
	total  int
}

// NewFrequencies returns an empty table.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: linkedhashmap.New()}
}

// isSeparator reports whether r splits words: Unicode white space plus the
// ASCII file, group, record and unit separators (0x1C-0x1F).
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Calculate counts the normalised words of sentence.
func Calculate(sentence string) *Frequencies {
	f := NewFrequencies()
	for _, token := range strings.FieldsFunc(sentence, isSeparator) {
		f.Add(Normalize(token))
	}
	return f
}

// Normalize lowercases token after trimming ".,!?" from both ends.
func Normalize(token string) string {
	return strings.ToLower(strings.Trim(token, strippedPunctuation))
}

// Add records one occurrence of word. Words are stored as given.
func (f *Frequencies) Add(word string) {
	f.counts.Put(word, f.Count(word)+1)
	f.total++
}

// Count returns how often word was seen, or 0.
func (f *Frequencies) Count(word string) int {
	if v, ok := f.counts.Get(word); ok {
		return v.(int)
	}
	return 0
}

// Len returns the number of distinct words.
func (f *Frequencies) Len() int {
	return f.counts.Size()
}

// Total returns the number of tokens counted.
func (f *Frequencies) Total() int {
	return f.total
}

// Words returns the distinct words in first-seen order.
func (f *Frequencies) Words() []string {
	words := make([]string, 0, f.counts.Size())
	for _, k := range f.counts.Keys() {
		words = append(words, k.(string))
	}
	return words
}

// Entries returns the table rows in first-seen order.
func (f *Frequencies) Entries() []Entry {
	entries := make([]Entry, 0, f.counts.Size())
	it := f.counts.Iterator()
	for it.Next() {
		entries = append(entries, Entry{Word: it.Key().(string), Count: it.Value().(int)})
	}
	return entries
}

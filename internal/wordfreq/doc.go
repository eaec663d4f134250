// Package wordfreq validates sentences and counts normalised word
// occurrences in first-seen order.
//
// A sentence is accepted when it is non-blank, its first character is an
// uppercase letter, its last character is '.', '!' or '?', and it contains
// at least one word character. The first and last characters are taken from
// the raw text, so surrounding whitespace causes a rejection.
//
// Words are the whitespace-separated tokens of the sentence, lowercased and
// with any of ".,!?" removed from both ends. A token made only of those
// characters normalises to the empty word, which is counted like any other.
package wordfreq

package wordfreq

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/agbru/termdrills/internal/errors"
)

// SentenceField names the sentence in validation errors.
const SentenceField = "sentence"

// terminalPunctuation lists the characters a sentence may end with.
const terminalPunctuation = ".!?"

// IsSentence reports whether text qualifies as a sentence.
func IsSentence(text string) bool {
	return Validate(text) == nil
}

// Validate returns nil when text qualifies as a sentence, or a
// ValidationError naming the first rule it breaks.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewValidationError(SentenceField, "text is blank")
	}
	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return apperrors.NewValidationError(SentenceField, "first character %q is not uppercase", first)
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if !strings.ContainsRune(terminalPunctuation, last) {
		return apperrors.NewValidationError(SentenceField, "last character %q is not one of %q", last, terminalPunctuation)
	}
	if strings.IndexFunc(text, isWordRune) < 0 {
		return apperrors.NewValidationError(SentenceField, "no word characters")
	}
	return nil
}

// ParseSentence returns text unchanged when it is a sentence.
func ParseSentence(text string) (string, error) {
	if err := Validate(text); err != nil {
		return "", err
	}
	return text, nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

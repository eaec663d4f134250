package sequence

import (
	"strconv"

	apperrors "github.com/agbru/termdrills/internal/errors"
)

// TermCountField names the term count in validation errors.
const TermCountField = "terms"

// ParseTermCount accepts a string made only of ASCII decimal digits whose
// value is greater than zero. Whitespace, signs and other characters are
// rejected, as are values too large for an int.
func ParseTermCount(input string) (int, error) {
	if input == "" {
		return 0, apperrors.NewValidationError(TermCountField, "empty input")
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, apperrors.NewValidationError(TermCountField, "%q is not made of decimal digits", input)
		}
	}
	n, err := strconv.ParseInt(input, 10, strconv.IntSize)
	if err != nil {
		return 0, apperrors.NewValidationError(TermCountField, "%q is out of range", input)
	}
	if n <= 0 {
		return 0, apperrors.NewValidationError(TermCountField, "%d is not positive", n)
	}
	return int(n), nil
}

package sequence

import (
	"context"
	"math/big"

	"github.com/agbru/termdrills/internal/format"
)

const (
	// preallocLimit caps the capacity reserved up front so an absurd term
	// count fails gradually instead of in one giant allocation.
	preallocLimit = 1 << 16
	// cancelCheckInterval is how many terms are produced between context checks.
	cancelCheckInterval = 1024
	// progressSteps is the number of progress notifications per sequence.
	progressSteps = 100
)

// Sequence is an ordered list of Fibonacci terms starting at F(0).
// Terms are never mutated after generation.
type Sequence []*big.Int

// String joins the terms with ", ".
func (s Sequence) String() string {
	return format.JoinTerms(s)
}

// ProgressFunc receives the completed fraction of a generation, in (0, 1].
type ProgressFunc func(progress float64)

// Generate returns the first n terms: 0, 1, 1, 2, 3, ...
// It returns an empty sequence for n <= 0.
func Generate(n int) Sequence {
	seq, _ := GenerateContext(context.Background(), n, nil)
	return seq
}

// GenerateContext is Generate with cancellation and progress reporting.
// The context is checked periodically; on cancellation the terms produced so
// far are discarded and ctx.Err() is returned. progress may be nil.
func GenerateContext(ctx context.Context, n int, progress ProgressFunc) (Sequence, error) {
	if n <= 0 {
		return Sequence{}, nil
	}
	seq := make(Sequence, 0, min(n, preallocLimit))

	step := max(n/progressSteps, 1)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		seq = append(seq, a)
		a, b = b, new(big.Int).Add(a, b)

		if progress != nil && ((i+1)%step == 0 || i+1 == n) {
			progress(float64(i+1) / float64(n))
		}
	}
	return seq, nil
}

package classify

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify returns a label, confidence and producing method for the image
	// at input.Path. Model failures are absorbed into the deterministic
	// fallback; the only error returned is ErrImageUnreadable.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}

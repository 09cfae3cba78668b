package usecase

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"fish-classification-website/internal/classify"
)

// Classify reads the image, tries the model path when a vision client is
// configured, and otherwise (or on any model failure) produces the
// deterministic filename-derived result.
func (uc *implUseCase) Classify(ctx context.Context, input classify.ClassifyInput) (classify.ClassifyOutput, error) {
	data, err := os.ReadFile(input.Path)
	if err != nil {
		return classify.ClassifyOutput{}, fmt.Errorf("%w: %v", classify.ErrImageUnreadable, err)
	}

	basename := filepath.Base(input.Path)
	key := fmt.Sprintf("%s:%016x", basename, xxhash.Sum64(data))
	if cached, ok := uc.cache.Get(key); ok {
		return cached, nil
	}

	output, ok := uc.classifyWithModel(ctx, basename, data)
	if !ok {
		output = fallback(basename)
	}

	uc.cache.Add(key, output)
	return output, nil
}

// classifyWithModel runs the model path. The second return is false whenever
// the capability check fails: no client, preprocessing or inference error, or
// a probability vector whose length does not match the label set.
func (uc *implUseCase) classifyWithModel(ctx context.Context, basename string, data []byte) (classify.ClassifyOutput, bool) {
	if uc.vision == nil {
		return classify.ClassifyOutput{}, false
	}

	tensor, err := preprocess(data)
	if err != nil {
		uc.l.Warnf(ctx, "classify: preprocess %q failed, using fallback: %v", basename, err)
		return classify.ClassifyOutput{}, false
	}

	probs, err := uc.vision.Predict(ctx, tensor)
	if err != nil {
		uc.l.Warnf(ctx, "classify: model predict for %q failed, using fallback: %v", basename, err)
		return classify.ClassifyOutput{}, false
	}

	if len(probs) != len(classify.Labels) {
		uc.l.Warnf(ctx, "classify: unexpected prediction length %d for %q, using fallback", len(probs), basename)
		return classify.ClassifyOutput{}, false
	}

	idx := argmax(probs)
	return classify.ClassifyOutput{
		Label:      classify.Labels[idx],
		Confidence: round3(probs[idx]),
		Method:     classify.MethodDL,
	}, true
}

func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

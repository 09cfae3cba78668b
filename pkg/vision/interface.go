package vision

import "context"

// IVision defines the interface for the image-model inference client.
// Predict takes one preprocessed image as a HxWxC tensor of floats in [0,1]
// and returns the model's probability vector.
type IVision interface {
	Predict(ctx context.Context, instance [][][]float64) ([]float64, error)
}

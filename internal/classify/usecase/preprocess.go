package usecase

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"fish-classification-website/internal/classify"
)

// preprocess decodes the image, resizes it to the model's fixed input size
// and normalizes RGB values to [0,1], matching how the model was trained.
func preprocess(data []byte) ([][][]float64, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := resize.Resize(classify.ImageSize, classify.ImageSize, img, resize.Bilinear)

	tensor := make([][][]float64, classify.ImageSize)
	for y := 0; y < classify.ImageSize; y++ {
		row := make([][]float64, classify.ImageSize)
		for x := 0; x < classify.ImageSize; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			// RGBA returns 16-bit channels; scale down to 8-bit first.
			row[x] = []float64{
				float64(r>>8) / 255.0,
				float64(g>>8) / 255.0,
				float64(b>>8) / 255.0,
			}
		}
		tensor[y] = row
	}

	return tensor, nil
}

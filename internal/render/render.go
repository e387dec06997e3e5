// Package render generates a gradient bitmap from normalized pixel
// coordinates and writes it out as PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/sync/errgroup"

	"gradient/vec3"
)

// Gradient renders a Width x Height image where pixel (px, py) takes the
// color of the vector (px/(W-1), py/(H-1), 0.25). Rows are rendered
// concurrently; every pixel is independent of every other.
func Gradient(cfg Config) (*image.RGBA, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	var eg errgroup.Group
	eg.SetLimit(cfg.workerCount())
	for py := 0; py < cfg.Height; py++ {
		py := py
		eg.Go(func() error {
			ny := normalize(py, cfg.Height)
			for px := 0; px < cfg.Width; px++ {
				v := vec3.New(normalize(px, cfg.Width), ny, 0.25)
				r, g, b := v.RGB()
				img.SetRGBA(px, py, color.RGBA{r, g, b, 255})
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return img, nil
}

// normalize maps pixel index i in [0, n) onto [0, 1]. A single-pixel axis
// maps to 0 rather than dividing by zero.
func normalize(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// WritePNG encodes the image to path. One attempt, no retry; the caller
// decides how to surface the error.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

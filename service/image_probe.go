package service

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// ImageProbe decodes images to make sure they are readable
// Implements ImageProbeInterface
type ImageProbe struct{}

// NewImageProbe creates a new ImageProbe
func NewImageProbe() *ImageProbe {
	return &ImageProbe{}
}

var _ ImageProbeInterface = (*ImageProbe)(nil)

// Check opens and decodes the image at path
func (p *ImageProbe) Check(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("empty image: %dx%d", b.Dx(), b.Dy())
	}
	return nil
}

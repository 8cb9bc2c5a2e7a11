package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrEmptyImage is returned when a decoded image has no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major, top row first
}

// DecodeImage opens and decodes a raster file, detecting the format from its header
func DecodeImage(filename string) (image.Image, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	if img.Bounds().Empty() {
		return nil, "", fmt.Errorf("%s: %w", filename, ErrEmptyImage)
	}
	return img, format, nil
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image and converts each
// 8-bit channel to [0, 1]
func LoadImage(filename string) (*ImageData, error) {
	img, _, err := DecodeImage(filename)
	if err != nil {
		return nil, err
	}

	texture := material.NewImageTextureFromImage(img)
	return &ImageData{
		Width:  texture.Width,
		Height: texture.Height,
		Pixels: texture.Pixels,
	}, nil
}

// LoadImageTexture loads a raster file as a texture for spherical or rect UV mapping
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

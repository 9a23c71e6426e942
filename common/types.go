// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// ImageData holds decoded RGBA pixel data for a texture pending GPU upload.
// Pixels are stored bottom-up (row 0 is the bottom row of the image) to match
// the OpenGL texture coordinate convention.
type ImageData struct {
	// Pix is the byte slice representing the pixel data. It is always in RGBA format, with 4 bytes per pixel.
	Pix []byte
	// Width is the width of the image in pixels.
	Width int
	// Height is the height of the image in pixels.
	Height int
	// Channels is the channel count of the source image before conversion to
	// RGBA: 1 for grayscale, 3 for opaque color, 4 for color with alpha.
	Channels int
}

// LoadImage reads and decodes the image file at path.
// Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: the image file to read
//
// Returns:
//   - *ImageData: the decoded, vertically flipped RGBA pixel data
//   - error: error if the file cannot be read or parsed
func LoadImage(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes image data from r into bottom-up RGBA pixels.
//
// Parameters:
//   - r: reader supplying encoded PNG or JPEG bytes
//
// Returns:
//   - *ImageData: the decoded, vertically flipped RGBA pixel data
//   - error: error if decoding fails
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	flipVertical(rgba.Pix, width, height)

	return &ImageData{
		Pix:      rgba.Pix,
		Width:    width,
		Height:   height,
		Channels: channelCount(img),
	}, nil
}

// channelCount reports the channel count of the source image's native pixel
// layout. The Go decoders expand everything to RGBA on read, so the count is
// derived from the concrete image type the decoder produced.
func channelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.RGBA64, *image.NYCbCrA:
		return 4
	case *image.RGBA:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	default:
		return 0
	}
}

// flipVertical reverses the row order of an RGBA pixel buffer in place so
// that row 0 becomes the bottom row.
func flipVertical(pix []byte, width, height int) {
	stride := width * 4
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bottom := pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

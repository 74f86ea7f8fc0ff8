//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Pixmap is a pixel buffer as handed over by a host application.
// Only the first byte of each pixel is used as its intensity.
type Pixmap struct {
	properties    Properties
	Pix           []uint8
	Stride        int // Bytes per row
	BytesPerPixel int
}

// NewPixmap wraps a host pixel buffer. A zero stride means rows are packed.
func NewPixmap(prop Properties, pix []uint8, stride int, bytesPerPixel int) (pm *Pixmap) {
	if bytesPerPixel < 1 {
		bytesPerPixel = 1
	}

	if stride == 0 {
		stride = prop.Size.X * bytesPerPixel
	}

	pm = &Pixmap{
		properties:    prop,
		Pix:           pix,
		Stride:        stride,
		BytesPerPixel: bytesPerPixel,
	}

	return
}

// NewGrayEngravable converts any image into an 8-bit grayscale engravable.
// Transparent pixels become white. prop.Size is taken from the image bounds.
func NewGrayEngravable(img image.Image, prop Properties) (pm *Pixmap) {
	bounds := img.Bounds()

	gray, ok := img.(*image.Gray)
	if !ok || gray.Rect.Min != (image.Point{}) {
		gray = image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(gray, gray.Rect, image.White, image.Point{}, draw.Src)
		draw.Draw(gray, gray.Rect, img, bounds.Min, draw.Over)
	}

	prop.Size.X = bounds.Dx()
	prop.Size.Y = bounds.Dy()

	pm = NewPixmap(prop, gray.Pix, gray.Stride, 1)

	return
}

func (pm *Pixmap) Properties() (prop Properties) {
	prop = pm.properties

	return
}

func (pm *Pixmap) Row(y int, row []uint8) (err error) {
	width := pm.properties.Size.X
	if y < 0 || y >= pm.properties.Size.Y {
		err = errors.Wrapf(ErrRowBuffer, "row %d out of range", y)
		return
	}

	if len(row) < width {
		err = errors.Wrapf(ErrRowBuffer, "row %d: %d samples, need %d", y, len(row), width)
		return
	}

	if width == 0 {
		return
	}

	start := y * pm.Stride
	end := start + (width-1)*pm.BytesPerPixel + 1
	if end > len(pm.Pix) {
		err = errors.Wrapf(ErrRowBuffer, "row %d: pixel buffer has %d bytes, need %d", y, len(pm.Pix), end)
		return
	}

	src := pm.Pix[start:end]
	if pm.BytesPerPixel == 1 {
		copy(row, src)
		return
	}

	for x := 0; x < width; x++ {
		row[x] = src[x*pm.BytesPerPixel]
	}

	return
}

// GrayImage renders every row of an engravable into an 8-bit grayscale image
func GrayImage(engravable Engravable) (gray *image.Gray, err error) {
	prop := engravable.Properties()

	gray = image.NewGray(prop.Bounds())
	for y := 0; y < prop.Size.Y; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+prop.Size.X]
		err = engravable.Row(y, row)
		if err != nil {
			gray = nil
			return
		}
	}

	return
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package raster

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ezrec/rastergrbl"
)

type Format struct {
	*pflag.FlagSet

	suffix    string
	Invert    bool
	Lightness bool
}

func NewFormatter(suffix string) (rf *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	rf = &Format{
		FlagSet: flagSet,
		suffix:  suffix,
	}

	rf.BoolVarP(&rf.Invert, "invert", "I", false, "Treat white as full power (engrave a negative)")
	rf.BoolVarP(&rf.Lightness, "lightness", "L", false, "Convert to gray by perceptual (CIE L*) lightness")
	rf.SetInterspersed(false)

	return
}

// invertModifier swaps black and white
type invertModifier struct {
	rastergrbl.Engravable
}

func (mod *invertModifier) Row(y int, row []uint8) (err error) {
	err = mod.Engravable.Row(y, row)
	if err != nil {
		return
	}

	for x := 0; x < mod.Properties().Size.X; x++ {
		row[x] = 255 - row[x]
	}

	return
}

func (rf *Format) Decode(reader rastergrbl.Reader, filesize int64) (engravable rastergrbl.Engravable, err error) {
	img, kind, err := image.Decode(io.NewSectionReader(reader, 0, filesize))
	if err != nil {
		return
	}

	prop := rastergrbl.Properties{
		Laser:    rastergrbl.DefaultLaser,
		Metadata: map[string]interface{}{"Format": kind},
	}

	if rf.Lightness {
		img = lightness(img)
	}

	engravable = rastergrbl.NewGrayEngravable(img, prop)

	if rf.Invert {
		engravable = &invertModifier{Engravable: engravable}
	}

	return
}

func (rf *Format) Encode(writer rastergrbl.Writer, engravable rastergrbl.Engravable) (err error) {
	if rf.suffix != ".png" {
		err = errors.Wrapf(rastergrbl.ErrUnsupported, "%s: only .png can be written", rf.suffix)
		return
	}

	gray, err := rastergrbl.GrayImage(engravable)
	if err != nil {
		return
	}

	if rf.Invert {
		for n := range gray.Pix {
			gray.Pix[n] = 255 - gray.Pix[n]
		}
	}

	err = png.Encode(writer, gray)

	return
}

// lightness converts an image to gray by CIE L*, blending
// translucent pixels towards white.
func lightness(img image.Image) (gray *image.Gray) {
	bounds := img.Bounds()
	gray = image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			level := 1.0

			c := img.At(x, y)
			if cf, ok := colorful.MakeColor(c); ok {
				_, _, _, a := c.RGBA()
				alpha := float64(a) / 0xffff

				l, _, _ := cf.Lab()
				level = math.Min(math.Max(l, 0), 1)*alpha + (1 - alpha)
			}

			gray.Pix[(y-bounds.Min.Y)*gray.Stride+(x-bounds.Min.X)] = uint8(math.Round(level * 255))
		}
	}

	return
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/spf13/pflag"
	"golang.org/x/image/draw"

	"github.com/ezrec/rastergrbl"
)

var sizeScalers = map[string]draw.Scaler{
	"nearest":  draw.NearestNeighbor,
	"bilinear": draw.BiLinear,
	"catmull":  draw.CatmullRom,
}

type SizeCommand struct {
	*pflag.FlagSet

	Width     float32
	Height    float32
	Resampler string
}

func NewSizeCommand() (sc *SizeCommand) {
	sc = &SizeCommand{
		FlagSet: pflag.NewFlagSet("size", pflag.ContinueOnError),
	}

	sc.Float32VarP(&sc.Width, "width", "W", 0, "Engraving width, in mm")
	sc.Float32VarP(&sc.Height, "height", "H", 0, "Engraving height, in mm")
	sc.StringVarP(&sc.Resampler, "filter", "f", "bilinear", "Resampling filter: nearest, bilinear, catmull or lanczos")
	sc.SetInterspersed(false)

	return
}

// pixelSize computes the raster size for the requested millimeters,
// keeping the aspect ratio when only one side is given.
func (sc *SizeCommand) pixelSize(prop rastergrbl.Properties) (size rastergrbl.Size, err error) {
	kerf := float64(prop.Laser.KerfWidth)
	if !(kerf > 0) {
		err = rastergrbl.ErrInvalidKerf
		return
	}

	src := prop.Size
	size = src

	widthSet := sc.Changed("width")
	heightSet := sc.Changed("height")

	if widthSet {
		size.X = int(math.Round(float64(sc.Width) / kerf))
	}

	if heightSet {
		size.Y = int(math.Round(float64(sc.Height) / kerf))
	}

	switch {
	case widthSet && !heightSet && src.X > 0:
		size.Y = int(math.Round(float64(src.Y) * float64(size.X) / float64(src.X)))
	case heightSet && !widthSet && src.Y > 0:
		size.X = int(math.Round(float64(src.X) * float64(size.Y) / float64(src.Y)))
	}

	if size.X < 1 || size.Y < 1 {
		err = fmt.Errorf("size: %.2fx%.2f mm is less than one %v mm pixel", sc.Width, sc.Height, kerf)
		return
	}

	return
}

func (sc *SizeCommand) Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error) {
	output = input

	prop := input.Properties()

	size, err := sc.pixelSize(prop)
	if err != nil {
		return
	}

	if size == prop.Size {
		return
	}

	src, err := rastergrbl.GrayImage(input)
	if err != nil {
		return
	}

	var dst image.Image
	if sc.Resampler == "lanczos" {
		dst = resize.Resize(uint(size.X), uint(size.Y), src, resize.Lanczos3)
	} else {
		scaler, ok := sizeScalers[sc.Resampler]
		if !ok {
			err = fmt.Errorf("size: unknown filter \"%v\"", sc.Resampler)
			return
		}

		gray := image.NewGray(image.Rect(0, 0, size.X, size.Y))
		scaler.Scale(gray, gray.Rect, src, src.Rect, draw.Src, nil)
		dst = gray
	}

	TraceVerbosef(VerbosityNotice, "  Resampling %vx%v px to %vx%v px (%v)",
		prop.Size.X, prop.Size.Y, size.X, size.Y, sc.Resampler)

	output = rastergrbl.NewGrayEngravable(dst, prop)

	return
}

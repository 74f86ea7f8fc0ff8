//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package svg rasterizes SVG drawings into engravables
package svg

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/ezrec/rastergrbl"
)

const (
	defaultScale = 1.0
)

type Format struct {
	*pflag.FlagSet

	Scale float64
}

func NewFormatter(suffix string) (sf *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	sf = &Format{
		FlagSet: flagSet,
	}

	sf.Float64VarP(&sf.Scale, "scale", "x", defaultScale, "Pixels per SVG user unit")
	sf.SetInterspersed(false)

	return
}

func (sf *Format) Decode(reader rastergrbl.Reader, filesize int64) (engravable rastergrbl.Engravable, err error) {
	if !(sf.Scale > 0) {
		err = errors.Errorf("svg: invalid --scale %v", sf.Scale)
		return
	}

	icon, err := oksvg.ReadIconStream(io.NewSectionReader(reader, 0, filesize))
	if err != nil {
		return
	}

	width := int(math.Ceil(icon.ViewBox.W * sf.Scale))
	height := int(math.Ceil(icon.ViewBox.H * sf.Scale))
	if width < 1 || height < 1 {
		err = errors.Wrapf(rastergrbl.ErrInvalidDimensions, "svg: view box %vx%v", icon.ViewBox.W, icon.ViewBox.H)
		return
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	// Paint on white, so the background is not burnt
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	prop := rastergrbl.Properties{
		Laser:    rastergrbl.DefaultLaser,
		Metadata: map[string]interface{}{"Format": "svg"},
	}

	engravable = rastergrbl.NewGrayEngravable(img, prop)

	return
}

func (sf *Format) Encode(writer rastergrbl.Writer, engravable rastergrbl.Engravable) (err error) {
	err = errors.Wrap(rastergrbl.ErrUnsupported, "svg: engravables cannot be vectorized")
	return
}

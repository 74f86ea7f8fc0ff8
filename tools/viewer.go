//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"image"
	"os"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"

	"github.com/ezrec/rastergrbl"
	_ "github.com/ezrec/rastergrbl/drawable"
	_ "github.com/ezrec/rastergrbl/raster"
	_ "github.com/ezrec/rastergrbl/svg"
)

var param struct {
	scaling float64
	speed   int
}

func init() {
	pflag.Float64VarP(&param.scaling, "scale", "s", 1.0, "Window pixels per image pixel")
	pflag.IntVarP(&param.speed, "speed", "r", 4, "Rows engraved per frame")
	pflag.CommandLine.SetInterspersed(false)
}

// burnt shows the first 'rows' rows from the bottom, in plot order,
// with the rest of the picture still blank.
func burnt(src *image.Gray, rows int) (dst *image.Gray) {
	dst = image.NewGray(src.Rect)
	for n := range dst.Pix {
		dst.Pix[n] = 0xff
	}

	height := src.Rect.Dy()
	for y := height - 1; y >= 0 && y >= height-rows; y-- {
		start := y * src.Stride
		copy(dst.Pix[start:start+src.Rect.Dx()], src.Pix[start:start+src.Rect.Dx()])
	}

	return
}

func pixelRun(engravable rastergrbl.Engravable) {
	prop := engravable.Properties()
	size := prop.Bounds().Size()

	gray, err := rastergrbl.GrayImage(engravable)
	if err != nil {
		panic(err)
	}

	mm := prop.Millimeter()
	cfg := pixelgl.WindowConfig{
		Title:  fmt.Sprintf("%v (%.2fx%.2f mm)", prop.Source, mm.X, mm.Y),
		Bounds: pixel.R(0, 0, float64(size.X)*param.scaling, float64(size.Y)*param.scaling),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	win.SetSmooth(true)

	mat := pixel.IM
	mat = mat.Scaled(pixel.ZV, param.scaling)
	mat = mat.Moved(win.Bounds().Center())

	rows := 0
	for !win.Closed() {
		win.Clear(colornames.Wheat)

		pic := pixel.PictureDataFromImage(burnt(gray, rows))
		sprite := pixel.NewSprite(pic, pic.Bounds())
		sprite.Draw(win, mat)

		win.Update()

		if rows < size.Y {
			rows += param.speed
		} else if win.JustPressed(pixelgl.KeySpace) {
			rows = 0
		}
	}
}

func evaluate(args []string) (err error) {
	input, err := rastergrbl.NewFormat(args[0], args[1:])
	if err != nil {
		return
	}

	engravable, err := input.Engravable()
	if err != nil {
		return
	}

	prop := engravable.Properties()
	fmt.Printf("%v: %vx%v px\n", prop.Source, prop.Size.X, prop.Size.Y)

	pixelgl.Run(func() { pixelRun(engravable) })

	return
}

func main() {
	pflag.Parse()

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: viewer [options] INFILE [format options]")
		pflag.PrintDefaults()
		rastergrbl.FormatterUsage()
		os.Exit(1)
	}

	err := evaluate(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

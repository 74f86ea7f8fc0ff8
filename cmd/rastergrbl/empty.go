//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

type EmptyFormatter struct {
	*pflag.FlagSet

	Pixels  []int
	Level   uint8
	Machine string
}

func NewEmptyFormatter() (ef *EmptyFormatter) {
	ef = &EmptyFormatter{
		FlagSet: pflag.NewFlagSet("empty", pflag.ContinueOnError),
	}

	ef.IntSliceVarP(&ef.Pixels, "pixels", "p", []int{100, 100}, "Empty size, in pixels")
	ef.Uint8VarP(&ef.Level, "level", "l", 255, "Intensity of every pixel (0 is black, 255 is white)")
	ef.StringVarP(&ef.Machine, "machine", "M", "", "Fill the bed of a machine preset")
	ef.SetInterspersed(false)

	return
}

func (ef *EmptyFormatter) Decode(file rastergrbl.Reader, filesize int64) (engravable rastergrbl.Engravable, err error) {
	prop := rastergrbl.Properties{
		Laser:  rastergrbl.DefaultLaser,
		Source: "empty",
	}

	size := &prop.Size

	if len(ef.Pixels) != 2 {
		err = fmt.Errorf("empty: --pixels needs two values, got %v", ef.Pixels)
		return
	}

	size.X = ef.Pixels[0]
	size.Y = ef.Pixels[1]

	if ef.Changed("machine") {
		machine, ok := rastergrbl.MachineFormats[ef.Machine]
		if !ok {
			err = fmt.Errorf("empty: unknown machine \"%v\"", ef.Machine)
			return
		}

		prop.Laser = machine.Laser
		if !ef.Changed("pixels") && machine.Bed.Xmm > 0 && machine.Bed.Ymm > 0 {
			size.X = int(machine.Bed.Xmm / machine.Laser.KerfWidth)
			size.Y = int(machine.Bed.Ymm / machine.Laser.KerfWidth)
		}
	}

	engravable = rastergrbl.NewEmptyEngravable(prop, ef.Level)

	return
}

func (ef *EmptyFormatter) Encode(writer rastergrbl.Writer, engravable rastergrbl.Engravable) (err error) {
	return
}

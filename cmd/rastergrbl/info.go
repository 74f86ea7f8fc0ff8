//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

type InfoCommand struct {
	*pflag.FlagSet

	SizeSummary  bool
	LaserSummary bool
	Metadata     bool

	writer io.Writer
}

func NewInfoCommand() (info *InfoCommand) {
	flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)

	info = &InfoCommand{
		FlagSet: flagSet,
		writer:  os.Stdout,
	}

	info.SetInterspersed(false)
	info.BoolVarP(&info.SizeSummary, "size", "s", true, "Show size summary")
	info.BoolVarP(&info.LaserSummary, "laser", "l", true, "Show the laser profile")
	info.BoolVarP(&info.Metadata, "metadata", "m", true, "Show the source metadata")

	return
}

func (info *InfoCommand) Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error) {
	prop := input.Properties()

	if info.SizeSummary {
		mm := prop.Millimeter()
		fmt.Fprintf(info.writer, "Size: %vx%v px, %.2f x %.2f mm\n",
			prop.Size.X, prop.Size.Y, mm.X, mm.Y)
	}

	if info.LaserSummary {
		laser := &prop.Laser
		fmt.Fprintf(info.writer, "Laser: S%d-S%d, %v mm/px, %v\n",
			laser.PowerMin, laser.PowerMax, laser.KerfWidth, laser.FeedRate)
		fmt.Fprintf(info.writer, "Modes: %v %v, on %v, off %v\n",
			laser.UnitMode, laser.CoordMode, laser.LaserOn, laser.LaserOff)
	}

	if info.Metadata {
		fmt.Fprintf(info.writer, "Source: %v\n", prop.Source)

		keys := []string{}
		for k := range prop.Metadata {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(info.writer, "%v: %v\n", k, prop.Metadata[k])
		}
	}

	output = input

	return
}

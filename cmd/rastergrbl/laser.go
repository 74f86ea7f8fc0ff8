//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

type LaserCommand struct {
	*pflag.FlagSet

	PowerMin  int
	PowerMax  int
	KerfWidth float32
	FeedRate  string
	LaserOn   string
	LaserOff  string
	UnitMode  string
	CoordMode string
}

func NewLaserCommand() (lc *LaserCommand) {
	lc = &LaserCommand{
		FlagSet: pflag.NewFlagSet("laser", pflag.ContinueOnError),
	}

	def := &rastergrbl.DefaultLaser

	lc.IntVarP(&lc.PowerMin, "min", "n", def.PowerMin, "PWM value for white pixels")
	lc.IntVarP(&lc.PowerMax, "max", "x", def.PowerMax, "PWM value for black pixels")
	lc.Float32VarP(&lc.KerfWidth, "kerf", "k", def.KerfWidth, "Laser width, in mm per pixel")
	lc.StringVarP(&lc.FeedRate, "feed", "f", def.FeedRate, "Feed rate word")
	lc.StringVar(&lc.LaserOn, "on", def.LaserOn, "Laser on (dynamic power) command")
	lc.StringVar(&lc.LaserOff, "off", def.LaserOff, "Laser off command")
	lc.StringVarP(&lc.UnitMode, "units", "u", def.UnitMode, "Unit mode command")
	lc.StringVarP(&lc.CoordMode, "coords", "c", def.CoordMode, "Coordinate mode command")

	lc.SetInterspersed(false)

	return
}

func (lc *LaserCommand) Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error) {
	prop := input.Properties()
	laser := &prop.Laser

	if lc.Changed("min") {
		TraceVerbosef(VerbosityNotice, "  Setting minimum power to S%v", lc.PowerMin)
		laser.PowerMin = lc.PowerMin
	}

	if lc.Changed("max") {
		TraceVerbosef(VerbosityNotice, "  Setting maximum power to S%v", lc.PowerMax)
		laser.PowerMax = lc.PowerMax
	}

	if lc.Changed("kerf") {
		TraceVerbosef(VerbosityNotice, "  Setting laser width to %v mm", lc.KerfWidth)
		laser.KerfWidth = lc.KerfWidth
	}

	if lc.Changed("feed") {
		TraceVerbosef(VerbosityNotice, "  Setting feed rate to %v", lc.FeedRate)
		laser.FeedRate = lc.FeedRate
	}

	if lc.Changed("on") {
		TraceVerbosef(VerbosityNotice, "  Setting laser on to %v", lc.LaserOn)
		laser.LaserOn = lc.LaserOn
	}

	if lc.Changed("off") {
		TraceVerbosef(VerbosityNotice, "  Setting laser off to %v", lc.LaserOff)
		laser.LaserOff = lc.LaserOff
	}

	if lc.Changed("units") {
		TraceVerbosef(VerbosityNotice, "  Setting unit mode to %v", lc.UnitMode)
		laser.UnitMode = lc.UnitMode
	}

	if lc.Changed("coords") {
		TraceVerbosef(VerbosityNotice, "  Setting coordinate mode to %v", lc.CoordMode)
		laser.CoordMode = lc.CoordMode
	}

	err = laser.Validate()
	if err != nil {
		return
	}

	output = rastergrbl.WithProperties(input, prop)

	return
}

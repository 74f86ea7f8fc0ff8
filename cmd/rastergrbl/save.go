//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
	"github.com/ezrec/rastergrbl/settings"
)

type SaveCommand struct {
	*pflag.FlagSet

	OutFilename string
}

func NewSaveCommand() (sc *SaveCommand) {
	sc = &SaveCommand{
		FlagSet: pflag.NewFlagSet("save", pflag.ContinueOnError),
	}

	sc.StringVarP(&sc.OutFilename, "output", "o", "", "Default output file name to store")
	sc.SetInterspersed(false)

	return
}

func (sc *SaveCommand) Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error) {
	output = input

	outFilename := param.settings.OutFilename
	if sc.Changed("output") {
		outFilename = sc.OutFilename
	}

	stored := settings.FromLaser(input.Properties().Laser, outFilename)

	err = stored.Save(param.settingsPath)
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "  Saved settings to %v", param.settingsPath)

	param.settings = stored

	return
}

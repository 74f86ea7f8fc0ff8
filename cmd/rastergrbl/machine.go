//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

type MachineCommand struct {
	*pflag.FlagSet

	Name string
	List bool

	writer io.Writer
}

func NewMachineCommand() (mc *MachineCommand) {
	mc = &MachineCommand{
		FlagSet: pflag.NewFlagSet("machine", pflag.ContinueOnError),
		writer:  os.Stdout,
	}

	mc.StringVarP(&mc.Name, "name", "n", "grbl", "Laser profile by machine type")
	mc.BoolVarP(&mc.List, "list", "l", false, "List known machines")
	mc.SetInterspersed(false)

	return
}

func (mc *MachineCommand) Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error) {
	output = input

	if mc.List {
		fmt.Fprintln(mc.writer, "Known machines:")
		rastergrbl.PrintMachines(mc.writer)
	}

	if !mc.Changed("name") {
		return
	}

	machine, ok := rastergrbl.MachineFormats[mc.Name]
	if !ok {
		err = fmt.Errorf("machine: unknown machine \"%v\"", mc.Name)
		return
	}

	TraceVerbosef(VerbosityNotice, "  Setting laser profile to %v %v", machine.Vendor, machine.Model)

	prop := input.Properties()
	prop.Laser = machine.Laser

	bed := &machine.Bed
	mm := prop.Millimeter()
	if bed.Xmm > 0 && bed.Ymm > 0 && (mm.X > bed.Xmm || mm.Y > bed.Ymm) {
		TraceVerbosef(VerbosityWarning, "warning: %.2fx%.2f mm is larger than the %vx%v mm bed",
			mm.X, mm.Y, bed.Xmm, bed.Ymm)
	}

	output = rastergrbl.WithProperties(input, prop)

	return
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"fmt"
	"io"
	"sort"
)

// Working area of a machine
type MachineBed struct {
	Xmm, Ymm float32
}

type Machine struct {
	Vendor string
	Model  string
	Bed    MachineBed
	Laser  Laser
}

type MachineFormat struct {
	Machine
	Extension string
	Args      []string
}

var (
	MachineFormats = map[string](*MachineFormat){}
)

func RegisterMachine(name string, machine Machine, extension string, args ...string) (err error) {
	_, ok := MachineFormats[name]
	if ok {
		err = fmt.Errorf("%s: name already exists in Machine list", name)
		return
	}

	machineFormat := &MachineFormat{
		Machine:   machine,
		Extension: extension,
		Args:      args,
	}

	MachineFormats[name] = machineFormat

	return
}

func RegisterMachines(machineMap map[string]Machine, extension string, args ...string) (err error) {
	for name, machine := range machineMap {
		err = RegisterMachine(name, machine, extension, args...)
		if err != nil {
			return
		}
	}

	return
}

// PrintMachines lists the known machines, sorted by name
func PrintMachines(writer io.Writer) {
	keys := []string{}
	for key := range MachineFormats {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		item := MachineFormats[key]
		laser := &item.Laser
		fmt.Fprintf(writer, "    %-16s %-10s %-16s S%d-S%d, %.3g mm/px, %.4gx%.4g mm\n",
			key, item.Vendor, item.Model,
			laser.PowerMin, laser.PowerMax, laser.KerfWidth,
			item.Bed.Xmm, item.Bed.Ymm)
	}
}

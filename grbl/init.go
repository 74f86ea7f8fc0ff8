//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package grbl writes raster engravings as GRBL 1.1 laser programs
package grbl

import (
	"github.com/ezrec/rastergrbl"
)

func laserWith(min, max int, kerf float32) (laser rastergrbl.Laser) {
	laser = rastergrbl.DefaultLaser
	laser.PowerMin = min
	laser.PowerMax = max
	laser.KerfWidth = kerf

	return
}

var (
	machines_grbl = map[string]rastergrbl.Machine{
		"grbl":        {Vendor: "Generic", Model: "GRBL 1.1", Laser: rastergrbl.DefaultLaser},
		"grbl-s1000":  {Vendor: "Generic", Model: "GRBL 1.1 $30=1000", Laser: laserWith(0, 1000, 0.1)},
		"grbl-s255":   {Vendor: "Generic", Model: "GRBL 1.1 $30=255", Laser: laserWith(0, 255, 0.1)},
		"ortur-lm2":   {Vendor: "Ortur", Model: "Laser Master 2", Bed: rastergrbl.MachineBed{Xmm: 400, Ymm: 430}, Laser: laserWith(0, 1000, 0.08)},
		"sculpfun-s9": {Vendor: "Sculpfun", Model: "S9", Bed: rastergrbl.MachineBed{Xmm: 410, Ymm: 420}, Laser: laserWith(0, 1000, 0.06)},
	}
)

func init() {
	newFormatter := func(suffix string) rastergrbl.Formatter { return NewFormatter(suffix) }

	rastergrbl.RegisterFormatter(".ngc", newFormatter)
	rastergrbl.RegisterFormatter(".gcode", newFormatter)
	rastergrbl.RegisterFormatter(".nc", newFormatter)

	rastergrbl.RegisterMachines(machines_grbl, ".ngc")
}

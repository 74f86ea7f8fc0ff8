//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package rastergrbl is a set of tools for turning grayscale rasters into GRBL laser programs
package rastergrbl

// Engravable is a grayscale raster, plus the laser settings to burn it with
type Engravable interface {
	Properties() (prop Properties)

	// Row fills row[0:Size.X] with the intensity samples of row y,
	// where row 0 is the top of the image, 0 is black and 255 is white.
	Row(y int, row []uint8) (err error)
}

type propertiesModifier struct {
	Engravable
	properties Properties
}

func (mod *propertiesModifier) Properties() (prop Properties) {
	prop = mod.properties

	return
}

// WithProperties replaces the properties of an engravable, keeping its rows.
// The size must not change.
func WithProperties(engravable Engravable, prop Properties) (mod Engravable) {
	mod = &propertiesModifier{
		Engravable: engravable,
		properties: prop,
	}

	return
}

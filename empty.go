//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"github.com/pkg/errors"
)

// EmptyEngravable is a raster of a single intensity
type EmptyEngravable struct {
	properties Properties
	level      uint8
}

// NewEmptyEngravable creates a uniform raster. A level of 255 is blank (white).
func NewEmptyEngravable(prop Properties, level uint8) (empty *EmptyEngravable) {
	empty = &EmptyEngravable{
		properties: prop,
		level:      level,
	}

	return
}

func (empty *EmptyEngravable) Properties() (prop Properties) {
	prop = empty.properties

	return
}

func (empty *EmptyEngravable) Row(y int, row []uint8) (err error) {
	if y < 0 || y >= empty.properties.Size.Y || len(row) < empty.properties.Size.X {
		err = errors.Wrapf(ErrRowBuffer, "row %d", y)
		return
	}

	for x := 0; x < empty.properties.Size.X; x++ {
		row[x] = empty.level
	}

	return
}

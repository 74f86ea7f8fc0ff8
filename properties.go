//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"image"

	"github.com/pkg/errors"
)

type SizeMillimeter struct {
	X, Y float32
}

// Size of the raster, in pixels
type Size struct {
	X, Y int
}

// Laser profile
type Laser struct {
	PowerMin  int     // PWM value for a white pixel
	PowerMax  int     // PWM value for a black pixel
	KerfWidth float32 // mm covered by one pixel

	// Emitted verbatim into the program
	FeedRate  string // ie 'F1500'
	UnitMode  string // ie 'G21'
	CoordMode string // ie 'G90'
	LaserOn   string // ie 'M4'
	LaserOff  string // ie 'M5'
}

// DefaultLaser is the profile decoders give to new engravables.
// It starts as a GRBL 1.1 diode laser in dynamic power mode; hosts may
// replace it with the user's settings before decoding.
var DefaultLaser = Laser{
	PowerMin:  50,
	PowerMax:  400,
	KerfWidth: 0.15,
	FeedRate:  "F1500",
	UnitMode:  "G21",
	CoordMode: "G90",
	LaserOn:   "M4",
	LaserOff:  "M5",
}

// Power maps a burn level (0 = none, 255 = full) linearly onto the PWM range.
// The fraction is truncated towards zero.
func (laser *Laser) Power(level uint8) (power int) {
	span := float64(laser.PowerMax-laser.PowerMin) / 255.0
	// The explicit conversion keeps the product from being fused.
	power = int(float64(laser.PowerMin) + float64(span*float64(level)))

	return
}

// Validate checks the PWM range and the kerf
func (laser *Laser) Validate() (err error) {
	if laser.PowerMin < 0 || laser.PowerMin > laser.PowerMax {
		err = errors.Wrapf(ErrInvalidPowerRange, "min %d, max %d", laser.PowerMin, laser.PowerMax)
		return
	}

	if !(laser.KerfWidth > 0) {
		err = errors.Wrapf(ErrInvalidKerf, "%v mm", laser.KerfWidth)
		return
	}

	return
}

type Properties struct {
	Size     Size
	Laser    Laser
	Source   string                   // Source image identity
	Metadata map[string](interface{}) `json:",omitempty"`
}

// Get image bounds
func (prop *Properties) Bounds() image.Rectangle {
	return image.Rect(0, 0, prop.Size.X, prop.Size.Y)
}

// Millimeter returns the physical size of the engraving
func (prop *Properties) Millimeter() (mm SizeMillimeter) {
	mm.X = float32(prop.Size.X) * prop.Laser.KerfWidth
	mm.Y = float32(prop.Size.Y) * prop.Laser.KerfWidth

	return
}

// Validate checks that the properties describe something that can be engraved
func (prop *Properties) Validate() (err error) {
	if prop.Size.X < 1 || prop.Size.Y < 1 {
		err = errors.Wrapf(ErrInvalidDimensions, "%dx%d", prop.Size.X, prop.Size.Y)
		return
	}

	err = prop.Laser.Validate()

	return
}

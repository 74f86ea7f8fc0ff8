//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package grbl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/rastergrbl"
)

const (
	programName = "rastergrbl"

	// Value of the synthetic pixel after the end of each row
	overscanLevel = 255
)

// Encoder writes GRBL 1.1 laser programs
type Encoder struct {
	writer *bufio.Writer
	err    error
}

func NewEncoder(writer io.Writer) (enc *Encoder) {
	enc = &Encoder{
		writer: bufio.NewWriter(writer),
	}

	return
}

// Encode writes an engravable as a laser program
func Encode(writer io.Writer, engravable rastergrbl.Engravable) (err error) {
	err = NewEncoder(writer).Encode(engravable)
	return
}

func (enc *Encoder) printf(format string, args ...interface{}) {
	if enc.err != nil {
		return
	}

	_, enc.err = fmt.Fprintf(enc.writer, format, args...)
}

// Encode writes the whole program, flushing once at the end.
// Nothing is written if the properties are not valid.
func (enc *Encoder) Encode(engravable rastergrbl.Engravable) (err error) {
	prop := engravable.Properties()

	err = prop.Validate()
	if err != nil {
		return
	}

	size := &prop.Size
	laser := &prop.Laser

	// One extra sample for the overscan
	row := make([]uint8, size.X+1)

	enc.preamble(&prop)

	prog := rastergrbl.NewProgress(size.Y)
	defer prog.Close()

	scan := newScanner(enc, &prop)
	for y := size.Y - 1; y >= 0; y-- {
		err = engravable.Row(y, row[:size.X])
		if err != nil {
			if !errors.Is(err, rastergrbl.ErrRowBuffer) {
				err = errors.Wrapf(rastergrbl.ErrRowBuffer, "%v", err)
			}
			err = errors.Wrapf(err, "row %d", y)
			return
		}
		row[size.X] = overscanLevel

		scan.Row(y, row)
		if enc.err != nil {
			break
		}

		prog.Indicate()
	}

	enc.postamble(laser)

	if enc.err == nil {
		enc.err = enc.writer.Flush()
	}

	if enc.err != nil {
		err = errors.Wrap(enc.err, "grbl")
		return
	}

	return
}

func (enc *Encoder) preamble(prop *rastergrbl.Properties) {
	size := &prop.Size
	laser := &prop.Laser
	mm := prop.Millimeter()

	source := prop.Source
	if len(source) == 0 {
		source = "untitled"
	}

	enc.printf("; %s for Laser (grbl 1.1)\n", programName)
	enc.printf("; Width: %d [px], Height: %d [px]\n", size.X, size.Y)
	enc.printf("; Laserwidth: %0.2f [mm]\n", laser.KerfWidth)
	enc.printf("; {Width[mm] = laserwidth * PXwidth, Height[mm] = laserwidth * PXheight}\n")
	enc.printf("; Width: %0.2f [mm], Height: %0.2f [mm]\n", mm.X, mm.Y)
	enc.printf("; Bottom Left corner of pic is Pos 0|0 for the laser.\n")
	enc.printf("; Laser plot direction is picture bottom up.\n")
	enc.printf("; File: %s\n", source)
	enc.printf(";\n;\n")

	enc.printf("%s ; Set units to mm\n", laser.UnitMode)
	enc.printf("%s ; Use absolute coordinates\n", laser.CoordMode)
	enc.printf("S0  ; Power off laser i.e. PWM=0\n")
	enc.printf("%s  ; Activate Laser with dynamics\n", laser.LaserOn)
	enc.printf("%s ; Set speed\n", laser.FeedRate)
	enc.printf(";\n;\n")

	enc.printf("G00 X0 Y0 S0\n")
}

func (enc *Encoder) postamble(laser *rastergrbl.Laser) {
	enc.printf(";\n;\n")
	enc.printf("%s ; Laser Off\n", laser.LaserOff)
	enc.printf("G00 X0 Y0 S0 ; Return to origin\n")
}

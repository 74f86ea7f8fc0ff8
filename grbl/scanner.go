//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package grbl

import (
	"github.com/ezrec/rastergrbl"
)

// scanner holds the serpentine state across all rows of one image.
// lastPower carries over from one row to the next.
type scanner struct {
	enc    *Encoder
	laser  rastergrbl.Laser
	height int

	forward   bool
	lastPower int
}

func newScanner(enc *Encoder, prop *rastergrbl.Properties) (scan *scanner) {
	scan = &scanner{
		enc:     enc,
		laser:   prop.Laser,
		height:  prop.Size.Y,
		forward: true,
	}

	return
}

func (scan *scanner) x(pos int) float32 {
	return float32(pos) * scan.laser.KerfWidth
}

func (scan *scanner) y(row int) float32 {
	return float32(row) * scan.laser.KerfWidth
}

// Row emits one scanline. line holds the pixels of row y followed by
// the overscan sample.
//
// Position pos is the X boundary the head has reached. Going forward,
// the sample at pos is pixel pos. Going backward, the head enters
// pixel pos-1, and the overscan is reached at pos 0.
func (scan *scanner) Row(y int, line []uint8) {
	enc := scan.enc
	width := len(line) - 1

	if scan.forward {
		enc.printf(";-->--\n")
	} else {
		enc.printf(";--<--\n")
	}

	for x := 0; x <= width; x++ {
		var pos int
		var sample uint8

		if scan.forward {
			pos = x
			sample = line[x]
		} else {
			pos = width - x
			if x < width {
				sample = line[pos-1]
			} else {
				sample = line[width]
			}
		}

		power := scan.laser.Power(255 - sample)
		rowEnd := (x == width)

		if (x > 0 && power != scan.lastPower) || rowEnd {
			// The run up to here was burnt at the previous power
			enc.printf("G01 X%0.2f Y%0.2f S%d\n",
				scan.x(pos), scan.y(scan.height-y-1), scan.lastPower)
		}

		if rowEnd && y > 0 {
			// Move one scanline up without burning
			enc.printf("G01 X%0.2f Y%0.2f S%d ;u\n",
				scan.x(pos), scan.y(scan.height-y), scan.laser.PowerMin)
		}

		scan.lastPower = power
	}

	scan.forward = !scan.forward
}

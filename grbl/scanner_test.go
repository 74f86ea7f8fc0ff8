//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package grbl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rastergrbl"
)

// The last emitted power is carried from one row into the next
func TestScannerCarriesPower(t *testing.T) {
	var buff bytes.Buffer
	enc := NewEncoder(&buff)

	prop := rastergrbl.Properties{
		Size:  rastergrbl.Size{X: 2, Y: 2},
		Laser: testLaser(10, 265, 1.0),
	}

	scan := newScanner(enc, &prop)
	assert.Equal(t, 0, scan.lastPower)
	assert.True(t, scan.forward)

	scan.Row(1, []uint8{0, 0, 255})
	assert.Equal(t, 10, scan.lastPower, "overscan power")
	assert.False(t, scan.forward)

	scan.Row(0, []uint8{0, 0, 255})
	assert.Equal(t, 10, scan.lastPower)
	assert.True(t, scan.forward)

	enc.writer.Flush()
	assert.Equal(t, `;-->--
G01 X2.00 Y0.00 S265
G01 X2.00 Y1.00 S10 ;u
;--<--
G01 X0.00 Y1.00 S265
`, buff.String())
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterMachine(t *testing.T) {
	machines := map[string]Machine{
		"test-a": {Vendor: "Test", Model: "A", Laser: DefaultLaser},
		"test-b": {Vendor: "Test", Model: "B", Laser: DefaultLaser, Bed: MachineBed{Xmm: 100, Ymm: 50}},
	}

	assert.NoError(t, RegisterMachines(machines, ".ngc"))
	defer func() {
		delete(MachineFormats, "test-a")
		delete(MachineFormats, "test-b")
	}()

	assert.Error(t, RegisterMachine("test-a", machines["test-a"], ".ngc"), "duplicate name")

	assert.Equal(t, ".ngc", MachineFormats["test-b"].Extension)

	var buff bytes.Buffer
	PrintMachines(&buff)

	out := buff.String()
	assert.Contains(t, out, "test-a")
	assert.Contains(t, out, "S50-S400")
	assert.Contains(t, out, "100x50 mm")
}

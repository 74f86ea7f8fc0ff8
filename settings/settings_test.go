//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/rastergrbl"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "G90", s.AbsCoords)
	assert.Equal(t, "G21", s.Dimension)
	assert.Equal(t, "M4", s.LaserOn)
	assert.Equal(t, "M5", s.LaserOff)
	assert.Equal(t, 400, s.LaserMax)
	assert.Equal(t, 50, s.LaserMin)
	assert.Equal(t, "F1500", s.Speed)
	assert.Equal(t, float32(0.15), s.Width)
	assert.Equal(t, "rastergrbl.ngc", s.OutFilename)

	assert.Equal(t, rastergrbl.DefaultLaser, s.Laser())
}

func TestLoadMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[settings]
lasermax = 1000
laseron = "M3"
width = 0.08
`), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, s.LaserMax)
	assert.Equal(t, "M3", s.LaserOn)
	assert.InDelta(t, 0.08, s.Width, 1e-6)

	// Untouched keys keep their defaults
	assert.Equal(t, 50, s.LaserMin)
	assert.Equal(t, "G90", s.AbsCoords)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[settings\nlasermax = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	laser := rastergrbl.Laser{
		PowerMin:  0,
		PowerMax:  255,
		KerfWidth: 0.1,
		FeedRate:  "F3000",
		UnitMode:  "G21",
		CoordMode: "G90",
		LaserOn:   "M4",
		LaserOff:  "M5",
	}

	require.NoError(t, FromLaser(laser, "plate.ngc").Save(path))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plate.ngc", s.OutFilename)
	assert.Equal(t, laser, s.Laser())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "width = 0.1\n")
}

func TestOutputPath(t *testing.T) {
	s := Default()
	assert.Equal(t, filepath.Join(xdg.Home, "rastergrbl.ngc"), s.OutputPath())

	s.OutFilename = "/tmp/abs.ngc"
	assert.Equal(t, "/tmp/abs.ngc", s.OutputPath())

	s.OutFilename = ""
	assert.Equal(t, filepath.Join(xdg.Home, "rastergrbl.ngc"), s.OutputPath())
}

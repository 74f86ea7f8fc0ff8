//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package settings persists the laser profile in a TOML key-value file
package settings

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/ezrec/rastergrbl"
)

const (
	appName       = "rastergrbl"
	fileName      = "settings.toml"
	section       = "settings"
	defaultOutput = "rastergrbl.ngc"
)

// Settings are the recognized keys of the [settings] section
type Settings struct {
	AbsCoords   string  `koanf:"abscoords"`   // Coordinate mode, ie 'G90'
	Dimension   string  `koanf:"dimension"`   // Unit mode, ie 'G21'
	LaserOn     string  `koanf:"laseron"`     // Laser on with dynamics, ie 'M4'
	LaserOff    string  `koanf:"laseroff"`    // Laser off, ie 'M5'
	LaserMax    int     `koanf:"lasermax"`    // PWM for black
	LaserMin    int     `koanf:"lasermin"`    // PWM for white
	Speed       string  `koanf:"speed"`       // Feed, ie 'F1500'
	Width       float32 `koanf:"width"`       // Laser width, in mm
	OutFilename string  `koanf:"outfilename"` // Program file name
}

func Default() (s Settings) {
	s = FromLaser(rastergrbl.DefaultLaser, defaultOutput)

	return
}

// FromLaser builds settings from a laser profile
func FromLaser(laser rastergrbl.Laser, outFilename string) (s Settings) {
	s = Settings{
		AbsCoords:   laser.CoordMode,
		Dimension:   laser.UnitMode,
		LaserOn:     laser.LaserOn,
		LaserOff:    laser.LaserOff,
		LaserMax:    laser.PowerMax,
		LaserMin:    laser.PowerMin,
		Speed:       laser.FeedRate,
		Width:       laser.KerfWidth,
		OutFilename: outFilename,
	}

	return
}

// Laser returns the laser profile of the settings
func (s Settings) Laser() (laser rastergrbl.Laser) {
	laser = rastergrbl.Laser{
		PowerMin:  s.LaserMin,
		PowerMax:  s.LaserMax,
		KerfWidth: s.Width,
		FeedRate:  s.Speed,
		UnitMode:  s.Dimension,
		CoordMode: s.AbsCoords,
		LaserOn:   s.LaserOn,
		LaserOff:  s.LaserOff,
	}

	return
}

// DefaultPath is the settings file in the user's configuration directory
func DefaultPath() (path string, err error) {
	path, err = xdg.ConfigFile(filepath.Join(appName, fileName))
	return
}

// Load reads a settings file. A missing file gives the defaults, and keys
// absent from the file keep their default values.
func Load(path string) (s Settings, err error) {
	s = Default()

	if _, serr := os.Stat(path); os.IsNotExist(serr) {
		return
	}

	k := koanf.New(".")
	err = k.Load(file.Provider(path), toml.Parser())
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	err = k.Unmarshal(section, &s)
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	return
}

// Save writes the settings file, creating its directory as needed
func (s Settings) Save(path string) (err error) {
	k := koanf.New(".")

	// Shortest float32 representation, so 0.15 is not saved as 0.15000000596046448
	width, err := strconv.ParseFloat(strconv.FormatFloat(float64(s.Width), 'f', -1, 32), 64)
	if err != nil {
		return
	}

	values := map[string]interface{}{
		"abscoords":   s.AbsCoords,
		"dimension":   s.Dimension,
		"laseron":     s.LaserOn,
		"laseroff":    s.LaserOff,
		"lasermax":    s.LaserMax,
		"lasermin":    s.LaserMin,
		"speed":       s.Speed,
		"width":       width,
		"outfilename": s.OutFilename,
	}

	for key, value := range values {
		err = k.Set(section+"."+key, value)
		if err != nil {
			return
		}
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	return
}

// OutputPath resolves the program file name. Relative names are placed in
// the user's home directory.
func (s Settings) OutputPath() (path string) {
	path = s.OutFilename
	if len(path) == 0 {
		path = defaultOutput
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(xdg.Home, path)
	}

	return
}

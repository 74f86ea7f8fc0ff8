//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package raster reads bitmap images as engravables, and writes engravables as PNG
package raster

import (
	"github.com/ezrec/rastergrbl"
)

func init() {
	newFormatter := func(suffix string) rastergrbl.Formatter { return NewFormatter(suffix) }

	for _, suffix := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"} {
		rastergrbl.RegisterFormatter(suffix, newFormatter)
	}
}

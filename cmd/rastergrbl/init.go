//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/ezrec/rastergrbl"

	_ "github.com/ezrec/rastergrbl/drawable"
	_ "github.com/ezrec/rastergrbl/grbl"
	_ "github.com/ezrec/rastergrbl/raster"
	_ "github.com/ezrec/rastergrbl/svg"
)

func init() {
	newEmptyFormatter := func(suffix string) rastergrbl.Formatter { return NewEmptyFormatter() }

	rastergrbl.RegisterFormatter("empty", newEmptyFormatter)
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package svg

import (
	"github.com/ezrec/rastergrbl"
)

func init() {
	rastergrbl.RegisterFormatter(".svg", func(suffix string) rastergrbl.Formatter { return NewFormatter(suffix) })
}

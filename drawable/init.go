//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package drawable

import (
	"github.com/ezrec/rastergrbl"
)

func init() {
	rastergrbl.RegisterFormatter(".drawable", func(suffix string) rastergrbl.Formatter { return NewFormatter(suffix) })
}

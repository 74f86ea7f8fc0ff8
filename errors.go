//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"github.com/pkg/errors"
)

var (
	ErrRowBuffer         = errors.New("row buffer unavailable")
	ErrOutputOpen        = errors.New("output cannot be opened")
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrInvalidPowerRange = errors.New("invalid laser power range")
	ErrInvalidKerf       = errors.New("invalid laser kerf width")
	ErrUnsupported       = errors.New("operation not supported by format")
)

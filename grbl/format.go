//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package grbl

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

type Format struct {
	*pflag.FlagSet

	Source string
}

func NewFormatter(suffix string) (gf *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	gf = &Format{
		FlagSet: flagSet,
	}

	gf.StringVarP(&gf.Source, "source", "s", "", "Source name written in the program header")
	gf.SetInterspersed(false)

	return
}

func (gf *Format) Encode(writer rastergrbl.Writer, engravable rastergrbl.Engravable) (err error) {
	if gf.Changed("source") {
		prop := engravable.Properties()
		prop.Source = gf.Source
		engravable = rastergrbl.WithProperties(engravable, prop)
	}

	err = Encode(writer, engravable)

	return
}

func (gf *Format) Decode(reader rastergrbl.Reader, filesize int64) (engravable rastergrbl.Engravable, err error) {
	err = errors.Wrap(rastergrbl.ErrUnsupported, "grbl: programs cannot be read back")
	return
}

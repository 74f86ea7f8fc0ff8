//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package drawable handles raw dumps of host pixel buffers
package drawable

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
)

const (
	defaultVersion = 1
)

var (
	headerMagic = [4]byte{'R', 'G', 'D', 'W'}
)

type drawableHeader struct {
	Magic         [4]byte // 0x00: 'RGDW'
	Version       uint16  // 0x04: 1
	BytesPerPixel uint16  // 0x06
	Width         uint32  // 0x08
	Height        uint32  // 0x0c
	Stride        uint32  // 0x10: Bytes per row
}

type Format struct {
	*pflag.FlagSet
}

func NewFormatter(suffix string) (df *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	df = &Format{
		FlagSet: flagSet,
	}

	df.SetInterspersed(false)

	return
}

func (df *Format) Encode(writer rastergrbl.Writer, engravable rastergrbl.Engravable) (err error) {
	prop := engravable.Properties()

	header := drawableHeader{
		Magic:         headerMagic,
		Version:       defaultVersion,
		BytesPerPixel: 1,
		Width:         uint32(prop.Size.X),
		Height:        uint32(prop.Size.Y),
		Stride:        uint32(prop.Size.X),
	}

	data, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return
	}

	_, err = writer.Write(data)
	if err != nil {
		return
	}

	row := make([]uint8, prop.Size.X)
	for y := 0; y < prop.Size.Y; y++ {
		err = engravable.Row(y, row)
		if err != nil {
			return
		}

		_, err = writer.Write(row)
		if err != nil {
			return
		}
	}

	return
}

func (df *Format) Decode(reader rastergrbl.Reader, filesize int64) (engravable rastergrbl.Engravable, err error) {
	var header drawableHeader

	headerSize, _ := restruct.SizeOf(&header)
	if filesize < int64(headerSize) {
		err = fmt.Errorf("drawable: file too short (%d bytes)", filesize)
		return
	}

	data := make([]byte, headerSize)
	_, err = reader.ReadAt(data, 0)
	if err != nil {
		return
	}

	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	if !bytes.Equal(header.Magic[:], headerMagic[:]) {
		err = fmt.Errorf("drawable: unknown header magic %q", header.Magic[:])
		return
	}

	if header.Version != defaultVersion {
		err = fmt.Errorf("drawable: unsupported version %d", header.Version)
		return
	}

	bpp := int(header.BytesPerPixel)
	width := int(header.Width)
	height := int(header.Height)
	stride := int(header.Stride)

	if width < 1 || height < 1 {
		err = errors.Wrapf(rastergrbl.ErrInvalidDimensions, "drawable: %dx%d", width, height)
		return
	}

	if bpp < 1 || stride < width*bpp {
		err = errors.Wrapf(rastergrbl.ErrInvalidDimensions, "drawable: %d bytes per pixel, stride %d for width %d", bpp, stride, width)
		return
	}

	pixSize := int64(stride) * int64(height)
	if filesize-int64(headerSize) < pixSize {
		err = errors.Wrapf(rastergrbl.ErrRowBuffer, "drawable: %d bytes of pixels, need %d", filesize-int64(headerSize), pixSize)
		return
	}

	pix := make([]byte, pixSize)
	_, err = reader.ReadAt(pix, int64(headerSize))
	if err != nil && err != io.EOF {
		return
	}
	err = nil

	prop := rastergrbl.Properties{
		Size:  rastergrbl.Size{X: width, Y: height},
		Laser: rastergrbl.DefaultLaser,
		Metadata: map[string]interface{}{
			"Format":        "drawable",
			"BytesPerPixel": bpp,
		},
	}

	engravable = rastergrbl.NewPixmap(prop, pix, stride, bpp)

	return
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/ezrec/rastergrbl"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(2, 0, color.Gray{Y: 0x80})
	img.Set(0, 1, color.White)
	img.Set(1, 1, color.White)
	img.Set(2, 1, color.Black)
	return img
}

func decode(t *testing.T, suffix string, data []byte, args ...string) rastergrbl.Engravable {
	rf := NewFormatter(suffix)
	require.NoError(t, rf.Parse(args))

	engravable, err := rf.Decode(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	return engravable
}

func TestDecodePNG(t *testing.T) {
	var buff bytes.Buffer
	require.NoError(t, png.Encode(&buff, testImage()))

	engravable := decode(t, ".png", buff.Bytes())

	prop := engravable.Properties()
	assert.Equal(t, rastergrbl.Size{X: 3, Y: 2}, prop.Size)
	assert.Equal(t, rastergrbl.DefaultLaser, prop.Laser)
	assert.Equal(t, "png", prop.Metadata["Format"])

	row := make([]uint8, 3)
	require.NoError(t, engravable.Row(0, row))
	assert.Equal(t, []uint8{0, 255, 0x80}, row)
	require.NoError(t, engravable.Row(1, row))
	assert.Equal(t, []uint8{255, 255, 0}, row)
}

func TestDecodeBMPInvert(t *testing.T) {
	var buff bytes.Buffer
	require.NoError(t, bmp.Encode(&buff, testImage()))

	engravable := decode(t, ".bmp", buff.Bytes(), "--invert")

	row := make([]uint8, 3)
	require.NoError(t, engravable.Row(1, row))
	assert.Equal(t, []uint8{0, 0, 255}, row)
}

func TestDecodeLightness(t *testing.T) {
	var buff bytes.Buffer
	require.NoError(t, png.Encode(&buff, testImage()))

	engravable := decode(t, ".png", buff.Bytes(), "--lightness")

	row := make([]uint8, 3)
	require.NoError(t, engravable.Row(0, row))
	assert.Equal(t, uint8(0), row[0])
	assert.Equal(t, uint8(255), row[1])

	// sRGB mid gray is lighter than half by L*
	assert.InDelta(t, 137, int(row[2]), 1)
}

func TestLightnessTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.NRGBA{A: 0x80})

	gray := lightness(img)
	assert.Equal(t, uint8(255), gray.Pix[0])
	assert.InDelta(t, 127, int(gray.Pix[1]), 1)
}

func TestDecodeGarbage(t *testing.T) {
	rf := NewFormatter(".png")
	data := []byte("not an image")

	_, err := rf.Decode(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	prop := rastergrbl.Properties{
		Size:  rastergrbl.Size{X: 4, Y: 3},
		Laser: rastergrbl.DefaultLaser,
	}

	var buff bytes.Buffer
	require.NoError(t, NewFormatter(".png").Encode(&buff, rastergrbl.NewEmptyEngravable(prop, 0x33)))

	img, err := png.Decode(&buff)
	require.NoError(t, err)

	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, 4, gray.Bounds().Dx())
	assert.Equal(t, uint8(0x33), gray.GrayAt(3, 2).Y)

	err = NewFormatter(".jpg").Encode(&buff, rastergrbl.NewEmptyEngravable(prop, 0))
	assert.ErrorIs(t, err, rastergrbl.ErrUnsupported)
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/rastergrbl"
)

const testSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10" width="20" height="10">
  <rect x="0" y="0" width="10" height="10" fill="black"/>
</svg>`

func decode(t *testing.T, args ...string) (rastergrbl.Engravable, error) {
	sf := NewFormatter(".svg")
	require.NoError(t, sf.Parse(args))

	data := []byte(testSvg)
	return sf.Decode(bytes.NewReader(data), int64(len(data)))
}

func TestDecode(t *testing.T) {
	engravable, err := decode(t)
	require.NoError(t, err)

	prop := engravable.Properties()
	assert.Equal(t, rastergrbl.Size{X: 20, Y: 10}, prop.Size)

	row := make([]uint8, 20)
	require.NoError(t, engravable.Row(5, row))

	// Left half is filled, right half is background
	assert.Less(t, row[2], uint8(0x10))
	assert.Equal(t, uint8(0xff), row[17])
}

func TestDecodeScale(t *testing.T) {
	engravable, err := decode(t, "--scale", "2.5")
	require.NoError(t, err)
	assert.Equal(t, rastergrbl.Size{X: 50, Y: 25}, engravable.Properties().Size)

	_, err = decode(t, "--scale", "0")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	var buff bytes.Buffer
	err := NewFormatter(".svg").Encode(&buff, nil)
	assert.ErrorIs(t, err, rastergrbl.ErrUnsupported)
}

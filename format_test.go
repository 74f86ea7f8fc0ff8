//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textFormat writes one line of sample values per row
type textFormat struct {
	*pflag.FlagSet
	level uint8
}

func newTextFormat(suffix string) Formatter {
	tf := &textFormat{FlagSet: pflag.NewFlagSet(suffix, pflag.ContinueOnError)}
	tf.Uint8VarP(&tf.level, "level", "l", 0, "Level of the decoded raster")
	return tf
}

func (tf *textFormat) Decode(reader Reader, size int64) (engravable Engravable, err error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return
	}

	prop := Properties{Size: Size{X: len(bytes.TrimSpace(data)), Y: 1}, Laser: DefaultLaser}
	engravable = NewEmptyEngravable(prop, tf.level)
	return
}

func (tf *textFormat) Encode(writer Writer, engravable Engravable) (err error) {
	prop := engravable.Properties()
	row := make([]uint8, prop.Size.X)
	for y := 0; y < prop.Size.Y; y++ {
		err = engravable.Row(y, row)
		if err != nil {
			return
		}
		_, err = writer.Write(append(row, '\n'))
		if err != nil {
			return
		}
	}
	return
}

func TestFormatRegistry(t *testing.T) {
	RegisterFormatter(".txt", newTextFormat)
	RegisterFormatter(".long.txt", newTextFormat)

	assert.True(t, IsFormat("FOO.TXT"))
	assert.False(t, IsFormat("foo.unknown"))

	suffix, ok := formatterFor("foo.long.txt")
	assert.True(t, ok)
	assert.Equal(t, ".long.txt", suffix)

	assert.Contains(t, FormatterSuffixes(), ".txt")

	_, err := NewFormat("foo.unknown", nil)
	assert.Error(t, err)

	_, err = NewFormat("foo.txt", []string{"--bogus"})
	assert.Error(t, err)
}

func TestFormatRoundTrip(t *testing.T) {
	RegisterFormatter(".txt", newTextFormat)

	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, ioutil.WriteFile(input, []byte("abcd\n"), 0644))

	format, err := NewFormat(input, []string{"--level", "65", "next"})
	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, format.Args())

	engravable, err := format.Engravable()
	require.NoError(t, err)

	prop := engravable.Properties()
	assert.Equal(t, 4, prop.Size.X)
	assert.Equal(t, input, prop.Source, "source defaults to the filename")

	output := filepath.Join(dir, "out.txt")
	outFormat, err := NewFormat(output, nil)
	require.NoError(t, err)
	require.NoError(t, outFormat.SetEngravable(engravable))

	data, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "AAAA\n", string(data))

	_, err = os.Stat(filepath.Join(dir, "missing.txt"))
	assert.True(t, os.IsNotExist(err))

	missing, err := NewFormat(filepath.Join(dir, "missing.txt"), nil)
	require.NoError(t, err)
	_, err = missing.Engravable()
	assert.Error(t, err)

	unwritable, err := NewFormat(filepath.Join(dir, "nope", "out.txt"), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, unwritable.SetEngravable(engravable), ErrOutputOpen)
}

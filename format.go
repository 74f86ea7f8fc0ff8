//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Reader needs io.ReaderAt for formats that seek
type Reader interface {
	io.Reader
	io.ReaderAt
}

// Writer
type Writer interface {
	io.Writer
}

// Engravable file format
type Formatter interface {
	Parse(args []string) (err error)
	Parsed() bool
	Args() (args []string)
	NArg() int
	PrintDefaults()

	Decode(reader Reader, size int64) (engravable Engravable, err error)
	Encode(writer Writer, engravable Engravable) (err error)
}

// Engravable to file format
type NewFormatter func(suffix string) (formatter Formatter)

var formatterMap map[string]NewFormatter

func RegisterFormatter(suffix string, newFormatter NewFormatter) {
	if formatterMap == nil {
		formatterMap = make(map[string]NewFormatter)
	}

	formatterMap[suffix] = newFormatter
}

// FormatterSuffixes lists the registered suffixes, sorted
func FormatterSuffixes() (list []string) {
	for suffix := range formatterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

func FormatterUsage() {
	for _, suffix := range FormatterSuffixes() {
		newFormatter := formatterMap[suffix]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Options for '%s':\n", suffix)
		fmt.Fprintln(os.Stderr)
		newFormatter(suffix).PrintDefaults()
	}
}

type Format struct {
	Formatter
	Suffix   string
	Filename string
}

// IsFormat returns true if the filename has a registered suffix
func IsFormat(filename string) bool {
	_, ok := formatterFor(filename)
	return ok
}

func formatterFor(filename string) (suffix string, ok bool) {
	lower := strings.ToLower(filename)

	// Longest match wins, so '.tiff' is not taken for '.tif'
	for known := range formatterMap {
		if strings.HasSuffix(lower, known) && len(known) > len(suffix) {
			suffix = known
			ok = true
		}
	}

	return
}

func NewFormat(filename string, args []string) (format *Format, err error) {
	suffix, ok := formatterFor(filename)
	if !ok {
		err = fmt.Errorf("%s: File extension unknown", filename)
		return
	}

	// Get formatter, and parse arguments
	formatter := formatterMap[suffix](suffix)

	err = formatter.Parse(args)
	if err != nil {
		return
	}

	format = &Format{
		Formatter: formatter,
		Suffix:    suffix,
		Filename:  filename,
	}
	return
}

func (format *Format) Engravable() (engravable Engravable, err error) {
	var reader *os.File
	var filesize int64

	if format.Suffix != "empty" {
		reader, err = os.Open(format.Filename)
		if err != nil {
			return
		}
		defer func() { reader.Close() }()

		filesize, err = reader.Seek(0, io.SeekEnd)
		if err != nil {
			return
		}

		_, err = reader.Seek(0, io.SeekStart)
		if err != nil {
			return
		}
	}

	decoded, err := format.Decode(reader, filesize)
	if err != nil {
		err = errors.Wrap(err, format.Filename)
		return
	}

	prop := decoded.Properties()
	if len(prop.Source) == 0 && format.Suffix != "empty" {
		prop.Source = format.Filename
		decoded = WithProperties(decoded, prop)
	}

	engravable = decoded
	return
}

// SetEngravable writes an engravable to the file format.
// The file is removed if encoding fails.
func (format *Format) SetEngravable(engravable Engravable) (err error) {
	writer, err := os.Create(format.Filename)
	if err != nil {
		err = errors.Wrapf(ErrOutputOpen, "%v", err)
		return
	}
	defer func() {
		cerr := writer.Close()
		if err == nil && cerr != nil {
			err = cerr
		}

		// No partial output is left behind
		if err != nil {
			os.Remove(format.Filename)
		}
	}()

	err = format.Encode(writer, engravable)
	if err != nil {
		err = errors.Wrap(err, format.Filename)
		return
	}

	return
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/ezrec/rastergrbl"
	"github.com/ezrec/rastergrbl/settings"
)

var param struct {
	Verbosity    int
	SettingsFile string
	NoProgress   bool

	settingsPath string
	settings     settings.Settings
}

type Command interface {
	Parse(args []string) error
	Args() []string
	PrintDefaults()

	Filter(input rastergrbl.Engravable) (output rastergrbl.Engravable, err error)
}

type commandEntry struct {
	NewCommand  func() (cmd Command)
	Description string
}

var commandMap = map[string]commandEntry{
	"info":    {func() Command { return NewInfoCommand() }, "Dumps information about the engraving"},
	"laser":   {func() Command { return NewLaserCommand() }, "Alters the laser profile"},
	"machine": {func() Command { return NewMachineCommand() }, "Selects a machine laser profile"},
	"size":    {func() Command { return NewSizeCommand() }, "Resamples the image to a physical size"},
	"save":    {func() Command { return NewSaveCommand() }, "Stores the laser profile as the default settings"},
}

func init() {
	pflag.CountVarP(&param.Verbosity, "verbose", "v", "Verbosity")
	pflag.StringVarP(&param.SettingsFile, "settings", "c", "", "Settings file (default is the user config directory)")
	pflag.BoolVarP(&param.NoProgress, "no-progress", "P", false, "Hide the progress bar")
	pflag.CommandLine.SetInterspersed(false)

	pflag.Usage = Usage
}

func Usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "rastergrbl [options] INFILE [command [options] | OUTFILE [options]]...")
	fmt.Fprintln(os.Stderr, "rastergrbl [options] @cmdfile")
	fmt.Fprintln(os.Stderr)
	pflag.PrintDefaults()

	keys := []string{}
	for key := range commandMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		item := commandMap[key]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "  %s [options]\n", key)
		fmt.Fprintf(os.Stderr, "    %s\n", item.Description)
		fmt.Fprintln(os.Stderr)
		item.NewCommand().PrintDefaults()
	}

	rastergrbl.FormatterUsage()

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Known machines:")
	fmt.Fprintln(os.Stderr)
	rastergrbl.PrintMachines(os.Stderr)
}

func loadSettings() (err error) {
	path := param.SettingsFile
	if len(path) == 0 {
		path, err = settings.DefaultPath()
		if err != nil {
			return
		}
	}

	param.settingsPath = path
	param.settings, err = settings.Load(path)
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityInfo, "Settings: %v", path)

	return
}

// cacheRows keeps every decoded row, so that each output and command
// after the first reads from memory.
func cacheRows(engravable rastergrbl.Engravable) (cached *rastergrbl.CachedEngravable) {
	cached = rastergrbl.NewCachedEngravable(engravable, engravable.Properties().Size.Y)

	return
}

func writeOutput(format *rastergrbl.Format, engravable rastergrbl.Engravable) (err error) {
	TraceVerbosef(VerbosityNotice, "%v: Writing...", format.Filename)

	err = format.SetEngravable(engravable)
	if err != nil {
		return
	}

	info, err := os.Stat(format.Filename)
	if err != nil {
		return
	}

	fmt.Printf("%v: %v written\n", format.Filename, humanize.Bytes(uint64(info.Size())))

	return
}

func evaluate(args []string) (err error) {
	if len(args) == 0 {
		err = fmt.Errorf("no input file")
		return
	}

	err = loadSettings()
	if err != nil {
		return
	}

	// Settings are the profile of anything decoded; formats and commands may override it
	rastergrbl.DefaultLaser = param.settings.Laser()

	TraceVerbosef(VerbosityNotice, "%v: Reading...", args[0])

	input, err := rastergrbl.NewFormat(args[0], args[1:])
	if err != nil {
		return
	}

	engravable, err := input.Engravable()
	if err != nil {
		return
	}

	engravable = cacheRows(engravable)

	written := false
	args = input.Args()

	for len(args) > 0 {
		if rastergrbl.IsFormat(args[0]) {
			var output *rastergrbl.Format
			output, err = rastergrbl.NewFormat(args[0], args[1:])
			if err != nil {
				return
			}

			err = writeOutput(output, engravable)
			if err != nil {
				return
			}

			written = true
			args = output.Args()
			continue
		}

		item, found := commandMap[args[0]]
		if !found {
			err = fmt.Errorf("%v: unknown command or file extension", args[0])
			return
		}

		cmd := item.NewCommand()
		err = cmd.Parse(args[1:])
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
			return
		}

		TraceVerbosef(VerbosityNotice, "%v", args[0])

		engravable, err = cmd.Filter(engravable)
		if err != nil {
			return
		}

		args = cmd.Args()
	}

	if !written {
		var output *rastergrbl.Format
		output, err = rastergrbl.NewFormat(param.settings.OutputPath(), nil)
		if err != nil {
			return
		}

		err = writeOutput(output, engravable)
	}

	return
}

func main() {
	args, err := expandArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = pflag.CommandLine.Parse(args)
	if err != nil {
		os.Exit(1)
	}

	if pflag.NArg() == 0 {
		Usage()
		os.Exit(1)
	}

	if !param.NoProgress && isatty.IsTerminal(os.Stderr.Fd()) {
		rastergrbl.SetProgress(newTextProgress(os.Stderr))
	}

	err = evaluate(pflag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

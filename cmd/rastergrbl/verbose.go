//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"
)

type Verbosity int

const (
	VerbosityWarning = Verbosity(iota)
	VerbosityNotice
	VerbosityInfo
	VerbosityDebug
)

var traceWriter io.Writer = os.Stderr

func TraceVerbosef(level Verbosity, format string, args ...interface{}) {
	if Verbosity(param.Verbosity) >= level {
		fmt.Fprintf(traceWriter, format+"\n", args...)
	}
}

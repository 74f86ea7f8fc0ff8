//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	progressWidth = 50
)

// textProgress draws a single line progress bar
type textProgress struct {
	writer  io.Writer
	percent int
}

func newTextProgress(writer io.Writer) (tp *textProgress) {
	tp = &textProgress{
		writer:  writer,
		percent: -1,
	}

	return
}

func (tp *textProgress) Show(percent float32) {
	step := int(percent)
	if step == tp.percent {
		return
	}

	tp.percent = step

	bar := strings.Repeat("=", step*progressWidth/100)
	fmt.Fprintf(tp.writer, "\r%3d%% [%-*s]", step, progressWidth, bar)
}

func (tp *textProgress) Stop() {
	if tp.percent >= 0 {
		fmt.Fprintln(tp.writer)
	}

	tp.percent = -1
}

//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

// Progressor displays the completion of an encoding
type Progressor interface {
	Show(percent float32)
	Stop()
}

type quietProgress struct{}

func (quietProgress) Show(float32) {}
func (quietProgress) Stop()        {}

var defaultProgress Progressor = quietProgress{}

// SetProgress selects the display used by every following NewProgress.
// A nil progressor disables the display.
func SetProgress(prog Progressor) {
	if prog == nil {
		prog = quietProgress{}
	}

	defaultProgress = prog
}

// Progress counts completed rows. It is not safe for concurrent use;
// Show is called on the caller's goroutine.
type Progress struct {
	Progressor
	total     int
	completed int
}

func NewProgress(total int) (prog *Progress) {
	prog = &Progress{
		Progressor: defaultProgress,
		total:      total,
	}

	prog.Show(0.0)

	return
}

// Indicate marks one more unit as completed
func (prog *Progress) Indicate() {
	if prog.completed >= prog.total {
		return
	}

	prog.completed++
	prog.Show(float32(prog.completed) * 100.0 / float32(prog.total))
}

// Close completes the display, even on an early exit
func (prog *Progress) Close() {
	if prog.completed < prog.total {
		prog.Show(100.0)
	}

	prog.Stop()
}
